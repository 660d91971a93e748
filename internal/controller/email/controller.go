// Package email provides HTTP handlers rendering outreach drafts.
package email

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	drafts "jobcrm-backend/internal/email"
	"jobcrm-backend/internal/repository"
	"jobcrm-backend/internal/utilities"
)

// EmailController handles draft rendering endpoints
type EmailController struct {
	Store *repository.Store
}

// NewEmailController creates a new instance of EmailController with the provided store.
func NewEmailController(store *repository.Store) *EmailController {
	return &EmailController{
		Store: store,
	}
}

// DraftResponse carries a rendered draft back to the display layer.
type DraftResponse struct {
	Draft string `json:"draft"`
}

// GetFollowUp renders the follow-up draft for an application.
// @Summary Render a follow-up email draft
// @Tags Email
// @Produce json
// @Param id path integer true "ID of desired application"
// @Success 200 {object} email.DraftResponse "Return rendered draft"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /email/followup/{id} [get]
func (ec *EmailController) GetFollowUp(c *gin.Context) {
	ec.renderDraft(c, drafts.RenderFollowUp)
}

// GetThankYou renders the post-interview thank-you draft for an application.
// @Summary Render a thank-you email draft
// @Tags Email
// @Produce json
// @Param id path integer true "ID of desired application"
// @Success 200 {object} email.DraftResponse "Return rendered draft"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /email/thankyou/{id} [get]
func (ec *EmailController) GetThankYou(c *gin.Context) {
	ec.renderDraft(c, drafts.RenderThankYou)
}

func (ec *EmailController) renderDraft(c *gin.Context, render func(drafts.Fields) (string, error)) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid application id"})
		return
	}

	app, err := ec.Store.GetApplicationByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve application: %s", err.Error()),
		})
		return
	}

	company, err := ec.Store.GetCompanyByID(c.Request.Context(), app.CompanyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve company: %s", err.Error()),
		})
		return
	}

	draft, err := render(drafts.Fields{
		PositionTitle: app.PositionTitle,
		Company:       company.Name,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to render draft: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, DraftResponse{Draft: draft})
}
