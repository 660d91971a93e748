// Package contact provides HTTP handlers for networking contacts.
package contact

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobcrm-backend/internal/model"
	"jobcrm-backend/internal/repository"
	"jobcrm-backend/internal/utilities"
)

// ContactController handles contact related endpoints
type ContactController struct {
	Store *repository.Store
}

// NewContactController creates a new instance of ContactController with the provided store.
func NewContactController(store *repository.Store) *ContactController {
	return &ContactController{
		Store: store,
	}
}

// CreateContact saves a new contact. Contacts are immutable after creation.
// @Summary Add a networking contact at a company
// @Tags Contact
// @Accept json
// @Produce json
// @Param contact body model.Contact true "Contact information"
// @Success 201 {object} model.Contact "Successfully added contact"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body or unknown company id"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /contact [post]
func (cc *ContactController) CreateContact(c *gin.Context) {
	contact := model.Contact{}
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	if err := cc.Store.CreateContact(c.Request.Context(), &contact); err != nil {
		if errors.Is(err, repository.ErrReferential) {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: fmt.Sprintf("Unknown company id %d", contact.CompanyID),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to create contact: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// GetContacts lists all contacts joined with their company name.
// @Summary List the whole network
// @Tags Contact
// @Produce json
// @Success 200 {array} repository.ContactRow "Return all contacts"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /contact [get]
func (cc *ContactController) GetContacts(c *gin.Context) {
	rows, err := cc.Store.ListContacts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch contacts: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, rows)
}
