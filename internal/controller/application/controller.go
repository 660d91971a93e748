// Package application provides HTTP handlers for job application operations.
package application

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"jobcrm-backend/internal/model"
	"jobcrm-backend/internal/repository"
	"jobcrm-backend/internal/utilities"
)

func init() {
	// Closed status vocabulary is enforced at the binding layer; the store
	// itself stays permissive about transitions.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("appstatus", func(fl validator.FieldLevel) bool {
			return model.Status(fl.Field().String()).Valid()
		})
	}
}

// ApplicationController handles job application related endpoints
type ApplicationController struct {
	Store *repository.Store
}

// NewApplicationController creates a new instance of ApplicationController with the provided store.
func NewApplicationController(store *repository.Store) *ApplicationController {
	return &ApplicationController{
		Store: store,
	}
}

// createApplicationRequest accepts either an existing company id or a raw
// company name. A name routes through get-or-create, matching the entry
// flow where a new company is introduced while logging a job.
type createApplicationRequest struct {
	CompanyID     uint         `json:"company_id"`
	CompanyName   string       `json:"company_name"`
	PositionTitle string       `json:"position_title" binding:"required"`
	JobLink       string       `json:"job_link"`
	Status        model.Status `json:"status" binding:"omitempty,appstatus"`
	AppliedDate   *time.Time   `json:"applied_date"`
	FollowUpDate  *time.Time   `json:"follow_up_date"`
	ResumeVersion string       `json:"resume_version"`
}

type updateApplicationRequest struct {
	Status       model.Status `json:"status" binding:"omitempty,appstatus"`
	FollowUpDate *time.Time   `json:"follow_up_date"`
	MeetingLink  string       `json:"meeting_link"`
	Notes        string       `json:"notes"`
}

// CreateApplication logs a new job application.
// @Summary Create job application
// @Description Provide either company_id of an existing company or company_name, which is created on first use
// @Tags Application
// @Accept json
// @Produce json
// @Param application body createApplicationRequest true "Application information"
// @Success 201 {object} model.Application "Successfully logged application"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body or unknown company id"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /application [post]
func (ac *ApplicationController) CreateApplication(c *gin.Context) {
	req := createApplicationRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	companyID := req.CompanyID
	if req.CompanyName != "" {
		company, err := ac.Store.GetOrCreateCompany(c.Request.Context(), req.CompanyName)
		if err != nil {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprint("Failed to resolve company: ", err.Error()),
			})
			return
		}
		companyID = company.ID
	}
	if companyID == 0 {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Either company_id or company_name is required",
		})
		return
	}

	if req.Status == "" {
		req.Status = model.StatusApplied
	}
	if req.AppliedDate == nil {
		now := time.Now()
		req.AppliedDate = &now
	}

	app := model.Application{
		CompanyID:     companyID,
		PositionTitle: req.PositionTitle,
		JobLink:       req.JobLink,
		AppliedDate:   req.AppliedDate,
		ResumeVersion: req.ResumeVersion,
		EditableApplicationInfo: model.EditableApplicationInfo{
			Status:       req.Status,
			FollowUpDate: req.FollowUpDate,
		},
	}

	if err := ac.Store.CreateApplication(c.Request.Context(), &app); err != nil {
		if errors.Is(err, repository.ErrReferential) {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: fmt.Sprintf("Unknown company id %d", companyID),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to create application: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, app)
}

// UpdateApplication overwrites the editable fields of an application.
// @Summary Update status and details of an application
// @Description Only supplied fields are overwritten, everything else is left untouched
// @Tags Application
// @Accept json
// @Produce json
// @Param id path integer true "ID of desired application"
// @Param application body updateApplicationRequest true "Fields to overwrite"
// @Success 200 {object} model.Application "Successfully updated application"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id or request body"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /application/{id} [patch]
func (ac *ApplicationController) UpdateApplication(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid application id"})
		return
	}

	req := updateApplicationRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	patch := model.EditableApplicationInfo{
		Status:       req.Status,
		FollowUpDate: req.FollowUpDate,
		MeetingLink:  req.MeetingLink,
		Notes:        req.Notes,
	}

	app, err := ac.Store.UpdateApplication(c.Request.Context(), uint(id), patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update application: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, app)
}

// GetApplications lists applications joined with their company name.
// @Summary List applications matching query
// @Description Every query is optional; status must exactly match a vocabulary value
// @Tags Application
// @Produce json
// @Param status query string false "Exact status filter"
// @Param applied_after query string false "Lower bound on applied date (RFC 3339)"
// @Param applied_before query string false "Upper bound on applied date (RFC 3339)"
// @Param follow_up_by query string false "Upper bound on follow-up date (RFC 3339)"
// @Success 200 {array} repository.ApplicationRow "Return matching applications"
// @Failure 400 {object} utilities.ErrorResponse "Invalid query parameter"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /application [get]
func (ac *ApplicationController) GetApplications(c *gin.Context) {
	filter := repository.Filter{
		Status: model.Status(c.Query("status")),
	}

	for _, q := range []struct {
		name string
		dst  **time.Time
	}{
		{"applied_after", &filter.AppliedAfter},
		{"applied_before", &filter.AppliedBefore},
		{"follow_up_by", &filter.FollowUpBy},
	} {
		raw := c.Query(q.name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: fmt.Sprintf("Invalid %s: %s", q.name, err.Error()),
			})
			return
		}
		*q.dst = &t
	}

	rows, err := ac.Store.ListApplications(c.Request.Context(), &filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch applications: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, rows)
}
