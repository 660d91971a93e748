// Package company provides HTTP handlers for company records.
package company

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobcrm-backend/internal/model"
	"jobcrm-backend/internal/repository"
	"jobcrm-backend/internal/utilities"
)

// CompanyController handles company related endpoints
type CompanyController struct {
	Store *repository.Store
}

// NewCompanyController creates a new instance of CompanyController with the provided store.
func NewCompanyController(store *repository.Store) *CompanyController {
	return &CompanyController{
		Store: store,
	}
}

// CreateCompany handles strict creation of a company record.
// @Summary Create a company
// @Description Fails with 409 when the company name is already taken
// @Tags Company
// @Accept json
// @Produce json
// @Param company body model.Company true "Company to be created"
// @Success 201 {object} model.Company "Successfully created company"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 409 {object} utilities.ErrorResponse "Company name already exists"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /company [post]
func (cc *CompanyController) CreateCompany(c *gin.Context) {
	company := model.Company{}
	if err := c.ShouldBindJSON(&company); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	if err := cc.Store.CreateCompany(c.Request.Context(), &company); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			c.JSON(http.StatusConflict, utilities.ErrorResponse{
				Error: fmt.Sprintf("Company %q already exists", company.Name),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to create company: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, company)
}

// GetCompanies lists every company.
// @Summary List all companies
// @Tags Company
// @Produce json
// @Success 200 {array} model.Company "Return all companies"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /company [get]
func (cc *CompanyController) GetCompanies(c *gin.Context) {
	companies, err := cc.Store.ListCompanies(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch companies: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, companies)
}

// GetCompanyByID retrieves a company with its contacts and applications.
// @Summary Retrieve a company by id
// @Tags Company
// @Produce json
// @Param id path integer true "ID of desired company"
// @Success 200 {object} model.Company "Return the company with the specified ID"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 404 {object} utilities.ErrorResponse "Company not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /company/{id} [get]
func (cc *CompanyController) GetCompanyByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid company id"})
		return
	}

	company, err := cc.Store.GetCompanyByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Company not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve company: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, company)
}
