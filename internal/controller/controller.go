// Package controller bundles the per-area HTTP controllers over a shared store.
package controller

import (
	agg "jobcrm-backend/internal/dashboard"
	"jobcrm-backend/internal/repository"

	"jobcrm-backend/internal/controller/application"
	"jobcrm-backend/internal/controller/company"
	"jobcrm-backend/internal/controller/contact"
	"jobcrm-backend/internal/controller/dashboard"
	"jobcrm-backend/internal/controller/email"
)

// Controller holds one controller per endpoint area, all bound to the same store.
type Controller struct {
	Company     *company.CompanyController
	Application *application.ApplicationController
	Contact     *contact.ContactController
	Dashboard   *dashboard.DashboardController
	Email       *email.EmailController
}

// New creates the full controller set over the provided store.
func New(store *repository.Store) *Controller {
	return &Controller{
		Company:     company.NewCompanyController(store),
		Application: application.NewApplicationController(store),
		Contact:     contact.NewContactController(store),
		Dashboard:   dashboard.NewDashboardController(agg.New(store)),
		Email:       email.NewEmailController(store),
	}
}
