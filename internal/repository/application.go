package repository

import (
	"context"
	"time"

	"jobcrm-backend/internal/model"
	"jobcrm-backend/internal/utilities"
)

// ApplicationRow is an application joined with its company name,
// the shape the display layer consumes.
type ApplicationRow struct {
	model.Application
	CompanyName string `json:"company_name"`
}

// Filter narrows ListApplications. Zero fields are ignored.
type Filter struct {
	Status        model.Status
	AppliedAfter  *time.Time
	AppliedBefore *time.Time
	FollowUpBy    *time.Time
}

// CreateApplication inserts a new application record. Returns ErrReferential
// when CompanyID does not reference an existing company; the applications
// relation is left unchanged on failure.
func (s *Store) CreateApplication(ctx context.Context, app *model.Application) error {
	if err := s.DB.WithContext(ctx).Create(app).Error; err != nil {
		return translate(err)
	}
	return nil
}

// GetApplicationByID fetches a single application. Returns ErrNotFound on
// unknown id.
func (s *Store) GetApplicationByID(ctx context.Context, id uint) (model.Application, error) {
	var app model.Application
	err := s.DB.WithContext(ctx).Where("id = ?", id).First(&app).Error
	if err != nil {
		return model.Application{}, translate(err)
	}
	return app, nil
}

// UpdateApplication overwrites only the supplied fields of an existing
// application, leaving the rest untouched. Returns ErrNotFound on unknown id.
func (s *Store) UpdateApplication(ctx context.Context, id uint, patch model.EditableApplicationInfo) (model.Application, error) {
	app, err := s.GetApplicationByID(ctx, id)
	if err != nil {
		return model.Application{}, err
	}

	utilities.MergeNonEmpty(&app.EditableApplicationInfo, &patch)

	if err := s.DB.WithContext(ctx).Save(&app).Error; err != nil {
		return model.Application{}, translate(err)
	}
	return app, nil
}

// ListApplications returns applications joined with their company name in
// id order, optionally narrowed by filter.
func (s *Store) ListApplications(ctx context.Context, filter *Filter) ([]ApplicationRow, error) {
	query := s.DB.WithContext(ctx).
		Model(&model.Application{}).
		Select("applications.*, companies.name AS company_name").
		Joins("JOIN companies ON companies.id = applications.company_id")

	if filter != nil {
		if filter.Status != "" {
			query = query.Where("applications.status = ?", filter.Status)
		}
		if filter.AppliedAfter != nil {
			query = query.Where("applications.applied_date >= ?", *filter.AppliedAfter)
		}
		if filter.AppliedBefore != nil {
			query = query.Where("applications.applied_date <= ?", *filter.AppliedBefore)
		}
		if filter.FollowUpBy != nil {
			query = query.Where("applications.follow_up_date <= ?", *filter.FollowUpBy)
		}
	}

	rows := []ApplicationRow{}
	if err := query.Order("applications.id ASC").Scan(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}
