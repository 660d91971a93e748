// Package repository implements the CRUD surface over companies, contacts
// and applications. Every operation is synchronous and all-or-nothing;
// failures surface through the taxonomy in errors.go.
package repository

import (
	"context"
	"errors"

	"jobcrm-backend/internal/database"
	"jobcrm-backend/internal/model"
)

// Store wraps the shared database handle. At most one writer is assumed
// at a time; no cross-call transaction discipline beyond get-or-create.
type Store struct {
	DB *database.DBinstanceStruct
}

// New creates a Store bound to the given database instance.
func New(db *database.DBinstanceStruct) *Store {
	return &Store{DB: db}
}

// FindCompanyByName looks a company up by exact name.
// Returns ErrNotFound on miss.
func (s *Store) FindCompanyByName(ctx context.Context, name string) (model.Company, error) {
	var company model.Company
	err := s.DB.WithContext(ctx).Where("name = ?", name).First(&company).Error
	if err != nil {
		return model.Company{}, translate(err)
	}
	return company, nil
}

// CreateCompany inserts a new company record. Returns ErrConflict when the
// name is already taken; the companies relation is left unchanged.
func (s *Store) CreateCompany(ctx context.Context, company *model.Company) error {
	if err := s.DB.WithContext(ctx).Create(company).Error; err != nil {
		return translate(err)
	}
	return nil
}

// GetOrCreateCompany returns the company with the given name, creating it
// on miss. Called twice with the same name it returns the same id both
// times and leaves exactly one row behind; a conflicting insert is absorbed
// by re-reading instead of being surfaced.
func (s *Store) GetOrCreateCompany(ctx context.Context, name string) (model.Company, error) {
	company, err := s.FindCompanyByName(ctx, name)
	if err == nil {
		return company, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return model.Company{}, err
	}

	company = model.Company{Name: name}
	if err := s.CreateCompany(ctx, &company); err != nil {
		if errors.Is(err, ErrConflict) {
			// Row appeared between lookup and insert
			return s.FindCompanyByName(ctx, name)
		}
		return model.Company{}, err
	}
	return company, nil
}

// ListCompanies returns every company in id order.
func (s *Store) ListCompanies(ctx context.Context) ([]model.Company, error) {
	var companies []model.Company
	err := s.DB.WithContext(ctx).Order("id ASC").Find(&companies).Error
	if err != nil {
		return nil, translate(err)
	}
	return companies, nil
}

// GetCompanyByID fetches a single company. Returns ErrNotFound on unknown id.
func (s *Store) GetCompanyByID(ctx context.Context, id uint) (model.Company, error) {
	var company model.Company
	err := s.DB.WithContext(ctx).
		Preload("Contacts").
		Preload("Applications").
		Where("id = ?", id).
		First(&company).Error
	if err != nil {
		return model.Company{}, translate(err)
	}
	return company, nil
}
