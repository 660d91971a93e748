package repository

import (
	"context"

	"jobcrm-backend/internal/model"
)

// ContactRow is a contact joined with its company name.
type ContactRow struct {
	model.Contact
	CompanyName string `json:"company_name"`
}

// CreateContact inserts a new contact record. Returns ErrReferential when
// CompanyID does not reference an existing company. Contacts are immutable
// after creation; there is no update or delete surface.
func (s *Store) CreateContact(ctx context.Context, contact *model.Contact) error {
	if err := s.DB.WithContext(ctx).Create(contact).Error; err != nil {
		return translate(err)
	}
	return nil
}

// ListContacts returns every contact joined with its company name in id order.
func (s *Store) ListContacts(ctx context.Context) ([]ContactRow, error) {
	rows := []ContactRow{}
	err := s.DB.WithContext(ctx).
		Model(&model.Contact{}).
		Select("contacts.*, companies.name AS company_name").
		Joins("JOIN companies ON companies.id = contacts.company_id").
		Order("contacts.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}
