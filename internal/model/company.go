// Package model contain gorm model for recording data to database
package model

// Company is gorm model for a company being tracked in the job pipeline.
// Name is the only uniqueness constraint enforced by the store.
type Company struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"uniqueIndex;not null" json:"name" binding:"required"`
	Website string `gorm:"type:text" json:"website"`
	Notes   string `gorm:"type:text" json:"notes"`

	Contacts     []Contact     `gorm:"foreignKey:CompanyID" json:"contacts,omitempty"`
	Applications []Application `gorm:"foreignKey:CompanyID" json:"applications,omitempty"`
}
