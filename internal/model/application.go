package model

import (
	"time"
)

// Status is a pipeline stage of an application. The vocabulary is closed:
// any other string is rejected at the HTTP boundary, though the store itself
// stays permissive about transitions between stages.
type Status string

const (
	// StatusApplied indicates the application has been submitted
	StatusApplied Status = "Applied"
	// StatusScreening indicates a recruiter screen is in progress
	StatusScreening Status = "Screening"
	// StatusTechInterview indicates a technical interview round
	StatusTechInterview Status = "Tech Interview"
	// StatusManagerInterview indicates a hiring-manager interview round
	StatusManagerInterview Status = "Manager Interview"
	// StatusOffer indicates an offer has been extended
	StatusOffer Status = "Offer"
	// StatusRejected indicates the application was rejected
	StatusRejected Status = "Rejected"
	// StatusOfferAccepted indicates an extended offer was accepted
	StatusOfferAccepted Status = "Offer Accepted"
)

// AllStatuses lists every settable pipeline stage.
var AllStatuses = []Status{
	StatusApplied,
	StatusScreening,
	StatusTechInterview,
	StatusManagerInterview,
	StatusOffer,
	StatusRejected,
	StatusOfferAccepted,
}

// Valid reports whether s belongs to the status vocabulary.
func (s Status) Valid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// EditableApplicationInfo is the part of an application that can be edited
// after creation. Everything else is written once at apply time.
type EditableApplicationInfo struct {
	Status       Status     `gorm:"type:text" json:"status"`
	FollowUpDate *time.Time `gorm:"type:date" json:"follow_up_date,omitempty"`
	MeetingLink  string     `gorm:"type:text" json:"meeting_link"`
	Notes        string     `gorm:"type:text" json:"notes"`
}

// Application is gorm model for a job application record
type Application struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyID uint    `gorm:"not null;index" json:"company_id" binding:"required"`
	Company   Company `gorm:"foreignKey:CompanyID;references:ID" json:"-"`

	PositionTitle string     `gorm:"type:text" json:"position_title"`
	JobLink       string     `gorm:"type:text" json:"job_link"`
	AppliedDate   *time.Time `gorm:"type:date" json:"applied_date,omitempty"`
	ResumeVersion string     `gorm:"type:text" json:"resume_version"`
	EditableApplicationInfo
}
