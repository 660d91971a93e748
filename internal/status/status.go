// Package status derives attention and activity predicates from an
// application's stage and dates. Everything here is a pure function of its
// arguments; the dashboard queries mirror these rules in SQL.
package status

import (
	"time"

	"jobcrm-backend/internal/model"
)

// FollowUpWindowDays is the inclusive horizon for upcoming follow-ups.
const FollowUpWindowDays = 3

// InterviewStatuses is the interview family of the vocabulary. Membership
// here drives the interview count and the open-ended attention rule.
var InterviewStatuses = []model.Status{
	model.StatusTechInterview,
	model.StatusManagerInterview,
}

// IsInterview reports whether s is an interview-stage status.
func IsInterview(s model.Status) bool {
	for _, v := range InterviewStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsActive reports whether the application is still in play. Only a
// rejection or an accepted offer closes it out.
func IsActive(app model.Application) bool {
	return app.Status != model.StatusRejected && app.Status != model.StatusOfferAccepted
}

// NeedsAttention reports whether the application requires action as of
// today: the follow-up date falls within the next FollowUpWindowDays days
// inclusive, or the application is at an interview stage with a follow-up
// date that has not passed yet. Comparison is at date granularity.
func NeedsAttention(app model.Application, today time.Time) bool {
	if app.FollowUpDate == nil {
		return false
	}

	followUp := civil(*app.FollowUpDate)
	day := civil(today)

	if !followUp.Before(day) && !followUp.After(day.AddDate(0, 0, FollowUpWindowDays)) {
		return true
	}
	if IsInterview(app.Status) && !followUp.Before(day) {
		return true
	}
	return false
}

// civil truncates a timestamp to its calendar date.
func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
