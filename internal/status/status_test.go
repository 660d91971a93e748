package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"jobcrm-backend/internal/model"
)

func appWith(s model.Status, followUp *time.Time) model.Application {
	return model.Application{
		EditableApplicationInfo: model.EditableApplicationInfo{
			Status:       s,
			FollowUpDate: followUp,
		},
	}
}

func datePtr(t time.Time) *time.Time { return &t }

func TestNeedsAttention_FollowUpToday(t *testing.T) {
	today := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

	app := appWith(model.StatusApplied, datePtr(today))
	assert.True(t, NeedsAttention(app, today))
}

func TestNeedsAttention_WindowEdges(t *testing.T) {
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	// third day out is still inside the inclusive window
	app := appWith(model.StatusScreening, datePtr(today.AddDate(0, 0, 3)))
	assert.True(t, NeedsAttention(app, today))

	// fourth day out is past the window for non-interview stages
	app = appWith(model.StatusScreening, datePtr(today.AddDate(0, 0, 4)))
	assert.False(t, NeedsAttention(app, today))

	// yesterday no longer needs attention
	app = appWith(model.StatusApplied, datePtr(today.AddDate(0, 0, -1)))
	assert.False(t, NeedsAttention(app, today))
}

func TestNeedsAttention_InterviewIgnoresWindow(t *testing.T) {
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	app := appWith(model.StatusTechInterview, datePtr(today.AddDate(0, 0, 100)))
	assert.True(t, NeedsAttention(app, today))

	app = appWith(model.StatusManagerInterview, datePtr(today.AddDate(0, 0, 30)))
	assert.True(t, NeedsAttention(app, today))

	// past follow-up date closes the interview rule too
	app = appWith(model.StatusTechInterview, datePtr(today.AddDate(0, 0, -2)))
	assert.False(t, NeedsAttention(app, today))
}

func TestNeedsAttention_NoFollowUpDate(t *testing.T) {
	today := time.Now()
	app := appWith(model.StatusTechInterview, nil)
	assert.False(t, NeedsAttention(app, today))
}

func TestNeedsAttention_DateGranularity(t *testing.T) {
	// a follow-up later today must count even when the clock already passed it
	today := time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)
	followUp := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	app := appWith(model.StatusApplied, datePtr(followUp))
	assert.True(t, NeedsAttention(app, today))
}

func TestIsActive(t *testing.T) {
	for _, s := range []model.Status{
		model.StatusApplied,
		model.StatusScreening,
		model.StatusTechInterview,
		model.StatusManagerInterview,
		model.StatusOffer,
	} {
		assert.True(t, IsActive(appWith(s, nil)), "expected %s to be active", s)
	}

	assert.False(t, IsActive(appWith(model.StatusRejected, nil)))
	assert.False(t, IsActive(appWith(model.StatusOfferAccepted, nil)))
}

func TestIsInterview(t *testing.T) {
	assert.True(t, IsInterview(model.StatusTechInterview))
	assert.True(t, IsInterview(model.StatusManagerInterview))
	assert.False(t, IsInterview(model.StatusApplied))
	assert.False(t, IsInterview(model.StatusOffer))
}
