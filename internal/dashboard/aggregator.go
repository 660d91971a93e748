// Package dashboard computes pipeline metrics from the current store
// contents. Every computation is a synchronous, idempotent read; nothing
// here mutates state.
package dashboard

import (
	"context"
	"time"

	"jobcrm-backend/internal/model"
	"jobcrm-backend/internal/repository"
	"jobcrm-backend/internal/status"
)

// Aggregator derives dashboard views from the repository.
type Aggregator struct {
	Store *repository.Store
}

// New creates an Aggregator over the given store.
func New(store *repository.Store) *Aggregator {
	return &Aggregator{Store: store}
}

// Metrics is the headline counter block of the dashboard.
type Metrics struct {
	TotalApplications  int64 `json:"total_applications"`
	ActiveApplications int64 `json:"active_applications"`
	Interviews         int64 `json:"interviews"`
}

// ActionItem is an application requiring attention, paired with its
// company name for display.
type ActionItem struct {
	ApplicationID uint         `json:"application_id"`
	Company       string       `json:"company"`
	PositionTitle string       `json:"position_title"`
	Status        model.Status `json:"status"`
	FollowUpDate  *time.Time   `json:"follow_up_date,omitempty"`
	MeetingLink   string       `json:"meeting_link"`
}

// TotalApplications counts every application record.
func (a *Aggregator) TotalApplications(ctx context.Context) (int64, error) {
	var count int64
	err := a.Store.DB.WithContext(ctx).Model(&model.Application{}).Count(&count).Error
	return count, err
}

// ActiveApplications counts applications still in play, i.e. everything
// except rejections and accepted offers.
func (a *Aggregator) ActiveApplications(ctx context.Context) (int64, error) {
	var count int64
	err := a.Store.DB.WithContext(ctx).
		Model(&model.Application{}).
		Where("status NOT IN ?", []model.Status{model.StatusRejected, model.StatusOfferAccepted}).
		Count(&count).Error
	return count, err
}

// InterviewCount counts applications at an interview stage.
func (a *Aggregator) InterviewCount(ctx context.Context) (int64, error) {
	var count int64
	err := a.Store.DB.WithContext(ctx).
		Model(&model.Application{}).
		Where("status IN ?", status.InterviewStatuses).
		Count(&count).Error
	return count, err
}

// Metrics computes the three headline counters in one pass.
func (a *Aggregator) Metrics(ctx context.Context) (Metrics, error) {
	var m Metrics
	var err error

	if m.TotalApplications, err = a.TotalApplications(ctx); err != nil {
		return Metrics{}, err
	}
	if m.ActiveApplications, err = a.ActiveApplications(ctx); err != nil {
		return Metrics{}, err
	}
	if m.Interviews, err = a.InterviewCount(ctx); err != nil {
		return Metrics{}, err
	}
	return m, nil
}

// ActionItems returns every application that needs attention as of today,
// in insertion order. The predicate itself lives in the status package.
func (a *Aggregator) ActionItems(ctx context.Context, today time.Time) ([]ActionItem, error) {
	rows, err := a.Store.ListApplications(ctx, nil)
	if err != nil {
		return nil, err
	}

	items := []ActionItem{}
	for _, row := range rows {
		if !status.NeedsAttention(row.Application, today) {
			continue
		}
		items = append(items, ActionItem{
			ApplicationID: row.ID,
			Company:       row.CompanyName,
			PositionTitle: row.PositionTitle,
			Status:        row.Status,
			FollowUpDate:  row.FollowUpDate,
			MeetingLink:   row.MeetingLink,
		})
	}
	return items, nil
}

// FunnelByStatus groups applications by their exact status string. Two
// differently cased or spaced statuses land in distinct buckets; the
// closed vocabulary at the entry surface keeps that from happening in
// practice, but the grouping itself does not normalise.
func (a *Aggregator) FunnelByStatus(ctx context.Context) (map[string]int64, error) {
	type bucket struct {
		Status string
		Count  int64
	}

	var buckets []bucket
	err := a.Store.DB.WithContext(ctx).
		Model(&model.Application{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}

	funnel := make(map[string]int64, len(buckets))
	for _, b := range buckets {
		funnel[b.Status] = b.Count
	}
	return funnel, nil
}
