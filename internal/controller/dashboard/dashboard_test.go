package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

	agg "jobcrm-backend/internal/dashboard"
	"jobcrm-backend/internal/database"
	"jobcrm-backend/internal/model"
	"jobcrm-backend/internal/repository"
	"jobcrm-backend/internal/testutil"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var tearDown func(context.Context, ...testcontainers.TerminateOption) error
	tearDown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}

	m.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if tearDown != nil {
		_ = tearDown(ctx)
	}
}

func newRouter() *gin.Engine {
	r := gin.Default()
	dc := NewDashboardController(agg.New(repository.New(testDB)))
	r.GET("/dashboard/metrics", dc.GetMetrics)
	r.GET("/dashboard/actions", dc.GetActionItems)
	r.GET("/dashboard/funnel", dc.GetFunnel)
	return r
}

func resetApplications(t *testing.T) {
	t.Helper()
	if err := testDB.Exec("DELETE FROM applications").Error; err != nil {
		t.Fatalf("failed to reset applications: %v", err)
	}
}

func seedApplication(t *testing.T, s model.Status, followUp *time.Time) {
	t.Helper()
	app := model.Application{
		CompanyID:     database.TestCompany1.ID,
		PositionTitle: "Engineer",
		EditableApplicationInfo: model.EditableApplicationInfo{
			Status:       s,
			FollowUpDate: followUp,
		},
	}
	if err := testDB.Create(&app).Error; err != nil {
		t.Fatalf("failed to seed application: %v", err)
	}
}

func TestGetMetrics(t *testing.T) {
	resetApplications(t)
	seedApplication(t, model.StatusApplied, nil)
	seedApplication(t, model.StatusTechInterview, nil)
	seedApplication(t, model.StatusRejected, nil)

	r := newRouter()
	rec, resp := testutil.MakeJSONRequest(nil, r, "/dashboard/metrics", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(3), resp["total_applications"])
	assert.Equal(t, float64(2), resp["active_applications"])
	assert.Equal(t, float64(1), resp["interviews"])
}

func TestGetFunnel(t *testing.T) {
	resetApplications(t)
	seedApplication(t, model.StatusApplied, nil)
	seedApplication(t, model.StatusApplied, nil)
	seedApplication(t, model.StatusOffer, nil)

	r := newRouter()
	rec, resp := testutil.MakeJSONRequest(nil, r, "/dashboard/funnel", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), resp["Applied"])
	assert.Equal(t, float64(1), resp["Offer"])
}

func TestGetActionItems_PinnedDate(t *testing.T) {
	resetApplications(t)
	today := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	soon := today.AddDate(0, 0, 1)
	farOut := today.AddDate(0, 0, 60)

	seedApplication(t, model.StatusApplied, &soon)
	seedApplication(t, model.StatusManagerInterview, &farOut)
	seedApplication(t, model.StatusApplied, &farOut)

	r := newRouter()
	rec, _ := testutil.MakeJSONRequest(nil, r, "/dashboard/actions?today=2025-06-02", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)

	var items []map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, database.TestCompany1.Name, item["company"])
	}
}

func TestGetActionItems_InvalidDate(t *testing.T) {
	r := newRouter()

	rec, resp := testutil.MakeJSONRequest(nil, r, "/dashboard/actions?today=tomorrow", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["error"], "Invalid today")
}
