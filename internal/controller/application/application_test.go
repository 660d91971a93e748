package application

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

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
	ac := NewApplicationController(repository.New(testDB))
	r.POST("/application", ac.CreateApplication)
	r.PATCH("/application/:id", ac.UpdateApplication)
	r.GET("/application", ac.GetApplications)
	return r
}

func TestCreateApplication_NewCompanyName(t *testing.T) {
	r := newRouter()

	body := gin.H{
		"company_name":   "Vandelay Industries",
		"position_title": "Importer-Exporter",
	}

	rec, resp := testutil.MakeJSONRequest(body, r, "/application", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	firstCompanyID := resp["company_id"]
	assert.NotNil(t, firstCompanyID)
	assert.Equal(t, string(model.StatusApplied), resp["status"])

	// same name resolves to the same company, no duplicate row
	rec2, resp2 := testutil.MakeJSONRequest(body, r, "/application", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec2.Code)
	assert.Equal(t, firstCompanyID, resp2["company_id"])

	var count int64
	assert.NoError(t, testDB.Model(&model.Company{}).Where("name = ?", "Vandelay Industries").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateApplication_ExistingCompanyID(t *testing.T) {
	r := newRouter()

	body := gin.H{
		"company_id":     database.TestCompany1.ID,
		"position_title": "Engineer",
		"status":         "Screening",
	}

	rec, resp := testutil.MakeJSONRequest(body, r, "/application", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(database.TestCompany1.ID), resp["company_id"])
	assert.Equal(t, "Screening", resp["status"])
}

func TestCreateApplication_UnknownCompanyID(t *testing.T) {
	r := newRouter()

	body := gin.H{
		"company_id":     999999,
		"position_title": "Engineer",
	}

	rec, resp := testutil.MakeJSONRequest(body, r, "/application", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["error"], "Unknown company id")
}

func TestCreateApplication_MissingCompany(t *testing.T) {
	r := newRouter()

	body := gin.H{"position_title": "Engineer"}

	rec, resp := testutil.MakeJSONRequest(body, r, "/application", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["error"], "company_id or company_name")
}

func TestCreateApplication_InvalidStatus(t *testing.T) {
	r := newRouter()

	body := gin.H{
		"company_id":     database.TestCompany1.ID,
		"position_title": "Engineer",
		"status":         "Ghosted",
	}

	rec, _ := testutil.MakeJSONRequest(body, r, "/application", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateApplication_NotFound(t *testing.T) {
	r := newRouter()

	body := gin.H{"notes": "anyone home?"}

	rec, resp := testutil.MakeJSONRequest(body, r, "/application/999999", http.MethodPatch)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, resp["error"], "not found")
}

func TestUpdateApplication_PartialUpdate(t *testing.T) {
	store := repository.New(testDB)

	app := model.Application{
		CompanyID:     database.TestCompany1.ID,
		PositionTitle: "Backend Engineer",
		EditableApplicationInfo: model.EditableApplicationInfo{
			Status:      model.StatusScreening,
			MeetingLink: "https://meet.example.com/screen",
		},
	}
	if err := store.CreateApplication(context.Background(), &app); err != nil {
		t.Fatalf("failed to create application: %v", err)
	}

	r := newRouter()
	body := gin.H{"notes": "Recruiter call went well"}

	rec, resp := testutil.MakeJSONRequest(body, r, "/application/"+itoa(app.ID), http.MethodPatch)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Recruiter call went well", resp["notes"])
	assert.Equal(t, "Screening", resp["status"])
	assert.Equal(t, "https://meet.example.com/screen", resp["meeting_link"])
}

func TestGetApplications_StatusFilter(t *testing.T) {
	store := repository.New(testDB)

	app := model.Application{
		CompanyID:     database.TestCompany2.ID,
		PositionTitle: "Unique Role For Filtering",
		EditableApplicationInfo: model.EditableApplicationInfo{
			Status: model.StatusManagerInterview,
		},
	}
	if err := store.CreateApplication(context.Background(), &app); err != nil {
		t.Fatalf("failed to create application: %v", err)
	}

	r := newRouter()
	rec, _ := testutil.MakeJSONRequest(nil, r, "/application?status=Manager%20Interview", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unique Role For Filtering")
	assert.Contains(t, rec.Body.String(), database.TestCompany2.Name)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
