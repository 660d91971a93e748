package company

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
	cc := NewCompanyController(repository.New(testDB))
	r.POST("/company", cc.CreateCompany)
	r.GET("/company", cc.GetCompanies)
	r.GET("/company/:id", cc.GetCompanyByID)
	return r
}

func TestCreateCompany(t *testing.T) {
	r := newRouter()

	body := gin.H{
		"name":    "Pied Piper",
		"website": "https://piedpiper.example.com",
		"notes":   "Series B, hiring platform engineers",
	}

	rec, resp := testutil.MakeJSONRequest(body, r, "/company", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Pied Piper", resp["name"])
	assert.NotZero(t, resp["id"])
}

func TestCreateCompany_DuplicateName(t *testing.T) {
	r := newRouter()

	body := gin.H{"name": "Aviato"}

	rec, _ := testutil.MakeJSONRequest(body, r, "/company", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec2, resp2 := testutil.MakeJSONRequest(body, r, "/company", http.MethodPost)
	assert.Equal(t, http.StatusConflict, rec2.Code)
	assert.Contains(t, resp2["error"], "already exists")
}

func TestCreateCompany_MissingName(t *testing.T) {
	r := newRouter()

	rec, _ := testutil.MakeJSONRequest(gin.H{"website": "https://nameless.example.com"}, r, "/company", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCompanyByID(t *testing.T) {
	r := newRouter()

	rec, resp := testutil.MakeJSONRequest(nil, r, "/company/"+strconv.FormatUint(uint64(database.TestCompany1.ID), 10), http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, database.TestCompany1.Name, resp["name"])
}

func TestGetCompanyByID_NotFound(t *testing.T) {
	r := newRouter()

	rec, resp := testutil.MakeJSONRequest(nil, r, "/company/999999", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, resp["error"], "not found")
}

func TestGetCompanies(t *testing.T) {
	r := newRouter()

	rec, _ := testutil.MakeJSONRequest(nil, r, "/company", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), database.TestCompany1.Name)
	assert.Contains(t, rec.Body.String(), database.TestCompany2.Name)
}
