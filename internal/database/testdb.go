package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "jobcrm-backend/internal/model"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported seeded records for use across package tests
var (
	TestCompany1 m.Company
	TestCompany2 m.Company

	TestContact1 m.Contact
	TestContact2 m.Contact

	TestApplication1 m.Application
	TestApplication2 m.Application
	TestApplication3 m.Application
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	// Seed sample companies, contacts and applications
	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts sample companies, contacts and applications if empty.
func seedTestData(db *DBinstanceStruct) error {
	var companyCount int64
	if err := db.Model(&m.Company{}).Count(&companyCount).Error; err != nil {
		return err
	}

	if companyCount > 0 {
		return loadTestData(db)
	}

	companies := []m.Company{
		{
			Name:    "TechNova",
			Website: "https://technova.example.com",
			Notes:   "Platform team is hiring across the board",
		},
		{
			Name:    "DataForge",
			Website: "https://dataforge.example.com",
			Notes:   "Referred by meetup contact",
		},
	}
	if err := db.Create(&companies).Error; err != nil {
		return err
	}
	TestCompany1 = companies[0]
	TestCompany2 = companies[1]

	contacts := []m.Contact{
		{
			CompanyID:        TestCompany1.ID,
			Name:             "Alice Nguyen",
			Role:             "Engineering Manager",
			Email:            "alice@technova.example.com",
			Linkedin:         "alice-nguyen",
			ReferralStrength: m.ReferralFriend,
		},
		{
			CompanyID:        TestCompany2.ID,
			Name:             "Bob Somsak",
			Role:             "Recruiter",
			Email:            "bob@dataforge.example.com",
			Linkedin:         "bob-somsak",
			ReferralStrength: m.ReferralCold,
		},
	}
	if err := db.Create(&contacts).Error; err != nil {
		return err
	}
	TestContact1 = contacts[0]
	TestContact2 = contacts[1]

	applied := time.Now().AddDate(0, 0, -14)
	followUpSoon := time.Now().AddDate(0, 0, 2)
	followUpLater := time.Now().AddDate(0, 0, 10)

	applications := []m.Application{
		{
			CompanyID:     TestCompany1.ID,
			PositionTitle: "Backend Engineer",
			JobLink:       "https://technova.example.com/jobs/backend",
			AppliedDate:   &applied,
			ResumeVersion: "v1.0",
			EditableApplicationInfo: m.EditableApplicationInfo{
				Status:       m.StatusApplied,
				FollowUpDate: &followUpSoon,
			},
		},
		{
			CompanyID:     TestCompany1.ID,
			PositionTitle: "Platform Engineer",
			JobLink:       "https://technova.example.com/jobs/platform",
			AppliedDate:   &applied,
			ResumeVersion: "v1.1",
			EditableApplicationInfo: m.EditableApplicationInfo{
				Status:       m.StatusTechInterview,
				FollowUpDate: &followUpLater,
				MeetingLink:  "https://meet.example.com/technova",
			},
		},
		{
			CompanyID:     TestCompany2.ID,
			PositionTitle: "Data Engineer",
			JobLink:       "https://dataforge.example.com/jobs/data",
			AppliedDate:   &applied,
			ResumeVersion: "v1.0",
			EditableApplicationInfo: m.EditableApplicationInfo{
				Status: m.StatusRejected,
				Notes:  "Position filled internally",
			},
		},
	}
	if err := db.Create(&applications).Error; err != nil {
		return err
	}
	TestApplication1 = applications[0]
	TestApplication2 = applications[1]
	TestApplication3 = applications[2]

	return nil
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	if err := db.First(&TestCompany1, "name = ?", "TechNova").Error; err != nil {
		return err
	}
	if err := db.First(&TestCompany2, "name = ?", "DataForge").Error; err != nil {
		return err
	}

	_ = db.First(&TestContact1, "company_id = ?", TestCompany1.ID).Error
	_ = db.First(&TestContact2, "company_id = ?", TestCompany2.ID).Error

	var apps []m.Application
	if err := db.Order("id ASC").Limit(3).Find(&apps).Error; err == nil {
		if len(apps) > 0 {
			TestApplication1 = apps[0]
		}
		if len(apps) > 1 {
			TestApplication2 = apps[1]
		}
		if len(apps) > 2 {
			TestApplication3 = apps[2]
		}
	}

	return nil
}
