package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "HireHub-backend/internal/model"
	"HireHub-backend/internal/utilities"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported test users seeded into the user documents collection.
var (
	TestAdminUser    m.User
	TestStudentUser  m.User
	TestEmployerUser m.User

	// Plain password shared by every seeded account.
	TestSeedPassword = "SeedPass123!"
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

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts one profile document per role if the collection is empty.
func seedTestData(db *DBinstanceStruct) error {
	var count int64
	if err := db.Model(&m.UserDocument{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return loadTestData(db)
	}

	hashedPwd, errHash := utilities.HashPassword(TestSeedPassword)
	if errHash != nil {
		return errHash
	}

	TestAdminUser = m.User{
		ID:        uuid.NewString(),
		Name:      "Seed Admin",
		Email:     "admin@example.com",
		Role:      m.RoleAdmin,
		CreatedAt: time.Now(),
	}
	TestStudentUser = m.User{
		ID:        uuid.NewString(),
		Name:      "Alice Nguyen",
		Email:     "student1@example.com",
		Role:      m.RoleStudent,
		CreatedAt: time.Now(),
		Student: &m.StudentProfile{
			Skills:    []string{"Go", "SQL"},
			Education: "B.Eng. Computer Engineering",
		},
	}
	TestEmployerUser = m.User{
		ID:        uuid.NewString(),
		Name:      "Bob Somsak",
		Email:     "employer1@example.com",
		Role:      m.RoleEmployer,
		CreatedAt: time.Now(),
		Employer: &m.EmployerProfile{
			CompanyName: "TechNova",
			CompanyLogo: "🏢",
			Industry:    "Software",
			IsApproved:  true,
		},
	}

	for _, u := range []m.User{TestAdminUser, TestStudentUser, TestEmployerUser} {
		doc, err := json.Marshal(u)
		if err != nil {
			return err
		}
		row := m.UserDocument{ID: u.ID, Doc: doc, PasswordHash: hashedPwd}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// loadTestData populates exported variables when documents already exist.
func loadTestData(db *DBinstanceStruct) error {
	var rows []m.UserDocument
	if err := db.Find(&rows).Error; err != nil {
		return err
	}
	for _, row := range rows {
		var u m.User
		if err := json.Unmarshal(row.Doc, &u); err != nil {
			continue
		}
		switch u.Role {
		case m.RoleAdmin:
			TestAdminUser = u
		case m.RoleStudent:
			TestStudentUser = u
		case m.RoleEmployer:
			TestEmployerUser = u
		}
	}
	return nil
}
