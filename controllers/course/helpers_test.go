package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"lms/config"
	"lms/database"
	"lms/models"
	courseModels "lms/models/course"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

// setupTestDB opens a fresh in-memory database and installs it as the global
// instance. A single connection keeps sqlite happy under concurrent tests.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	config.AppConfig = &config.Config{
		SaltRound:      10,
		JWTKey:         "test-secret",
		CertificateDir: t.TempDir(),
	}

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Permission{},
		&courseModels.Course{},
		&courseModels.CourseModule{},
		&courseModels.CourseAssignment{},
		&courseModels.ModuleProgress{},
		&courseModels.CourseProgress{},
		&courseModels.Quiz{},
		&courseModels.QuizQuestion{},
		&courseModels.QuizOption{},
		&courseModels.QuizProgress{},
		&courseModels.Certificate{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	database.Database = database.DbInstance{Db: db}
	return db
}

// newTestApp builds a fiber app with the course routes under test and a stub
// auth middleware that injects the given user ID.
func newTestApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		return c.Next()
	})

	app.Post("/admin/courses/:courseId/assign", courseValidator.AssignCourse(), AssignCourse)
	app.Post("/admin/courses/:courseId/quiz", courseValidator.CreateQuiz(), AdminCreateQuiz)
	app.Get("/admin/course/:courseId/stats", courseValidator.CourseIDParam(), AdminGetCourseStats)
	app.Get("/admin/performance", AdminGetEmployeePerformance)
	app.Get("/admin/employee/:employeeId/tag-performance", courseValidator.EmployeeIDParam(), AdminGetTagPerformance)

	app.Patch("/user/courses/:courseId/modules/:moduleId", courseValidator.MarkModule(), MarkModuleCompleted)
	app.Get("/user/quiz/:courseId", courseValidator.CourseIDParam(), GetQuiz)
	app.Post("/user/submit-quiz/:courseId", courseValidator.SubmitQuiz(), SubmitQuiz)
	app.Get("/user/certificate/:courseId", courseValidator.CourseIDParam(), GetCertificate)
	app.Get("/user/stats/completion", GetCompletionStats)

	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}

	var parsed map[string]interface{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &parsed); err != nil {
			t.Fatalf("failed to decode response %q: %v", raw, err)
		}
	}

	return resp.StatusCode, parsed
}

func responseData(t *testing.T, parsed map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := parsed["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("response data is not an object: %v", parsed["data"])
	}
	return data
}

func createTestUser(t *testing.T, db *gorm.DB, name, email, role string) models.User {
	t.Helper()
	user := models.User{
		Name:        name,
		Email:       email,
		Password:    "hashed",
		Role:        role,
		Designation: "Engineer",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func createTestCourse(t *testing.T, db *gorm.DB, title, tag string) courseModels.Course {
	t.Helper()
	course := courseModels.Course{
		Title:       title,
		Description: "test course",
		Tag:         tag,
	}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("failed to create course: %v", err)
	}
	return course
}

func createTestModules(t *testing.T, db *gorm.DB, courseID uint, count int) []courseModels.CourseModule {
	t.Helper()
	modules := make([]courseModels.CourseModule, count)
	for i := range modules {
		modules[i] = courseModels.CourseModule{
			CourseID: courseID,
			Title:    fmt.Sprintf("Module %d", i+1),
			Content:  "content",
			Duration: 30,
		}
		if err := db.Create(&modules[i]).Error; err != nil {
			t.Fatalf("failed to create module: %v", err)
		}
	}
	return modules
}

func assignTestCourse(t *testing.T, db *gorm.DB, employeeID, courseID uint) {
	t.Helper()
	assignment := courseModels.CourseAssignment{
		EmployeeID: employeeID,
		CourseID:   courseID,
		AssignedAt: time.Now(),
	}
	if err := db.Create(&assignment).Error; err != nil {
		t.Fatalf("failed to create assignment: %v", err)
	}
}

func markModulePath(courseID, moduleID uint) string {
	return fmt.Sprintf("/user/courses/%d/modules/%d", courseID, moduleID)
}
