package learningPathController

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
	courseController "lms/controllers/course"
	"lms/database"
	"lms/models"
	courseModels "lms/models/course"
	lpModels "lms/models/learningpath"
	lpValidator "lms/validators/learningpath"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	config.AppConfig = &config.Config{SaltRound: 10, JWTKey: "test-secret"}

	dsn := fmt.Sprintf("file:lptestdb%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
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
		&courseModels.Course{},
		&courseModels.CourseModule{},
		&courseModels.CourseAssignment{},
		&courseModels.ModuleProgress{},
		&courseModels.CourseProgress{},
		&lpModels.LearningPath{},
		&lpModels.LearningPathCourse{},
		&lpModels.EmployeeLearningPath{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	database.Database = database.DbInstance{Db: db}
	return db
}

func newTestApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		return c.Next()
	})

	app.Post("/admin/learning-paths", lpValidator.CreateLearningPath(), CreateLearningPath)
	app.Get("/admin/learning-paths", GetLearningPaths)
	app.Post("/admin/learning-paths/assign", lpValidator.AssignLearningPath(), AssignLearningPath)
	app.Get("/admin/employee/:employeeId/learning-paths", lpValidator.EmployeeIDParam(), GetEmployeeLearningPath)

	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}

	return resp.StatusCode, parsed
}

func createUser(t *testing.T, db *gorm.DB, name, email, role string) models.User {
	t.Helper()
	user := models.User{Name: name, Email: email, Password: "hashed", Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createCourse(t *testing.T, db *gorm.DB, title string) courseModels.Course {
	t.Helper()
	course := courseModels.Course{Title: title, Description: "test", Tag: "DevOps", Duration: 60}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func TestCreateLearningPath(t *testing.T) {
	db := setupTestDB(t)

	admin := createUser(t, db, "Admin", "admin@example.com", "ADMIN")
	c1 := createCourse(t, db, "Docker Basics")
	c2 := createCourse(t, db, "Kubernetes")

	app := newTestApp(admin.ID)

	status, body := doRequest(t, app, "POST", "/admin/learning-paths", map[string]interface{}{
		"title":       "Platform Track",
		"description": "Container fundamentals",
		"course_ids":  []uint{c1.ID, c2.ID},
	})
	require.Equal(t, 201, status)
	assert.Equal(t, float64(2), body["data"].(map[string]interface{})["total_courses"])

	var links int64
	db.Model(&lpModels.LearningPathCourse{}).Count(&links)
	assert.Equal(t, int64(2), links)
}

func TestCreateLearningPathUnknownCourse(t *testing.T) {
	db := setupTestDB(t)

	admin := createUser(t, db, "Admin", "admin@example.com", "ADMIN")
	c1 := createCourse(t, db, "Docker Basics")

	app := newTestApp(admin.ID)

	status, _ := doRequest(t, app, "POST", "/admin/learning-paths", map[string]interface{}{
		"title":      "Platform Track",
		"course_ids": []uint{c1.ID, 999},
	})
	assert.Equal(t, 404, status)

	var paths int64
	db.Model(&lpModels.LearningPath{}).Count(&paths)
	assert.Equal(t, int64(0), paths)
}

func TestAssignLearningPathIdempotent(t *testing.T) {
	db := setupTestDB(t)

	admin := createUser(t, db, "Admin", "admin@example.com", "ADMIN")
	employee := createUser(t, db, "Asha", "asha@example.com", "EMPLOYEE")
	c1 := createCourse(t, db, "Docker Basics")

	app := newTestApp(admin.ID)

	status, body := doRequest(t, app, "POST", "/admin/learning-paths", map[string]interface{}{
		"title":      "Platform Track",
		"course_ids": []uint{c1.ID},
	})
	require.Equal(t, 201, status)
	pathID := uint(body["data"].(map[string]interface{})["ID"].(float64))

	assign := map[string]interface{}{
		"employee_ids":      []uint{employee.ID},
		"learning_path_ids": []uint{pathID},
	}

	status, _ = doRequest(t, app, "POST", "/admin/learning-paths/assign", assign)
	require.Equal(t, 201, status)

	status, body = doRequest(t, app, "POST", "/admin/learning-paths/assign", assign)
	require.Equal(t, 200, status)
	assert.Equal(t, "All learning paths are already assigned!", body["message"])

	var count int64
	db.Model(&lpModels.EmployeeLearningPath{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetEmployeeLearningPathProgress(t *testing.T) {
	db := setupTestDB(t)

	admin := createUser(t, db, "Admin", "admin@example.com", "ADMIN")
	employee := createUser(t, db, "Asha", "asha@example.com", "EMPLOYEE")

	c1 := createCourse(t, db, "Docker Basics")
	c2 := createCourse(t, db, "Kubernetes")

	path := lpModels.LearningPath{Title: "Platform Track", TotalCourses: 2}
	require.NoError(t, db.Create(&path).Error)
	require.NoError(t, db.Create(&lpModels.LearningPathCourse{LearningPathID: path.ID, CourseID: c1.ID}).Error)
	require.NoError(t, db.Create(&lpModels.LearningPathCourse{LearningPathID: path.ID, CourseID: c2.ID}).Error)
	require.NoError(t, db.Create(&lpModels.EmployeeLearningPath{EmployeeID: employee.ID, LearningPathID: path.ID}).Error)

	// Only the first course is assigned, with one of two modules done
	require.NoError(t, db.Create(&courseModels.CourseAssignment{
		EmployeeID: employee.ID, CourseID: c1.ID, AssignedAt: time.Now(),
	}).Error)
	modules := []courseModels.CourseModule{
		{CourseID: c1.ID, Title: "M1", Content: "c", Duration: 30},
		{CourseID: c1.ID, Title: "M2", Content: "c", Duration: 30},
	}
	for i := range modules {
		require.NoError(t, db.Create(&modules[i]).Error)
	}
	require.NoError(t, db.Create(&courseModels.ModuleProgress{
		EmployeeID: employee.ID, CourseID: c1.ID, ModuleID: modules[0].ID,
		IsCompleted: true, CompletedAt: time.Now(),
	}).Error)
	_, err := courseController.RecomputeCourseProgress(db, employee.ID, c1.ID)
	require.NoError(t, err)

	app := newTestApp(admin.ID)
	status, body := doRequest(t, app, "GET", fmt.Sprintf("/admin/employee/%d/learning-paths", employee.ID), nil)
	require.Equal(t, 200, status)

	paths, ok := body["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, paths, 1)

	courses := paths[0].(map[string]interface{})["courses"].([]interface{})
	require.Len(t, courses, 2)

	first := courses[0].(map[string]interface{})
	assert.Equal(t, true, first["assigned"])
	assert.Equal(t, float64(50), first["completion_percentage"])

	second := courses[1].(map[string]interface{})
	assert.Equal(t, false, second["assigned"])
	assert.Equal(t, float64(0), second["completion_percentage"])
}
