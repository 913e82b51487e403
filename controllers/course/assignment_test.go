package controllers

import (
	"fmt"
	"testing"

	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func assignPath(courseID uint) string {
	return fmt.Sprintf("/admin/courses/%d/assign", courseID)
}

func assignedCount(t *testing.T, db *gorm.DB, courseID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&courseModels.CourseAssignment{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).Count(&count).Error)
	return count
}

func TestAssignCourseIdempotent(t *testing.T) {
	db := setupTestDB(t)

	admin := createTestUser(t, db, "Admin", "admin@example.com", "ADMIN")
	e1 := createTestUser(t, db, "Asha", "asha@example.com", "EMPLOYEE")
	e2 := createTestUser(t, db, "Ravi", "ravi@example.com", "EMPLOYEE")
	course := createTestCourse(t, db, "Go Fundamentals", "Web Development")

	app := newTestApp(admin.ID)

	status, _ := doRequest(t, app, "POST", assignPath(course.ID),
		map[string]interface{}{"employee_ids": []uint{e1.ID, e2.ID}})
	require.Equal(t, 201, status)
	assert.Equal(t, int64(2), assignedCount(t, db, course.ID))

	// Repeating the exact same request is a no-op success
	status, body := doRequest(t, app, "POST", assignPath(course.ID),
		map[string]interface{}{"employee_ids": []uint{e1.ID, e2.ID}})
	require.Equal(t, 200, status)
	assert.Equal(t, "All employees are already assigned to this course!", body["message"])
	assert.Equal(t, int64(2), assignedCount(t, db, course.ID))
}

func TestAssignCoursePartialOverlap(t *testing.T) {
	db := setupTestDB(t)

	admin := createTestUser(t, db, "Admin", "admin@example.com", "ADMIN")
	e1 := createTestUser(t, db, "Asha", "asha@example.com", "EMPLOYEE")
	e2 := createTestUser(t, db, "Ravi", "ravi@example.com", "EMPLOYEE")
	course := createTestCourse(t, db, "Go Fundamentals", "Web Development")
	assignTestCourse(t, db, e1.ID, course.ID)

	app := newTestApp(admin.ID)

	status, body := doRequest(t, app, "POST", assignPath(course.ID),
		map[string]interface{}{"employee_ids": []uint{e1.ID, e2.ID}})
	require.Equal(t, 201, status)

	// Only the unassigned employee gets a new record
	created, ok := body["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, created, 1)
	assert.Equal(t, int64(2), assignedCount(t, db, course.ID))
}

func TestAssignCourseDeduplicatesRequest(t *testing.T) {
	db := setupTestDB(t)

	admin := createTestUser(t, db, "Admin", "admin@example.com", "ADMIN")
	e1 := createTestUser(t, db, "Asha", "asha@example.com", "EMPLOYEE")
	course := createTestCourse(t, db, "Go Fundamentals", "Web Development")

	app := newTestApp(admin.ID)

	status, _ := doRequest(t, app, "POST", assignPath(course.ID),
		map[string]interface{}{"employee_ids": []uint{e1.ID, e1.ID, e1.ID}})
	require.Equal(t, 201, status)
	assert.Equal(t, int64(1), assignedCount(t, db, course.ID))
}

func TestAssignCourseUnknownCourse(t *testing.T) {
	db := setupTestDB(t)

	admin := createTestUser(t, db, "Admin", "admin@example.com", "ADMIN")
	e1 := createTestUser(t, db, "Asha", "asha@example.com", "EMPLOYEE")

	app := newTestApp(admin.ID)

	status, _ := doRequest(t, app, "POST", assignPath(999),
		map[string]interface{}{"employee_ids": []uint{e1.ID}})
	assert.Equal(t, 404, status)
}

func TestAssignCourseEmptyEmployeeList(t *testing.T) {
	db := setupTestDB(t)

	admin := createTestUser(t, db, "Admin", "admin@example.com", "ADMIN")
	course := createTestCourse(t, db, "Go Fundamentals", "Web Development")

	app := newTestApp(admin.ID)

	status, _ := doRequest(t, app, "POST", assignPath(course.ID),
		map[string]interface{}{"employee_ids": []uint{}})
	assert.Equal(t, 422, status)
}
