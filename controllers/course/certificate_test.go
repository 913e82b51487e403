package controllers

import (
	"fmt"
	"os"
	"testing"

	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func certificatePath(courseID uint) string {
	return fmt.Sprintf("/user/certificate/%d", courseID)
}

func TestCertificateRequiresFullCompletion(t *testing.T) {
	db := setupTestDB(t)

	employee := createTestUser(t, db, "Asha", "asha@example.com", "EMPLOYEE")
	course := createTestCourse(t, db, "Go Fundamentals", "Web Development")
	modules := createTestModules(t, db, course.ID, 2)
	assignTestCourse(t, db, employee.ID, course.ID)

	app := newTestApp(employee.ID)

	// No progress at all
	status, _ := doRequest(t, app, "GET", certificatePath(course.ID), nil)
	assert.Equal(t, 400, status)

	// Halfway is still not enough
	doRequest(t, app, "PATCH", markModulePath(course.ID, modules[0].ID), nil)
	status, _ = doRequest(t, app, "GET", certificatePath(course.ID), nil)
	assert.Equal(t, 400, status)
}

func TestCertificateIssuedOnceAndReturned(t *testing.T) {
	db := setupTestDB(t)

	employee := createTestUser(t, db, "Asha", "asha@example.com", "EMPLOYEE")
	course := createTestCourse(t, db, "Go Fundamentals", "Web Development")
	modules := createTestModules(t, db, course.ID, 2)
	assignTestCourse(t, db, employee.ID, course.ID)

	app := newTestApp(employee.ID)
	for _, m := range modules {
		doRequest(t, app, "PATCH", markModulePath(course.ID, m.ID), nil)
	}

	status, body := doRequest(t, app, "GET", certificatePath(course.ID), nil)
	require.Equal(t, 201, status)
	issued := responseData(t, body)
	number := issued["certificate_number"].(string)
	require.NotEmpty(t, number)

	filePath := issued["file_path"].(string)
	_, err := os.Stat(filePath)
	require.NoError(t, err, "rendered certificate file must exist")

	// Re-requesting returns the same certificate, no new row
	status, body = doRequest(t, app, "GET", certificatePath(course.ID), nil)
	require.Equal(t, 200, status)
	assert.Equal(t, number, responseData(t, body)["certificate_number"])

	var count int64
	db.Model(&courseModels.Certificate{}).
		Where("user_id = ? AND course_id = ?", employee.ID, course.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCertificateUnknownCourse(t *testing.T) {
	db := setupTestDB(t)

	employee := createTestUser(t, db, "Asha", "asha@example.com", "EMPLOYEE")

	app := newTestApp(employee.ID)
	status, _ := doRequest(t, app, "GET", certificatePath(999), nil)
	assert.Equal(t, 404, status)
}
