package controllers

import (
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetAssignedCourses lists the employee's assigned courses with their cached
// completion percentage
func GetAssignedCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var assignments []courseModels.CourseAssignment
	if err := database.Database.Db.Where("employee_id = ? AND is_deleted = ?", userID, false).
		Order("assigned_at desc").Find(&assignments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assigned courses!", nil)
	}

	type AssignedCourse struct {
		courseModels.Course
		AssignedAt           time.Time `json:"assigned_at"`
		CompletionPercentage float64   `json:"completion_percentage"`
	}

	result := make([]AssignedCourse, 0, len(assignments))
	for _, a := range assignments {
		var course courseModels.Course
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", a.CourseID, false).First(&course).Error; err != nil {
			continue
		}

		var progress courseModels.CourseProgress
		percentage := float64(0)
		if err := database.Database.Db.Where("employee_id = ? AND course_id = ?", userID, a.CourseID).First(&progress).Error; err == nil {
			percentage = progress.CompletionPercentage
		}

		result = append(result, AssignedCourse{
			Course:               course,
			AssignedAt:           a.AssignedAt,
			CompletionPercentage: percentage,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assigned courses fetched successfully!", result)
}

// GetCourseDetails gets a course with per-module completion flags and the
// employee's latest quiz attempt
func GetCourseDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var modules []courseModels.CourseModule
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("created_at asc").Find(&modules)

	type ModuleWithCompletion struct {
		courseModels.CourseModule
		IsCompleted bool `json:"is_completed"`
	}

	result := make([]ModuleWithCompletion, len(modules))
	for i, m := range modules {
		result[i] = ModuleWithCompletion{CourseModule: m}
		var progress courseModels.ModuleProgress
		if err := database.Database.Db.
			Where("employee_id = ? AND course_id = ? AND module_id = ? AND is_completed = ?", userID, courseID, m.ID, true).
			First(&progress).Error; err == nil {
			result[i].IsCompleted = true
		}
	}

	var courseProgress courseModels.CourseProgress
	percentage := float64(0)
	if err := database.Database.Db.Where("employee_id = ? AND course_id = ?", userID, courseID).First(&courseProgress).Error; err == nil {
		percentage = courseProgress.CompletionPercentage
	}

	// Latest quiz attempt, if the course has a quiz. Module-based completion
	// and quiz outcome are independent signals surfaced side by side.
	var quiz courseModels.Quiz
	hasQuiz := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).First(&quiz).Error == nil

	var latestAttempt *courseModels.QuizProgress
	if hasQuiz {
		var attempt courseModels.QuizProgress
		if err := database.Database.Db.
			Where("employee_id = ? AND quiz_id = ?", userID, quiz.ID).
			Order("completed_at desc").First(&attempt).Error; err == nil {
			latestAttempt = &attempt
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":                course,
		"modules":               result,
		"completion_percentage": percentage,
		"has_quiz":              hasQuiz,
		"latest_quiz_attempt":   latestAttempt,
	})
}

// GetCompletionStats returns the employee's aggregate completion statistics
func GetCompletionStats(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var progress []courseModels.CourseProgress
	if err := database.Database.Db.Where("employee_id = ?", userID).Find(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch completion statistics!", nil)
	}

	totalCourses := len(progress)
	completedCourses := 0
	for _, p := range progress {
		if p.CompletionPercentage >= 100 {
			completedCourses++
		}
	}

	completionRate := float64(0)
	if totalCourses > 0 {
		completionRate = float64(completedCourses) / float64(totalCourses) * 100
	}

	performanceScore, err := EmployeePerformanceScore(database.Database.Db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute performance score!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Completion statistics fetched successfully!", fiber.Map{
		"total_courses":     totalCourses,
		"completed_courses": completedCourses,
		"completion_rate":   completionRate,
		"performance_score": performanceScore,
	})
}
