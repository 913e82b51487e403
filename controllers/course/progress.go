package controllers

import (
	"fmt"
	"sync"
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// progressLocks serializes the read-count-then-upsert sequence per
// (employee, course) key. Two concurrent completions for the same pair would
// otherwise race and the persisted percentage could reflect only one of them.
var progressLocks sync.Map

func lockProgress(employeeID, courseID uint) func() {
	key := fmt.Sprintf("%d:%d", employeeID, courseID)
	v, _ := progressLocks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// RecomputeCourseProgress recounts modules and completions for one
// (employee, course) pair and upserts the cached percentage. It is the only
// writer of CourseProgress.CompletionPercentage.
func RecomputeCourseProgress(db *gorm.DB, employeeID, courseID uint) (float64, error) {
	unlock := lockProgress(employeeID, courseID)
	defer unlock()
	return recomputeCourseProgressLocked(db, employeeID, courseID)
}

func recomputeCourseProgressLocked(db *gorm.DB, employeeID, courseID uint) (float64, error) {
	var totalModules int64
	if err := db.Model(&courseModels.CourseModule{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Count(&totalModules).Error; err != nil {
		return 0, err
	}

	var completedModules int64
	if err := db.Model(&courseModels.ModuleProgress{}).
		Where("employee_id = ? AND course_id = ? AND is_completed = ?", employeeID, courseID, true).
		Count(&completedModules).Error; err != nil {
		return 0, err
	}

	// A course with zero modules reports 0%, never 100%.
	percentage := float64(0)
	if totalModules > 0 {
		percentage = float64(completedModules) / float64(totalModules) * 100
	}

	var progress courseModels.CourseProgress
	err := db.Where("employee_id = ? AND course_id = ?", employeeID, courseID).First(&progress).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return 0, err
		}
		progress = courseModels.CourseProgress{
			EmployeeID: employeeID,
			CourseID:   courseID,
		}
	}

	progress.CompletionPercentage = percentage
	if percentage >= 100 {
		if progress.CompletedAt == nil {
			now := time.Now()
			progress.CompletedAt = &now
		}
	} else {
		progress.CompletedAt = nil
	}

	if err := db.Save(&progress).Error; err != nil {
		return 0, err
	}

	return percentage, nil
}

// EmployeePerformanceScore derives the aggregate score for one employee:
// the share of assigned courses that reached 100%. Zero assignments score 0.
func EmployeePerformanceScore(db *gorm.DB, employeeID uint) (float64, error) {
	var assigned int64
	if err := db.Model(&courseModels.CourseAssignment{}).
		Where("employee_id = ? AND is_deleted = ?", employeeID, false).
		Count(&assigned).Error; err != nil {
		return 0, err
	}

	if assigned == 0 {
		return 0, nil
	}

	var completed int64
	if err := db.Model(&courseModels.CourseProgress{}).
		Where("employee_id = ? AND completion_percentage >= ?", employeeID, 100).
		Count(&completed).Error; err != nil {
		return 0, err
	}

	return float64(completed) / float64(assigned) * 100, nil
}

// CourseStatus derives the display label from module counts. Every read path
// uses this single derivation so status and percentage cannot drift apart.
func CourseStatus(completedModules, totalModules int64) string {
	if totalModules > 0 && completedModules == totalModules {
		return "Completed"
	}
	return "In Progress"
}

// MarkModuleCompleted records a module completion for the current employee
// and synchronously recomputes the course completion percentage
func MarkModuleCompleted(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	moduleID := c.Locals("moduleID").(int)

	var module courseModels.CourseModule
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", moduleID, courseID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	db := database.Database.Db

	unlock := lockProgress(userID, uint(courseID))

	// Upsert: re-marking a completed module refreshes the timestamp only.
	var progress courseModels.ModuleProgress
	err := db.Where("employee_id = ? AND course_id = ? AND module_id = ?", userID, courseID, moduleID).First(&progress).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			unlock()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark module as completed!", nil)
		}
		progress = courseModels.ModuleProgress{
			EmployeeID: userID,
			CourseID:   uint(courseID),
			ModuleID:   uint(moduleID),
		}
	}
	progress.IsCompleted = true
	progress.CompletedAt = time.Now()

	if err := db.Save(&progress).Error; err != nil {
		unlock()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark module as completed!", nil)
	}

	var prior courseModels.CourseProgress
	priorPercentage := float64(0)
	if err := db.Where("employee_id = ? AND course_id = ?", userID, courseID).First(&prior).Error; err == nil {
		priorPercentage = prior.CompletionPercentage
	}

	percentage, err := recomputeCourseProgressLocked(db, userID, uint(courseID))
	unlock()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course progress!", nil)
	}

	// Notify on the transition to fully complete, not on re-marks
	if percentage >= 100 && priorPercentage < 100 {
		var course courseModels.Course
		if err := db.Where("id = ?", courseID).First(&course).Error; err == nil {
			go utils.SendCourseCompletionEmail(user.Email, user.Name, course.Title)
			go utils.NotifyCourseCompletion(user.ID, user.Email, course.Title, percentage)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module marked as completed!", fiber.Map{
		"module_id":             module.ID,
		"is_completed":          progress.IsCompleted,
		"completion_percentage": percentage,
	})
}
