package course

import (
	"time"

	"gorm.io/gorm"
)

// ModuleProgress is the authoritative per-employee module completion record.
// One row per (employee, course, module); re-marking a completed module
// refreshes CompletedAt instead of creating a duplicate.
type ModuleProgress struct {
	gorm.Model
	EmployeeID  uint      `json:"employee_id" gorm:"index;not null"`
	CourseID    uint      `json:"course_id" gorm:"index;not null"`
	ModuleID    uint      `json:"module_id" gorm:"index;not null"`
	IsCompleted bool      `json:"is_completed" gorm:"default:false"`
	CompletedAt time.Time `json:"completed_at"`
}

// CourseProgress caches the completion percentage for one (employee, course)
// pair. RecomputeCourseProgress is the only writer; it upserts the row
// synchronously after every module completion.
type CourseProgress struct {
	gorm.Model
	EmployeeID           uint       `json:"employee_id" gorm:"index;not null"`
	CourseID             uint       `json:"course_id" gorm:"index;not null"`
	CompletionPercentage float64    `json:"completion_percentage" gorm:"default:0"`
	CompletedAt          *time.Time `json:"completed_at"`
}
