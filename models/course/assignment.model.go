package course

import (
	"time"

	"gorm.io/gorm"
)

// CourseAssignment marks a course as visible to an employee. One row per
// (employee, course) pair; the assignment endpoint checks existing rows
// before creating so repeated assignment stays a no-op.
type CourseAssignment struct {
	gorm.Model
	EmployeeID uint      `json:"employee_id" gorm:"index;not null"`
	CourseID   uint      `json:"course_id" gorm:"index;not null"`
	AssignedAt time.Time `json:"assigned_at"`
	IsDeleted  bool      `gorm:"default:false"`
}
