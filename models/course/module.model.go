package course

import "gorm.io/gorm"

// CourseModule represents a unit of content within a course. Immutable after
// creation; per-employee completion lives in ModuleProgress.
type CourseModule struct {
	gorm.Model
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	Title     string `json:"title"`
	Content   string `json:"content" gorm:"type:text"`
	Duration  int64  `json:"duration" gorm:"default:0"` // minutes
	IsDeleted bool   `gorm:"default:false"`
}
