package learningpath

import "gorm.io/gorm"

// LearningPath groups courses into a track. TotalCourses is set once at
// creation from the supplied course list.
type LearningPath struct {
	gorm.Model
	Title        string `json:"title"`
	Description  string `json:"description"`
	TotalCourses int    `json:"total_courses" gorm:"default:0"`
	IsDeleted    bool   `gorm:"default:false"`
}

// LearningPathCourse links a learning path to one of its courses.
type LearningPathCourse struct {
	gorm.Model
	LearningPathID uint `json:"learning_path_id" gorm:"index;not null"`
	CourseID       uint `json:"course_id" gorm:"index;not null"`
}

// EmployeeLearningPath marks a path as assigned to an employee. Progress is
// not stored here; it is computed on read from the constituent courses'
// CourseProgress rows.
type EmployeeLearningPath struct {
	gorm.Model
	EmployeeID     uint `json:"employee_id" gorm:"index;not null"`
	LearningPathID uint `json:"learning_path_id" gorm:"index;not null"`
	IsDeleted      bool `gorm:"default:false"`
}
