package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Quiz belongs to one course. Questions and options are immutable after
// creation; there is no update or delete path.
type Quiz struct {
	gorm.Model
	CourseID  uint `json:"course_id" gorm:"index;not null"`
	IsDeleted bool `gorm:"default:false"`
}

// QuizQuestion is one question in a quiz, kept in document order.
type QuizQuestion struct {
	gorm.Model
	QuizID       uint   `json:"quiz_id" gorm:"index;not null"`
	QuestionText string `json:"question_text"`
	OrderIndex   int    `json:"order_index" gorm:"default:0"`
}

// QuizOption is one answer option. Exactly one option per question carries
// IsCorrect.
type QuizOption struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	OptionText string `json:"option_text"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
}

// QuizProgress records one submission. Every attempt is appended as a new
// row; display paths read the latest one.
type QuizProgress struct {
	gorm.Model
	EmployeeID  uint           `json:"employee_id" gorm:"index;not null"`
	CourseID    uint           `json:"course_id" gorm:"index;not null"`
	QuizID      uint           `json:"quiz_id" gorm:"index;not null"`
	Score       float64        `json:"score" gorm:"default:0"` // 0-100
	IsPassed    bool           `json:"is_passed" gorm:"default:false"`
	Answers     datatypes.JSON `json:"answers"` // submitted position -> option text map
	CompletedAt time.Time      `json:"completed_at"`
}
