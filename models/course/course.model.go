package course

import "gorm.io/gorm"

// Tags is the fixed set of course categories. Tag-bucketed reports iterate
// this list so that empty buckets still show up with 0%.
var Tags = []string{
	"Web Development",
	"Data Engineering",
	"Data Science",
	"Generative AI",
	"DevOps",
	"Cybersecurity",
	"Mobile Development",
	"UI/UX Design",
	"Software Testing",
}

// IsValidTag reports whether tag belongs to the fixed category set.
func IsValidTag(tag string) bool {
	for _, t := range Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Course represents a learning course. Modules and Duration are caches
// derived from child CourseModule rows; they are refreshed by the
// update-details endpoint and the hourly scheduler, and may be stale
// between a module addition and the next refresh.
type Course struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	Tag         string `json:"tag" gorm:"index;not null"`
	Duration    int64  `json:"duration" gorm:"default:0"` // minutes, summed from modules
	Modules     int    `json:"modules" gorm:"default:0"`  // count of child modules
	ImageURL    string `json:"image_url"`
	IsDeleted   bool   `gorm:"default:false"`
}
