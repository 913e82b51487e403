package utils

import (
	"log"

	"lms/database"
	courseModels "lms/models/course"

	"github.com/robfig/cron/v3"
)

// RefreshCourseDetails recomputes every course's cached module count and
// total duration from its child modules. The caches go stale between a
// module addition and the next refresh; this job bounds the staleness.
func RefreshCourseDetails() {
	db := database.Database.Db

	var courses []courseModels.Course
	if err := db.Where("is_deleted = ?", false).Find(&courses).Error; err != nil {
		log.Printf("Course refresh: failed to fetch courses: %v", err)
		return
	}

	for _, course := range courses {
		var modules []courseModels.CourseModule
		if err := db.Where("course_id = ? AND is_deleted = ?", course.ID, false).Find(&modules).Error; err != nil {
			log.Printf("Course refresh: failed to fetch modules for course %d: %v", course.ID, err)
			continue
		}

		var totalDuration int64
		for _, m := range modules {
			totalDuration += m.Duration
		}

		if course.Modules == len(modules) && course.Duration == totalDuration {
			continue
		}

		course.Modules = len(modules)
		course.Duration = totalDuration

		if err := db.Save(&course).Error; err != nil {
			log.Printf("Course refresh: failed to update course %d: %v", course.ID, err)
		}
	}
}

// InitializeCourseSchedulers starts the hourly course detail refresh
func InitializeCourseSchedulers() *cron.Cron {
	c := cron.New()

	c.AddFunc("0 * * * *", func() {
		RefreshCourseDetails()
	})

	c.Start()

	log.Println("Course detail refresh scheduler started - runs hourly")
	return c
}
