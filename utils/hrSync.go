package utils

import (
	"log"
	"time"

	"lms/config"

	"github.com/go-resty/resty/v2"
)

// NotifyCourseCompletion posts a course completion event to the configured
// HR system webhook. A missing URL disables the integration.
func NotifyCourseCompletion(employeeID uint, employeeEmail, courseTitle string, percentage float64) {
	if config.AppConfig.HRWebhookURL == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"event":                 "course_completed",
			"employee_id":           employeeID,
			"employee_email":        employeeEmail,
			"course_title":          courseTitle,
			"completion_percentage": percentage,
			"completed_at":          time.Now().Format(time.RFC3339),
		}).
		Post(config.AppConfig.HRWebhookURL)

	if err != nil {
		log.Printf("Error notifying HR system: %v", err)
		return
	}

	if resp.StatusCode() >= 300 {
		log.Printf("HR system webhook returned status %d: %s", resp.StatusCode(), resp.String())
		return
	}

	log.Printf("HR system notified of course completion for employee %d", employeeID)
}
