package utils

import (
	"fmt"
	"log"
	"net/smtp"

	"lms/config"
)

// SendCourseCompletionEmail sends an email notification when an employee
// completes a course
func SendCourseCompletionEmail(email, userName, courseTitle string) error {
	if config.AppConfig.EmailSender == "" {
		return nil
	}

	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	to := []string{email}

	subject := "Subject: Course Completion - Congratulations!\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Congratulations, %s!</h2>
					<p style="font-size: 16px; color: #555555; text-align: center;">You have completed the course:</p>
					<h3 style="text-align: center; color: #4CAF50;">%s</h3>
					<p style="font-size: 14px; color: #999999; text-align: center;">Your certificate is now available in the learning portal.</p>
				</div>
			</body>
		</html>
	`, userName, courseTitle)

	message := []byte(subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, message); err != nil {
		log.Printf("Error sending completion email to %s: %v", email, err)
		return err
	}

	log.Println("Completion email sent successfully to", email)
	return nil
}
