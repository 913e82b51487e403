package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"lms/config"
)

// RenderCertificate writes an HTML completion certificate to the configured
// certificate directory and returns the file path.
func RenderCertificate(certificateNumber, userName, courseTitle string, issuedAt time.Time) (string, error) {
	dir := config.AppConfig.CertificateDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	document := fmt.Sprintf(`<!DOCTYPE html>
<html>
	<head><title>Certificate of Completion</title></head>
	<body style="font-family: Georgia, serif; text-align: center; padding: 60px; border: 12px solid #4CAF50;">
		<h1 style="font-size: 42px; margin-bottom: 8px;">Certificate of Completion</h1>
		<p style="font-size: 18px; color: #555555;">This certifies that</p>
		<h2 style="font-size: 32px; margin: 10px 0;">%s</h2>
		<p style="font-size: 18px; color: #555555;">has successfully completed the course</p>
		<h3 style="font-size: 26px; margin: 10px 0;">%s</h3>
		<p style="font-size: 14px; color: #999999; margin-top: 40px;">Issued on %s</p>
		<p style="font-size: 12px; color: #bbbbbb;">Certificate No. %s</p>
	</body>
</html>
`, userName, courseTitle, issuedAt.Format("January 2, 2006"), certificateNumber)

	filePath := filepath.Join(dir, certificateNumber+".html")
	if err := os.WriteFile(filePath, []byte(document), 0o644); err != nil {
		return "", err
	}

	return filePath, nil
}
