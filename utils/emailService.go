package utils

import (
	"fmt"
	"lms/config"
	"log"
	"net/smtp"
	"strings"
)

// SendEmail delivers one HTML email through the configured SMTP account.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: LearnX <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all outgoing mail
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A237E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A237E; line-height: 1.6; }
			.content h2 { color: #1A237E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #43A047; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>LEARNX</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 LearnX. All rights reserved.<br>
				Questions? Write to %s
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent, config.AppConfig.AdminEmail)
}

// --- Triggers ---
// All senders run on a goroutine: mail failures are logged inside
// SendEmail and never surface to the request that triggered them.

// 1. Welcome / Signup
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to LearnX"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>LearnX</strong>! Your account has been created successfully.</p>
		<p>Browse the catalogue and enroll in your first course to start learning.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body))
}

// 2. Course Approved (to instructor)
func SendCourseApprovedEmail(email, name, courseTitle string) {
	subject := "Course Approved: " + courseTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Great news! Your course <strong>%s</strong> has been APPROVED.</p>
		<p>It is now visible in the catalogue and open for enrollment.</p>
	`, name, courseTitle)

	go SendEmail([]string{email}, subject, getEmailTemplate("Course Approved", body))
}

// 3. Course Rejected (to instructor)
func SendCourseRejectedEmail(email, name, courseTitle, reason string) {
	subject := "Course Rejected: " + courseTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Unfortunately, your course <strong>%s</strong> was rejected.</p>
		<div style="color: #dc3545; font-weight: bold;">Reason: %s</div>
		<p>Please make the necessary changes and submit it again.</p>
	`, name, courseTitle, reason)

	go SendEmail([]string{email}, subject, getEmailTemplate("Course Rejected", body))
}

// 4. Enrollment Confirmation (to student)
func SendEnrollmentEmail(email, name, courseTitle string) {
	subject := "Enrollment Confirmed: " + courseTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have successfully enrolled in <strong>%s</strong>.</p>
		<div class="info-box">
			All chapters are now unlocked. Complete every lesson to finish the course.
		</div>
	`, name, courseTitle)

	go SendEmail([]string{email}, subject, getEmailTemplate("Enrollment Successful", body))
}

// 5. Instructor Approved (to instructor)
func SendInstructorApprovedEmail(email, name string) {
	subject := "Instructor Account Approved"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your instructor account has been approved.</p>
		<p>You can now create courses and submit them for moderation.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Instructor Approved", body))
}
