package utils

import (
	"encoding/base64"
	"fmt"
	"log"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"

	"pcl-backend/config"
)

// EmailService delivers submission notifications. Notify never propagates an
// error into the caller; a failed send is logged and reported as false.
type EmailService interface {
	Notify(data map[string]string, attachmentPath string) bool
}

// NormalizeNotificationData maps the field names the various forms submit
// (fname/lname vs fullName vs full_name) onto the canonical keys the email
// body is built from.
func NormalizeNotificationData(data map[string]string) map[string]string {
	normalized := make(map[string]string)

	if data["fname"] != "" {
		normalized["fname"] = data["fname"]
	}
	if data["lname"] != "" {
		normalized["lname"] = data["lname"]
	}

	fullName := data["fullName"]
	if fullName == "" {
		fullName = data["full_name"]
	}
	if fullName != "" {
		if normalized["fname"] == "" && normalized["lname"] == "" {
			parts := strings.SplitN(fullName, " ", 2)
			normalized["fname"] = parts[0]
			if len(parts) > 1 {
				normalized["lname"] = parts[1]
			}
		}
		normalized["full_name"] = fullName
	}

	normalized["email"] = data["email"]
	normalized["mobile"] = data["mobile"]
	normalized["message"] = data["message"]
	normalized["type"] = data["type"]
	normalized["internship"] = data["internship"]

	return normalized
}

// buildNotification formats the subject and plain-text body for a normalized
// field map.
func buildNotification(normalized map[string]string, attachmentPath string) (string, string) {
	fullName := normalized["full_name"]
	if fullName == "" {
		fullName = strings.TrimSpace(normalized["fname"] + " " + normalized["lname"])
	}

	var subject, formType string
	if normalized["internship"] != "" {
		subject = fmt.Sprintf("New Internship Application from %s", fullName)
		formType = "Internship Application"
	} else if normalized["type"] != "" {
		subject = fmt.Sprintf("New %s Inquiry from %s", normalized["type"], fullName)
		formType = fmt.Sprintf("%s Inquiry", normalized["type"])
	} else {
		subject = fmt.Sprintf("New Inquiry from %s", fullName)
		formType = "General Inquiry"
	}

	lines := []string{fmt.Sprintf("%s Received:\n", formType)}
	if fullName != "" {
		lines = append(lines, fmt.Sprintf("Name: %s", fullName))
	}
	if normalized["email"] != "" {
		lines = append(lines, fmt.Sprintf("Email: %s", normalized["email"]))
	}
	if normalized["mobile"] != "" {
		lines = append(lines, fmt.Sprintf("Mobile: %s", normalized["mobile"]))
	}
	if normalized["type"] != "" {
		lines = append(lines, fmt.Sprintf("Type: %s", normalized["type"]))
	}
	if normalized["internship"] != "" {
		lines = append(lines, fmt.Sprintf("Internship Position: %s", normalized["internship"]))
	}
	if normalized["message"] != "" {
		lines = append(lines, fmt.Sprintf("Message:\n%s", normalized["message"]))
	}
	if attachmentPath != "" {
		lines = append(lines, fmt.Sprintf("\nAttachment: %s", filepath.Base(attachmentPath)))
	}

	return subject, strings.Join(lines, "\n")
}

// SMTPEmailService sends notifications through a plain SMTP relay.
type SMTPEmailService struct {
	Host     string
	Port     string
	Sender   string
	Password string
	To       string
}

func NewSMTPEmailService(cfg *config.Config) *SMTPEmailService {
	return &SMTPEmailService{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Sender:   cfg.EmailSender,
		Password: cfg.EmailPassword,
		To:       cfg.NotifyEmail,
	}
}

func (s *SMTPEmailService) Notify(data map[string]string, attachmentPath string) bool {
	normalized := NormalizeNotificationData(data)
	subject, body := buildNotification(normalized, attachmentPath)

	msg, err := buildMessage(s.Sender, s.To, subject, body, attachmentPath)
	if err != nil {
		log.Printf("Error building notification email: %v", err)
		return false
	}

	auth := smtp.PlainAuth("", s.Sender, s.Password, s.Host)
	if err := smtp.SendMail(s.Host+":"+s.Port, auth, s.Sender, []string{s.To}, msg); err != nil {
		log.Printf("Error sending notification email: %v", err)
		return false
	}
	return true
}

// buildMessage assembles the raw MIME message, multipart/mixed when an
// attachment is present.
func buildMessage(from, to, subject, body, attachmentPath string) ([]byte, error) {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")

	if attachmentPath == "" {
		msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
		msg.WriteString(body)
		return []byte(msg.String()), nil
	}

	content, err := os.ReadFile(attachmentPath)
	if err != nil {
		return nil, err
	}

	const boundary = "pcl-notification-boundary"
	msg.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=\"%s\"\r\n\r\n", boundary))

	msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	msg.WriteString(body)
	msg.WriteString("\r\n")

	msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	msg.WriteString("Content-Type: application/octet-stream\r\n")
	msg.WriteString("Content-Transfer-Encoding: base64\r\n")
	msg.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=\"%s\"\r\n\r\n", filepath.Base(attachmentPath)))

	encoded := base64.StdEncoding.EncodeToString(content)
	// wrap base64 at 76 chars per RFC 2045
	for len(encoded) > 76 {
		msg.WriteString(encoded[:76] + "\r\n")
		encoded = encoded[76:]
	}
	msg.WriteString(encoded + "\r\n")
	msg.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	return []byte(msg.String()), nil
}

// ConsoleEmailService logs notifications instead of sending them. Used in
// development and tests.
type ConsoleEmailService struct{}

func (s *ConsoleEmailService) Notify(data map[string]string, attachmentPath string) bool {
	normalized := NormalizeNotificationData(data)
	subject, body := buildNotification(normalized, attachmentPath)
	log.Printf("[EMAIL] %s\n%s", subject, body)
	return true
}
