package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"os"

	"github.com/alphabatem/common/context"
	"github.com/hmosawi/folio_api/model"
	"github.com/hmosawi/folio_api/shared"
	log "github.com/sirupsen/logrus"
)

type EmailService struct {
	context.DefaultService

	smtpHost     string
	smtpPort     string
	smtpUsername string
	smtpPassword string
	fromEmail    string
	fromName     string
	toEmail      string

	templates map[string]*template.Template
}

const EMAIL_SVC = "email_svc"

func (svc EmailService) Id() string {
	return EMAIL_SVC
}

func (svc *EmailService) Configure(ctx *context.Context) error {
	svc.smtpHost = os.Getenv("SMTP_HOST")
	svc.smtpPort = os.Getenv("SMTP_PORT")
	svc.smtpUsername = os.Getenv("SMTP_USERNAME")
	svc.smtpPassword = os.Getenv("SMTP_PASSWORD")
	svc.fromEmail = os.Getenv("FROM_EMAIL")
	svc.fromName = os.Getenv("FROM_NAME")
	svc.toEmail = os.Getenv("CONTACT_EMAIL")

	if svc.smtpPort == "" {
		svc.smtpPort = "587"
	}
	if svc.fromName == "" {
		svc.fromName = "Folio"
	}
	if svc.toEmail == "" {
		svc.toEmail = svc.fromEmail
	}

	svc.templates = make(map[string]*template.Template)

	return svc.DefaultService.Configure(ctx)
}

func (svc *EmailService) Start() error {
	err := svc.loadTemplates()
	if err != nil {
		log.WithError(err).Error("Failed to load email templates")
		// Don't fail startup, just log the error
	}

	return nil
}

// Configured reports whether SMTP delivery is possible. When false, contact
// messages keep their pending status.
func (svc *EmailService) Configured() bool {
	return svc.smtpHost != ""
}

const contactNotificationHTML = `
<!DOCTYPE html>
<html dir="{{.Dir}}">
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #4F46E5; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background-color: #f9f9f9; }
        .details { background-color: white; padding: 15px; border-radius: 5px; margin: 15px 0; }
        .message-body { background-color: white; padding: 15px; border-radius: 5px; white-space: pre-wrap; }
        .footer { padding: 20px; text-align: center; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Title}}</h1>
        </div>
        <div class="content">
            <div class="details">
                <strong>{{.NameLabel}}:</strong> {{.SenderName}}<br>
                <strong>{{.EmailLabel}}:</strong> {{.SenderEmail}}<br>
                <strong>{{.ServiceLabel}}:</strong> {{.ServiceType}}<br>
                <strong>{{.BudgetLabel}}:</strong> {{.Budget}}
            </div>
            <div class="message-body">{{.Body}}</div>
        </div>
        <div class="footer">
            <p>{{.Footer}}</p>
        </div>
    </div>
</body>
</html>
`

type contactNotificationData struct {
	Dir          string
	Title        string
	NameLabel    string
	EmailLabel   string
	ServiceLabel string
	BudgetLabel  string
	Footer       string
	SenderName   string
	SenderEmail  string
	ServiceType  string
	Budget       string
	Body         string
}

func (svc *EmailService) loadTemplates() error {
	var err error

	svc.templates["contact_notification"], err = template.New("contact_notification").Parse(contactNotificationHTML)
	if err != nil {
		return fmt.Errorf("failed to parse contact notification template: %v", err)
	}

	return nil
}

// SendContactNotification forwards a newly stored contact message to the
// portfolio owner, in the locale the visitor filled the form in.
func (svc *EmailService) SendContactNotification(message *model.Message) error {
	if svc.smtpHost == "" {
		log.Warn("SMTP not configured, skipping contact notification email")
		return nil
	}

	budget := message.Budget
	if budget == "" {
		budget = "N/A"
	}

	data := contactNotificationData{
		SenderName:  message.SenderName,
		SenderEmail: message.SenderEmail,
		ServiceType: message.ServiceType,
		Budget:      budget,
		Body:        message.Body,
	}

	if message.Locale == shared.LocaleArabic {
		data.Dir = "rtl"
		data.Title = "طلب مشروع جديد"
		data.NameLabel = "الاسم"
		data.EmailLabel = "البريد الإلكتروني"
		data.ServiceLabel = "نوع الخدمة"
		data.BudgetLabel = "الميزانية"
		data.Footer = "تم إرسال هذه الرسالة من نموذج التواصل"
	} else {
		data.Dir = "ltr"
		data.Title = "New Project Request"
		data.NameLabel = "Name"
		data.EmailLabel = "Email"
		data.ServiceLabel = "Service"
		data.BudgetLabel = "Budget"
		data.Footer = "This message was sent from the contact form"
	}

	subject := fmt.Sprintf("🚀 New Project Request: %s - %s | %s",
		message.ServiceType, budget, message.SenderName)

	return svc.sendTemplateEmail(svc.toEmail, subject, "contact_notification", data)
}

func (svc *EmailService) sendTemplateEmail(to, subject, templateName string, data interface{}) error {
	tmpl, exists := svc.templates[templateName]
	if !exists {
		return fmt.Errorf("template %s not found", templateName)
	}

	var body bytes.Buffer
	err := tmpl.Execute(&body, data)
	if err != nil {
		return fmt.Errorf("failed to execute template: %v", err)
	}

	return svc.sendEmail(to, subject, body.String())
}

func (svc *EmailService) sendEmail(to, subject, body string) error {
	if svc.smtpHost == "" {
		return fmt.Errorf("SMTP not configured")
	}

	auth := smtp.PlainAuth("", svc.smtpUsername, svc.smtpPassword, svc.smtpHost)

	msg := []byte(fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		svc.fromName, svc.fromEmail, to, subject, body))

	err := smtp.SendMail(
		svc.smtpHost+":"+svc.smtpPort,
		auth,
		svc.fromEmail,
		[]string{to},
		msg,
	)

	if err != nil {
		log.WithError(err).WithFields(log.Fields{"to": to, "subject": subject}).Error("Failed to send email")
		return fmt.Errorf("failed to send email: %v", err)
	}

	log.WithFields(log.Fields{"to": to, "subject": subject}).Info("Email sent successfully")
	return nil
}
