// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendEventReminder(toEmail, eventTitle, vendorName string, dueDate time.Time, daysLeft int, eventURL string) error
	SendShareInvite(toEmail, fromName, fromEmail, eventTitle, vendorName string, products []string, shareLink, pdfURL string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, email, password, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, email, password)

	return &emailService{
		dialer:      d,
		senderEmail: email,
		senderName:  senderName,
	}
}

func (s *emailService) SendEventReminder(toEmail, eventTitle, vendorName string, dueDate time.Time, daysLeft int, eventURL string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Renewal in %d days: %s", daysLeft, vendorName))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<p>Hello,</p>
			<p><strong>%s</strong> for <strong>%s</strong> is due on <b>%s</b>.</p>
			<p>You are receiving this because the renewal date is %d days away.</p>
			<p><a href="%s" target="_blank" style="background:#2563eb;color:white;padding:8px 14px;border-radius:6px;text-decoration:none;">View Event</a></p>
		</div>
	`, eventTitle, vendorName, dueDate.Format("January 2, 2006"), daysLeft, eventURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send reminder to %s: %w", toEmail, err)
	}
	return nil
}

func (s *emailService) SendShareInvite(toEmail, fromName, fromEmail, eventTitle, vendorName string, products []string, shareLink, pdfURL string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Shared Event: %s", eventTitle))

	if fromName == "" {
		fromName = "A Renewal Calendar user"
	}

	productList := ""
	if len(products) > 0 {
		shown := products
		suffix := ""
		if len(shown) > 3 {
			shown = shown[:3]
			suffix = "…"
		}
		productList = fmt.Sprintf("<p><strong>Products:</strong> %s%s</p>", strings.Join(shown, ", "), suffix)
	}

	pdfSection := ""
	if pdfURL != "" {
		pdfSection = fmt.Sprintf(`<p style="margin-top:14px;"><a href="%s" target="_blank">View Attached PDF</a></p>`, pdfURL)
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<p>Hello,</p>
			<p>%s (%s) shared an event with you:</p>
			<h3 style="color:#2563eb;">%s</h3>
			<p><strong>Vendor:</strong> %s</p>
			%s
			<p>You can view the event here:</p>
			<a href="%s" target="_blank" style="background:#2563eb;color:white;padding:10px 16px;border-radius:6px;text-decoration:none;">Open Shared Event</a>
			%s
			<p>Best,<br/>Renewal Calendar</p>
		</div>
	`, fromName, fromEmail, eventTitle, vendorName, productList, shareLink, pdfSection)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send share invite to %s: %w", toEmail, err)
	}
	return nil
}
