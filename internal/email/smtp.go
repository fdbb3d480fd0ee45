package email

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"time"
)

// buildMIMEMessage assembles a multipart/alternative message carrying both
// the plaintext and HTML bodies.
func buildMIMEMessage(data EmailData, htmlContent, textContent string) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("From: %s <%s>\r\n", data.FromName, data.From))
	buf.WriteString(fmt.Sprintf("To: %s\r\n", data.To))
	buf.WriteString(fmt.Sprintf("Subject: %s\r\n", data.Subject))
	buf.WriteString("MIME-Version: 1.0\r\n")

	boundary := fmt.Sprintf("_MULTIPART_ALTERNATIVE_BOUNDARY_%d", time.Now().UnixNano())
	buf.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=%s\r\n\r\n", boundary))

	buf.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	buf.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	buf.WriteString("Content-Transfer-Encoding: base64\r\n\r\n")
	buf.WriteString(base64.StdEncoding.EncodeToString([]byte(textContent)))
	buf.WriteString("\r\n")

	buf.WriteString(fmt.Sprintf("\r\n--%s\r\n", boundary))
	buf.WriteString("Content-Type: text/html; charset=utf-8\r\n")
	buf.WriteString("Content-Transfer-Encoding: base64\r\n\r\n")
	buf.WriteString(base64.StdEncoding.EncodeToString([]byte(htmlContent)))
	buf.WriteString("\r\n")

	buf.WriteString(fmt.Sprintf("\r\n--%s--", boundary))

	return buf.Bytes()
}

// sendWithSMTP sends an email using SMTP
func (s *Service) sendWithSMTP(data EmailData, htmlContent, textContent string) error {
	if data.From == "" {
		return fmt.Errorf("missing sender email address (From)")
	}

	var auth smtp.Auth
	if s.smtp.Username != "" {
		auth = smtp.PlainAuth("", s.smtp.Username, s.smtp.Password, s.smtp.Host)
	}
	addr := fmt.Sprintf("%s:%d", s.smtp.Host, s.smtp.Port)

	msg := buildMIMEMessage(data, htmlContent, textContent)
	if err := smtp.SendMail(addr, auth, data.From, []string{data.To}, msg); err != nil {
		return fmt.Errorf("sending email via SMTP: %w", err)
	}

	return nil
}
