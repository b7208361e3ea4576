package domain

import (
	"html"
	"strings"
)

// ContactSubmission is one contact form submission. It lives only for the
// duration of the request that carries it.
type ContactSubmission struct {
	Name    string
	Phone   string
	Message string
}

// Normalized returns a copy with surrounding whitespace removed from every field.
func (s ContactSubmission) Normalized() ContactSubmission {
	return ContactSubmission{
		Name:    strings.TrimSpace(s.Name),
		Phone:   strings.TrimSpace(s.Phone),
		Message: strings.TrimSpace(s.Message),
	}
}

// NotificationText renders the submission as the chat message sent to the studio.
// Field values are HTML-escaped because the message is delivered with parse_mode=HTML.
func (s ContactSubmission) NotificationText() string {
	var builder strings.Builder
	builder.WriteString("🆕 Yangi xabar!\n")
	builder.WriteString("👤 Ism: ")
	builder.WriteString(html.EscapeString(s.Name))
	builder.WriteString("\n📞 Tel: ")
	builder.WriteString(html.EscapeString(s.Phone))
	builder.WriteString("\n💬 Xabar: ")
	builder.WriteString(html.EscapeString(s.Message))
	return builder.String()
}
