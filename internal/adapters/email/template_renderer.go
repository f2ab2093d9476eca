package email

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"eventory/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// templateRenderer holds every embedded template, parsed once. A mail named
// "x" is made of x_subject.txt, x.txt and x.html.
type templateRenderer struct {
	text *texttemplate.Template
	html *htmltemplate.Template
}

// NewTemplateRenderer parses the embedded templates. It panics on a malformed
// template since those ship with the binary.
func NewTemplateRenderer() domain.EmailTemplateRenderer {
	return &templateRenderer{
		text: texttemplate.Must(texttemplate.New("").Option("missingkey=error").ParseFS(templateFS, "templates/*.txt")),
		html: htmltemplate.Must(htmltemplate.New("").Option("missingkey=error").ParseFS(templateFS, "templates/*.html")),
	}
}

func (r *templateRenderer) Render(templateName string, data any) (subject, htmlBody, textBody string, err error) {
	subjectTmpl := r.text.Lookup(templateName + "_subject.txt")
	textTmpl := r.text.Lookup(templateName + ".txt")
	htmlTmpl := r.html.Lookup(templateName + ".html")
	if subjectTmpl == nil || textTmpl == nil || htmlTmpl == nil {
		return "", "", "", fmt.Errorf("email template %q not found", templateName)
	}

	var subj, html, text bytes.Buffer
	if err := subjectTmpl.Execute(&subj, data); err != nil {
		return "", "", "", fmt.Errorf("render subject: %w", err)
	}
	if err := htmlTmpl.Execute(&html, data); err != nil {
		return "", "", "", fmt.Errorf("render html: %w", err)
	}
	if err := textTmpl.Execute(&text, data); err != nil {
		return "", "", "", fmt.Errorf("render text: %w", err)
	}
	return strings.TrimSpace(subj.String()), html.String(), text.String(), nil
}
