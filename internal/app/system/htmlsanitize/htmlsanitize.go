// Package htmlsanitize cleans user-authored HTML before storage or display.
//
// Course descriptions may contain rich text entered through the admin UI.
// Everything that reaches a template as raw HTML must pass through this
// package first.
package htmlsanitize

import (
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()

	// Formatting tags UGCPolicy does not include by default.
	p.AllowElements("u", "s", "sub", "sup", "mark")

	// Tables with layout attributes.
	p.AllowElements("table", "thead", "tbody", "tfoot", "tr", "th", "td", "caption")
	p.AllowAttrs("colspan", "rowspan").OnElements("th", "td")
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("style").OnElements("table", "th", "td", "tr")

	p.AllowImages()
	p.RequireNoFollowOnLinks(true)

	return p
}

// Sanitize strips unsafe HTML from s, keeping common formatting,
// lists, tables, links, and images.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(policy.Sanitize(s))
}

// SanitizeToHTML sanitizes s and returns it as template.HTML so
// templates render it without re-escaping.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}

// IsPlainText reports whether s contains no HTML tags. A string needs
// both < and > before it is treated as markup, so "5 < 10" stays plain.
func IsPlainText(s string) bool {
	return !strings.Contains(s, "<") || !strings.Contains(s, ">")
}

// PlainTextToHTML escapes s and wraps it in a paragraph, converting
// newlines to <br>.
func PlainTextToHTML(s string) string {
	if s == "" {
		return ""
	}
	escaped := html.EscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return "<p>" + escaped + "</p>"
}

// PrepareForDisplay renders stored content for a template. Plain text is
// escaped and paragraph-wrapped; HTML is sanitized.
func PrepareForDisplay(s string) template.HTML {
	if s == "" {
		return ""
	}
	if IsPlainText(s) {
		return template.HTML(PlainTextToHTML(s))
	}
	return SanitizeToHTML(s)
}
