// Package prompts embeds the prompt templates sent to the
// text-generation collaborator and renders them with session data.
package prompts

import (
	"bytes"
	_ "embed"
	"text/template"
)

//go:embed context.md.tmpl
var contextTemplate string

//go:embed insight.md.tmpl
var insightTemplate string

//go:embed feedback.md.tmpl
var feedbackTemplate string

//go:embed offerings.md.tmpl
var offeringsTemplate string

var (
	contextTmpl   = template.Must(template.New("context").Parse(contextTemplate))
	insightTmpl   = template.Must(template.New("insight").Parse(insightTemplate))
	feedbackTmpl  = template.Must(template.New("feedback").Parse(feedbackTemplate))
	offeringsTmpl = template.Must(template.New("offerings").Parse(offeringsTemplate))
)

// ContextData holds the session snapshot embedded in every request.
type ContextData struct {
	History  string // role-prefixed transcript of the recent turns
	Stage    string // current wizard stage name
	Snapshot string // indented JSON of the response record
	Extra    string // caller-supplied extra context, may be empty
}

// ContextBlock renders the system/context block that precedes the user
// input in every gateway request.
func ContextBlock(data ContextData) string {
	return render(contextTmpl, data)
}

// Insight renders the follow-up prompt sent when a group is selected.
func Insight(group string) string {
	return render(insightTmpl, struct{ Group string }{group})
}

// Feedback renders the viability feedback prompt for the test stage.
func Feedback(niche, size, recognition string) string {
	return render(feedbackTmpl, struct {
		Niche       string
		Size        string
		Recognition string
	}{niche, size, recognition})
}

// Offerings renders the structured three-tier offerings prompt.
func Offerings(niche, availability, format, location string) string {
	return render(offeringsTmpl, struct {
		Niche        string
		Availability string
		Format       string
		Location     string
	}{niche, availability, format, location})
}

// render executes tmpl with data. Templates are embedded at compile
// time, so an execution failure is a bug; the zero-value string keeps
// callers total rather than panicking mid-session.
func render(tmpl *template.Template, data interface{}) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return ""
	}
	return buf.String()
}
