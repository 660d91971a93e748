// Package email renders outreach drafts for an application. Rendering is
// pure formatting over fixed templates; placeholders in square brackets are
// left for the sender to fill in by hand.
package email

import (
	"strings"
	"text/template"
)

// Fields carries the two values interpolated into every draft.
type Fields struct {
	PositionTitle string
	Company       string
}

var followUpTemplate = template.Must(template.New("followup").Parse(
	`Subject: Following up on my application for {{.PositionTitle}}

Hi [Hiring Manager],

I recently applied for the {{.PositionTitle}} role at {{.Company}} and wanted to reiterate my interest.
Please let me know if you need any further information.

Best,
[Your Name]
`))

var thankYouTemplate = template.Must(template.New("thankyou").Parse(
	`Subject: Thank you / {{.PositionTitle}} Interview

Hi [Interviewer Name],

Thank you for speaking with me about the {{.PositionTitle}} role at {{.Company}}.
I am excited about the opportunity and look forward to hearing next steps.

Best,
[Your Name]
`))

// RenderFollowUp renders the follow-up draft for the given application fields.
func RenderFollowUp(f Fields) (string, error) {
	return render(followUpTemplate, f)
}

// RenderThankYou renders the post-interview thank-you draft.
func RenderThankYou(f Fields) (string, error) {
	return render(thankYouTemplate, f)
}

func render(tmpl *template.Template, f Fields) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, f); err != nil {
		return "", err
	}
	return b.String(), nil
}
