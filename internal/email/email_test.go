package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFollowUp(t *testing.T) {
	draft, err := RenderFollowUp(Fields{PositionTitle: "Engineer", Company: "Acme"})
	assert.NoError(t, err)

	assert.Contains(t, draft, "Engineer")
	assert.Contains(t, draft, "Acme")
	assert.True(t, strings.HasPrefix(draft, "Subject: Following up on my application for Engineer"))
	assert.Contains(t, draft, "[Hiring Manager]")
	assert.Contains(t, draft, "[Your Name]")
	assert.Contains(t, draft, "I recently applied for the Engineer role at Acme")
}

func TestRenderThankYou(t *testing.T) {
	draft, err := RenderThankYou(Fields{PositionTitle: "Data Analyst", Company: "DataForge"})
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(draft, "Subject: Thank you / Data Analyst Interview"))
	assert.Contains(t, draft, "[Interviewer Name]")
	assert.Contains(t, draft, "[Your Name]")
	assert.Contains(t, draft, "Thank you for speaking with me about the Data Analyst role at DataForge.")
}

func TestRenderIsPureFormatting(t *testing.T) {
	f := Fields{PositionTitle: "SRE", Company: "TechNova"}

	first, err := RenderFollowUp(f)
	assert.NoError(t, err)
	second, err := RenderFollowUp(f)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}
