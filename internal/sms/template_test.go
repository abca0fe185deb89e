package sms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_SubstitutesPlaceholders(t *testing.T) {
	out := Render("Fire at {establishment} ({location})", map[string]string{
		"establishment": "Harbor Mall",
		"location":      "14.5995,120.9842",
	})
	assert.Equal(t, "Fire at Harbor Mall (14.5995,120.9842)", out)
}

func TestRender_RepeatedPlaceholder(t *testing.T) {
	out := Render("{name} and {name} again", map[string]string{"name": "Central"})
	assert.Equal(t, "Central and Central again", out)
}

func TestRender_UnknownPlaceholderLeftVerbatim(t *testing.T) {
	out := Render("Fire at {establishment}, floor {floor}", map[string]string{
		"establishment": "Harbor Mall",
	})
	assert.Equal(t, "Fire at Harbor Mall, floor {floor}", out)
}

func TestRender_NoPlaceholders(t *testing.T) {
	out := Render("plain text", map[string]string{"establishment": "Harbor Mall"})
	assert.Equal(t, "plain text", out)
}
