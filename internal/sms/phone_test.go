package sms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"local leading zero", "09171234567", "+639171234567"},
		{"already international", "+19171234567", "+19171234567"},
		{"bare national number", "9171234567", "+639171234567"},
		{"separators stripped", "(0917) 123-4567", "+639171234567"},
		{"dots and spaces", "0917.123 4567", "+639171234567"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.phone, "+63"))
		})
	}
}
