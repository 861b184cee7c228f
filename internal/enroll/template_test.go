package enroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderDM(t *testing.T) {
	const template = "Hi {first}, I tried to add you to {group} but could not. Join here: {link}"

	tests := []struct {
		name     string
		template string
		first    string
		group    string
		link     string
		expected string
	}{
		{
			name:     "all placeholders filled",
			template: template,
			first:    "Ada",
			group:    "@launchcrew",
			link:     "https://t.me/+AbCdEf",
			expected: "Hi Ada, I tried to add you to @launchcrew but could not. Join here: https://t.me/+AbCdEf",
		},
		{
			name:     "blank first name falls back",
			template: "Hi {first}!",
			first:    "",
			expected: "Hi there!",
		},
		{
			name:     "whitespace first name falls back",
			template: "Hi {first}!",
			first:    "   ",
			expected: "Hi there!",
		},
		{
			name:     "first name trimmed",
			template: "Hi {first}!",
			first:    "  Ada  ",
			expected: "Hi Ada!",
		},
		{
			name:     "empty link leaves a gap",
			template: "Join: {link}",
			link:     "",
			expected: "Join: ",
		},
		{
			name:     "unknown placeholder passes through",
			template: "Hi {first}, code {code}",
			first:    "Ada",
			expected: "Hi Ada, code {code}",
		},
		{
			name:     "repeated placeholders all replaced",
			template: "{group} {group}",
			group:    "@x",
			expected: "@x @x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, renderDM(tt.template, tt.first, tt.group, tt.link))
		})
	}
}
