package enroll

import "strings"

// renderDM fills the operator-supplied message template. Recognized
// placeholders are {first}, {group} and {link}; anything else passes through
// untouched. A blank first name falls back to a neutral greeting.
func renderDM(template, first, group, link string) string {
	first = strings.TrimSpace(first)
	if first == "" {
		first = "there"
	}
	return strings.NewReplacer(
		"{first}", first,
		"{group}", group,
		"{link}", link,
	).Replace(template)
}
