package schemas

import "strings"

// MaskPhone hides the middle of an 11-digit phone number
// ("13812345678" -> "138****5678"). Anything of another length passes
// through unchanged.
func MaskPhone(v string) string {
	if len(v) != 11 {
		return v
	}
	return v[:3] + "****" + v[7:]
}

// MaskIDCard hides the middle of an ID document number, keeping the
// first 6 and last 4 characters and the total length. Values shorter
// than 10 characters pass through unmasked.
func MaskIDCard(v string) string {
	if len(v) < 10 {
		return v
	}
	return v[:6] + strings.Repeat("*", len(v)-10) + v[len(v)-4:]
}
