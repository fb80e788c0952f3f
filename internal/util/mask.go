package util

// Mask renders a provider API key for the setup summary and debug logs.
// Only the last 4 characters survive; keys of 4 or fewer are fully hidden.
func Mask(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	return "****" + s[len(s)-4:]
}
