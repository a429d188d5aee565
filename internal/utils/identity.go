package utils

import "strings"

var avatarPalette = []string{
	"#2563eb", "#7c3aed", "#db2777", "#ea580c",
	"#16a34a", "#0891b2", "#4f46e5", "#b91c1c",
}

// Initials derives up to two uppercase initials from a display name.
func Initials(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}

	first := []rune(fields[0])
	initials := strings.ToUpper(string(first[0]))
	if len(fields) > 1 {
		last := []rune(fields[len(fields)-1])
		initials += strings.ToUpper(string(last[0]))
	}
	return initials
}

// AvatarColor picks a stable palette color for a display name so avatars
// keep their color across sessions.
func AvatarColor(name string) string {
	var sum int
	for _, r := range name {
		sum += int(r)
	}
	return avatarPalette[sum%len(avatarPalette)]
}
