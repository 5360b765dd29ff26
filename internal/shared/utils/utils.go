package utils

import (
	"os"
	"regexp"
	"strings"
)

// GetEnvVariable reads an environment variable with a fallback default
func GetEnvVariable(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

var (
	nonSlugChars     = regexp.MustCompile("[^a-z0-9-]+")
	duplicateHyphens = regexp.MustCompile("-+")
)

// GenerateSlug builds a URL-safe slug from a title or name
func GenerateSlug(title string) string {
	title = strings.ToLower(strings.TrimSpace(title))
	title = strings.ReplaceAll(title, " ", "-")
	title = nonSlugChars.ReplaceAllString(title, "")
	title = duplicateHyphens.ReplaceAllString(title, "-")
	return strings.Trim(title, "-")
}
