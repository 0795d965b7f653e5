package render

import "regexp"

var (
	cssColorPattern = regexp.MustCompile(`^(?:#[0-9A-Fa-f]{3,8}|[A-Za-z]{3,20}|(?:rgb|rgba|hsl|hsla)\([0-9.,%\s]+\))$`)
	cssURLPattern   = regexp.MustCompile(`^(?:https?://[^\s'"()\\;<>]+|[A-Za-z0-9._~/?#&=%+-][^\s'"()\\;<>:]*)$`)
)

// cssFields lists config keys that land inside inline CSS, per template.
var cssFields = map[string]map[string]func(string) string{
	"hero-4": {"backgroundImage": cssURL},
	"hero-6": {"backgroundImage": cssURL},
	"hero-9": {"backgroundImage": cssURL},
}

// cssColor returns value when it is a plain colour literal, otherwise fallback.
func cssColor(value, fallback string) string {
	if cssColorPattern.MatchString(value) {
		return value
	}
	return fallback
}

// cssURL keeps values usable inside an unquoted url(...) and drops the rest.
func cssURL(value string) string {
	if cssURLPattern.MatchString(value) {
		return value
	}
	return ""
}
