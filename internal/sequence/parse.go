package sequence

import (
	"regexp"
	"strconv"
	"strings"
)

// Separator is inserted between tokens when a value is appended
const Separator = ", "

var separatorRe = regexp.MustCompile(`\s*,\s*`)

// Parse splits input on commas and converts every token to an integer.
// Tokens that are empty or fail conversion are dropped silently.
func Parse(input string) []int {
	values := make([]int, 0)
	for _, token := range separatorRe.Split(input, -1) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		value, err := strconv.Atoi(token)
		if err != nil {
			continue
		}
		values = append(values, value)
	}
	return values
}

// Append adds value as a new token to the end of text
func Append(text string, value int) string {
	var b strings.Builder
	current := strings.TrimSpace(text)
	b.WriteString(current)
	if current != "" {
		b.WriteString(Separator)
	}
	b.WriteString(strconv.Itoa(value))
	return b.String()
}

// AllowedRune reports whether r may be typed into the input field at all
func AllowedRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == ',' || r == ' ' || r == '-'
}

// Acceptable reports whether text is a valid state of the input field.
// A minus sign is only accepted as the first character of a token.
func Acceptable(text string) bool {
	tokenStart := true
	for _, r := range text {
		switch {
		case !AllowedRune(r):
			return false
		case r == ',':
			tokenStart = true
		case r == ' ':
			// spaces do not end the leading run of a token
		case r == '-':
			if !tokenStart {
				return false
			}
			tokenStart = false
		default:
			tokenStart = false
		}
	}
	return true
}
