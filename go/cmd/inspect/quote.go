package inspect

import "strings"

// shellQuote quotes s so shellwords parses it back as one word.
func shellQuote(s string) string {
	return "'" + strings.Replace(s, "'", `'"'"'`, -1) + "'"
}
