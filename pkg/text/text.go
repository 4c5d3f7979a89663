package text

import (
	"bufio"
	"bytes"
	"strings"
)

// IsBlank returns if a text is blank.
func IsBlank(text string) bool {
	return len(strings.TrimSpace(text)) == 0
}

// PrefixLines prepends a prefix to every line of a text.
// The result always ends with a newline.
func PrefixLines(text string, prefix string) string {
	var result bytes.Buffer
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		result.WriteString(prefix)
		result.WriteString(scanner.Text())
		result.WriteRune('\n')
	}
	return result.String()
}
