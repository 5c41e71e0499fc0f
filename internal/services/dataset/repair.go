package dataset

import (
	"errors"
	"regexp"
	"strings"
)

// ErrDatasetTooSmall is returned when a dataset has no rows after the header.
var ErrDatasetTooSmall = errors.New("dataset too small or unreadable")

const recordPrefix = "SME_"

var (
	recordIDPattern    = regexp.MustCompile(`SME_\d+`)
	spacedRecordPrefix = regexp.MustCompile(`\s+(SME_\d+)`)
)

// RepairText splits dataset rows that were run together onto one line.
// Every SME_<n> identifier starts a new row; fragments that do not start
// with an identifier are joined to the preceding row with a space.
func RepairText(text string) (string, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return "", ErrDatasetTooSmall
	}

	header := strings.TrimSpace(lines[0])
	rest := breakBeforeIDs(strings.Join(lines[1:], "\n"))
	rest = spacedRecordPrefix.ReplaceAllString(rest, "\n$1")

	clean := []string{header}
	for _, line := range strings.Split(rest, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, recordPrefix) || len(clean) < 2 {
			clean = append(clean, line)
			continue
		}
		clean[len(clean)-1] += " " + line
	}

	return strings.Join(clean, "\n"), nil
}

// breakBeforeIDs inserts a newline before each record ID that does not
// already begin a line.
func breakBeforeIDs(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	last := 0
	for _, loc := range recordIDPattern.FindAllStringIndex(s, -1) {
		start := loc[0]
		sb.WriteString(s[last:start])
		if start == 0 || s[start-1] != '\n' {
			sb.WriteByte('\n')
		}
		last = start
	}
	sb.WriteString(s[last:])
	return sb.String()
}
