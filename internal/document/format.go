package document

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

const bulletMarker = "・"

var (
	reAgendaEcho = regexp.MustCompile(`1\. - 議題[:：]?`)
	reMonthDay   = regexp.MustCompile(`^(\d{1,2})月(\d{1,2})日`)
	reYeared     = regexp.MustCompile(`^\d{4}年`)
)

// FormatFieldValue applies the per-field formatting policies before a
// value is written into its table cell. label must already be normalized.
func FormatFieldValue(label, value string) string {
	value = CleanRepeatedLabel(label, value)

	switch {
	case strings.Contains(label, "開催日") || label == "日時" || label == "日付":
		value = normalizeDate(value)
	case strings.Contains(label, "出席者") || strings.Contains(label, "参加者"):
		value = joinAttendees(value)
	}

	return bulletLines(value)
}

// CleanRepeatedLabel strips a leading restatement of the label from the
// value ("議題: ..." answers echo the label), including list-marker
// variants such as "1. - 議題:".
func CleanRepeatedLabel(label, value string) string {
	label = NormalizeLabel(label)
	value = strings.TrimSpace(norm.NFKC.String(value))

	pattern := regexp.MustCompile(`^[-\s]*` + regexp.QuoteMeta(label) + `[\s:：\-～ー]*`)
	value = strings.TrimSpace(pattern.ReplaceAllString(value, ""))

	return strings.TrimSpace(reAgendaEcho.ReplaceAllString(value, ""))
}

// normalizeDate expands a bare "M月D日" to "YYYY年M月D日" using the
// current year. Values that already carry a year pass through.
func normalizeDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || reYeared.MatchString(value) {
		return value
	}

	m := reMonthDay.FindStringSubmatch(value)
	if m == nil {
		return value
	}

	return fmt.Sprintf("%d年%s", time.Now().Year(), value)
}

// joinAttendees flattens a multi-line attendee list to one comma-joined
// line.
func joinAttendees(value string) string {
	var names []string
	for _, line := range strings.Split(value, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), bulletMarker))
		if line != "" {
			names = append(names, line)
		}
	}
	return strings.Join(names, "、")
}

// bulletLines prefixes each non-empty line of a multi-line value with a
// bullet marker unless the line already carries one. Single-line values
// are left bare.
func bulletLines(value string) string {
	lines := strings.Split(value, "\n")

	var nonEmpty int
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			nonEmpty++
		}
	}
	if nonEmpty <= 1 {
		return strings.TrimSpace(value)
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, bulletMarker) && !strings.HasPrefix(line, "•") {
			line = bulletMarker + line
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}
