package appointment

import (
	"strings"
	"time"
)

const (
	storedDateLayout  = "2006-01-02"
	displayDateLayout = "January 2, 2006"
)

// FormattedDate is the result of FormatDate. When Parsed is false, Text holds
// the original input unchanged and Err says why parsing failed.
type FormattedDate struct {
	Text   string
	Parsed bool
	Err    error
}

// FormatDate renders a stored YYYY-MM-DD date as "March 5, 2024".
func FormatDate(raw string) FormattedDate {
	t, err := time.Parse(storedDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return FormattedDate{Text: raw, Err: err}
	}
	return FormattedDate{Text: t.Format(displayDateLayout), Parsed: true}
}
