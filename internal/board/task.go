package board

import (
	"fmt"
	"time"
)

// Task is a board entry. It lives only in the board's memory and has no
// relation to rows served by the task API.
type Task struct {
	ID        int64
	Name      string
	Category  Category
	DateAdded string
	Done      bool
}

// FormatDateAdded renders t like "Thursday, October 15th, 2026 3:04 PM".
func FormatDateAdded(t time.Time) string {
	return fmt.Sprintf("%s%s%s",
		t.Format("Monday, January "),
		ordinal(t.Day()),
		t.Format(", 2006 3:04 PM"),
	)
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
