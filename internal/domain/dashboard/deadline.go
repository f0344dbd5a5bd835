package dashboard

import (
	"fmt"
	"time"
)

// Urgency encodes how soon or overdue a deadline is, independent of the text shown.
type Urgency string

const (
	UrgencyRed    Urgency = "red"
	UrgencyOrange Urgency = "orange"
	UrgencyYellow Urgency = "yellow"
	UrgencyGray   Urgency = "gray"
)

// Deadline is the classified view of a single target timestamp.
type Deadline struct {
	Text   string  `json:"text"`
	Tier   Urgency `json:"tier"`
	Urgent bool    `json:"urgent"`
}

const (
	millisPerHour = int64(time.Hour / time.Millisecond)
	millisPerDay  = 24 * millisPerHour
)

// ceilDiv divides rounding toward positive infinity. Go's integer division
// truncates toward zero, which already is the ceiling for negative quotients.
func ceilDiv(a, b int64) int64 {
	q := a / b
	if a%b > 0 {
		q++
	}
	return q
}

// ClassifyDeadline maps a deadline to an urgency tier and a human label.
// now is an explicit input so the classification is deterministic.
// Day and hour counts use ceiling division of the millisecond delta, so a
// deadline a tenth of a day away still reads as one day.
func ClassifyDeadline(deadline, now time.Time) Deadline {
	deltaMs := deadline.Sub(now).Milliseconds()
	days := ceilDiv(deltaMs, millisPerDay)
	hours := ceilDiv(deltaMs, millisPerHour)

	switch {
	case days < 0:
		return Deadline{
			Text:   fmt.Sprintf("%s overdue", pluralize(-days, "day")),
			Tier:   UrgencyRed,
			Urgent: true,
		}
	case hours < 24:
		text := "due today"
		if hours > 0 {
			text = fmt.Sprintf("%s remaining", pluralize(hours, "hour"))
		}
		return Deadline{Text: text, Tier: UrgencyRed, Urgent: true}
	case days == 1:
		return Deadline{Text: "due tomorrow", Tier: UrgencyOrange, Urgent: true}
	case days <= 3:
		return Deadline{
			Text: fmt.Sprintf("due in %s", pluralize(days, "day")),
			Tier: UrgencyYellow,
		}
	default:
		return Deadline{
			Text: fmt.Sprintf("due in %s", pluralize(days, "day")),
			Tier: UrgencyGray,
		}
	}
}

func pluralize(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
