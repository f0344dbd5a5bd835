package dashboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/danielcazi/frameup-connect-creators-sub000/internal/domain/message"
	"github.com/danielcazi/frameup-connect-creators-sub000/internal/domain/project"
)

// AlertType identifies one of the three alert kinds.
type AlertType string

const (
	AlertReview   AlertType = "review"
	AlertMessage  AlertType = "message"
	AlertDeadline AlertType = "deadline"
)

const (
	priorityReview   = 1
	priorityMessage  = 2
	priorityDeadline = 3

	// maxAlertItems caps the display items per alert; overflow goes behind
	// the action link.
	maxAlertItems = 2

	excerptLimit = 40
)

// AlertItem is one compact display line inside an alert.
type AlertItem struct {
	Text      string     `json:"text"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// AlertAction links to the full list when more sources exist than are shown.
type AlertAction struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

// Alert is a derived, ephemeral view entity; it is never persisted.
type Alert struct {
	Type     AlertType    `json:"type"`
	Priority int          `json:"priority"`
	Title    string       `json:"title"`
	Items    []AlertItem  `json:"items"`
	Action   *AlertAction `json:"action,omitempty"`
}

// BuildAlerts assembles the ranked alert feed: projects awaiting review first,
// then unread messages, then looming deadlines. Each kind is emitted at most
// once, capped at two display items, and omitted entirely when its source set
// is empty. The result is ordered by ascending priority.
func BuildAlerts(projects []*project.Project, messages []*message.Message, now time.Time) []Alert {
	var alerts []Alert
	if a := reviewAlert(projects, now); a != nil {
		alerts = append(alerts, *a)
	}
	if a := messageAlert(messages); a != nil {
		alerts = append(alerts, *a)
	}
	if a := deadlineAlert(projects, now); a != nil {
		alerts = append(alerts, *a)
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Priority < alerts[j].Priority
	})
	return alerts
}

func reviewAlert(projects []*project.Project, now time.Time) *Alert {
	var waiting []*project.Project
	for _, p := range projects {
		if EffectiveStatus(p) == project.StatusInReview {
			waiting = append(waiting, p)
		}
	}
	if len(waiting) == 0 {
		return nil
	}

	sort.SliceStable(waiting, func(i, j int) bool {
		return reviewTime(waiting[i]).Before(reviewTime(waiting[j]))
	})

	alert := &Alert{
		Type:     AlertReview,
		Priority: priorityReview,
		Title:    fmt.Sprintf("%s awaiting your review", pluralize(int64(len(waiting)), "project")),
	}
	for _, p := range waiting[:min(len(waiting), maxAlertItems)] {
		ts := reviewTime(p)
		alert.Items = append(alert.Items, AlertItem{
			Text:      fmt.Sprintf("%s · waiting %s", p.Title, daysWaitingText(ts, now)),
			Timestamp: &ts,
		})
	}
	if len(waiting) > maxAlertItems {
		alert.Action = &AlertAction{
			URL:   "/projects?bucket=awaiting_review",
			Label: fmt.Sprintf("View all (%d)", len(waiting)),
		}
	}
	return alert
}

// daysWaitingText reports elapsed whole days, floor not ceiling: a review
// requested 20 hours ago has been waiting 0 days, not 1.
func daysWaitingText(since, now time.Time) string {
	days := now.Sub(since).Milliseconds() / millisPerDay
	if days <= 0 {
		return "since today"
	}
	return pluralize(days, "day")
}

func messageAlert(messages []*message.Message) *Alert {
	var unread []*message.Message
	for _, m := range messages {
		if !m.Read {
			unread = append(unread, m)
		}
	}
	if len(unread) == 0 {
		return nil
	}

	alert := &Alert{
		Type:     AlertMessage,
		Priority: priorityMessage,
		Title:    fmt.Sprintf("%s unread", pluralize(int64(len(unread)), "message")),
	}
	for _, m := range unread[:min(len(unread), maxAlertItems)] {
		ts := m.CreatedAt
		alert.Items = append(alert.Items, AlertItem{
			Text:      fmt.Sprintf("%s: %s", m.SenderName, excerpt(m.Body)),
			Timestamp: &ts,
		})
	}
	if len(unread) > maxAlertItems {
		alert.Action = &AlertAction{
			URL:   "/messages",
			Label: fmt.Sprintf("View all (%d)", len(unread)),
		}
	}
	return alert
}

// excerpt truncates to 40 characters, appending an ellipsis only when
// something was cut.
func excerpt(body string) string {
	runes := []rune(body)
	if len(runes) <= excerptLimit {
		return body
	}
	return string(runes[:excerptLimit]) + "…"
}

func deadlineAlert(projects []*project.Project, now time.Time) *Alert {
	var due []*project.Project
	for _, p := range projects {
		if p.DeadlineAt == nil || p.Status == project.StatusCancelled {
			continue
		}
		if EffectiveStatus(p) == project.StatusCompleted {
			continue
		}
		// Window: less than 72h overdue through less than 48h out, exclusive
		// on both ends.
		delta := p.DeadlineAt.Sub(now)
		if delta > -72*time.Hour && delta < 48*time.Hour {
			due = append(due, p)
		}
	}
	if len(due) == 0 {
		return nil
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].DeadlineAt.Before(*due[j].DeadlineAt)
	})

	alert := &Alert{
		Type:     AlertDeadline,
		Priority: priorityDeadline,
		Title:    fmt.Sprintf("%s due soon", pluralize(int64(len(due)), "deadline")),
	}
	for _, p := range due[:min(len(due), maxAlertItems)] {
		alert.Items = append(alert.Items, AlertItem{
			Text:      fmt.Sprintf("%s · %s", p.Title, ClassifyDeadline(*p.DeadlineAt, now).Text),
			Timestamp: p.DeadlineAt,
		})
	}
	if len(due) > maxAlertItems {
		alert.Action = &AlertAction{
			URL:   "/projects?due=soon",
			Label: fmt.Sprintf("View all (%d)", len(due)),
		}
	}
	return alert
}
