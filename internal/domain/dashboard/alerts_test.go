package dashboard

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/danielcazi/frameup-connect-creators-sub000/internal/domain/message"
	"github.com/danielcazi/frameup-connect-creators-sub000/internal/domain/project"
	"github.com/stretchr/testify/require"
)

func TestBuildAlerts_Ordering(t *testing.T) {
	projects := []*project.Project{
		{ID: "rev", Title: "Review me", Status: project.StatusInReview,
			ReviewRequestedAt: tp(baseTime.Add(-24 * time.Hour))},
		{ID: "due", Title: "Due soon", Status: project.StatusInProgress,
			DeadlineAt: tp(baseTime.Add(20 * time.Hour))},
	}
	messages := []*message.Message{
		{ID: "m1", SenderName: "Ana", Body: "hi", CreatedAt: baseTime},
	}

	alerts := BuildAlerts(projects, messages, baseTime)
	require.Len(t, alerts, 3)
	require.Equal(t, AlertReview, alerts[0].Type)
	require.Equal(t, 1, alerts[0].Priority)
	require.Equal(t, AlertMessage, alerts[1].Type)
	require.Equal(t, 2, alerts[1].Priority)
	require.Equal(t, AlertDeadline, alerts[2].Type)
	require.Equal(t, 3, alerts[2].Priority)
}

func TestBuildAlerts_EmptySourcesOmitted(t *testing.T) {
	alerts := BuildAlerts(nil, nil, baseTime)
	require.Empty(t, alerts)
}

func TestReviewAlert_TruncationAndAction(t *testing.T) {
	var projects []*project.Project
	for i := 0; i < 5; i++ {
		projects = append(projects, &project.Project{
			ID:                fmt.Sprintf("p%d", i),
			Title:             fmt.Sprintf("Project %d", i),
			Status:            project.StatusInReview,
			ReviewRequestedAt: tp(baseTime.Add(-time.Duration(i+1) * 24 * time.Hour)),
		})
	}

	alerts := BuildAlerts(projects, nil, baseTime)
	require.Len(t, alerts, 1)

	alert := alerts[0]
	require.Equal(t, AlertReview, alert.Type)
	require.Len(t, alert.Items, 2)
	require.NotNil(t, alert.Action)
	require.Equal(t, "View all (5)", alert.Action.Label)
	// Oldest waiting first: p4 waited 5 days, p3 waited 4.
	require.Contains(t, alert.Items[0].Text, "Project 4")
	require.Contains(t, alert.Items[0].Text, "5 days")
	require.Contains(t, alert.Items[1].Text, "Project 3")
}

func TestReviewAlert_NoActionWhenTwoOrFewer(t *testing.T) {
	projects := []*project.Project{
		{ID: "p1", Title: "One", Status: project.StatusInReview,
			ReviewRequestedAt: tp(baseTime.Add(-72 * time.Hour))},
	}

	alerts := BuildAlerts(projects, nil, baseTime)
	require.Len(t, alerts, 1)
	require.Len(t, alerts[0].Items, 1)
	require.Nil(t, alerts[0].Action)
	require.Equal(t, "1 project awaiting your review", alerts[0].Title)
}

func TestReviewAlert_DaysWaitingIsFloor(t *testing.T) {
	// 20 hours of waiting has not completed a day yet.
	projects := []*project.Project{
		{ID: "p1", Title: "Fresh", Status: project.StatusInReview,
			ReviewRequestedAt: tp(baseTime.Add(-20 * time.Hour))},
	}

	alerts := BuildAlerts(projects, nil, baseTime)
	require.Contains(t, alerts[0].Items[0].Text, "since today")
}

func TestMessageAlert_ExcerptTruncation(t *testing.T) {
	long := strings.Repeat("a", 45)
	messages := []*message.Message{
		{ID: "m1", SenderName: "Bruno", Body: long, CreatedAt: baseTime},
	}

	alerts := BuildAlerts(nil, messages, baseTime)
	require.Len(t, alerts, 1)
	require.Equal(t, "Bruno: "+strings.Repeat("a", 40)+"…", alerts[0].Items[0].Text)
}

func TestMessageAlert_ShortBodyNotTruncated(t *testing.T) {
	messages := []*message.Message{
		{ID: "m1", SenderName: "Bruno", Body: "short note", CreatedAt: baseTime},
	}

	alerts := BuildAlerts(nil, messages, baseTime)
	require.Equal(t, "Bruno: short note", alerts[0].Items[0].Text)
}

func TestMessageAlert_ReadMessagesIgnored(t *testing.T) {
	messages := []*message.Message{
		{ID: "m1", SenderName: "Ana", Body: "seen", Read: true, CreatedAt: baseTime},
	}

	alerts := BuildAlerts(nil, messages, baseTime)
	require.Empty(t, alerts)
}

func TestMessageAlert_InputOrderPreserved(t *testing.T) {
	messages := []*message.Message{
		{ID: "m1", SenderName: "First", Body: "one", CreatedAt: baseTime},
		{ID: "m2", SenderName: "Second", Body: "two", CreatedAt: baseTime.Add(-time.Hour)},
		{ID: "m3", SenderName: "Third", Body: "three", CreatedAt: baseTime.Add(-2 * time.Hour)},
	}

	alerts := BuildAlerts(nil, messages, baseTime)
	require.Len(t, alerts[0].Items, 2)
	require.Contains(t, alerts[0].Items[0].Text, "First")
	require.Contains(t, alerts[0].Items[1].Text, "Second")
	require.NotNil(t, alerts[0].Action)
	require.Equal(t, "View all (3)", alerts[0].Action.Label)
}

func TestDeadlineAlert_Window(t *testing.T) {
	projects := []*project.Project{
		{ID: "in-future", Title: "In window", Status: project.StatusInProgress,
			DeadlineAt: tp(baseTime.Add(47 * time.Hour))},
		{ID: "too-far", Title: "Outside", Status: project.StatusInProgress,
			DeadlineAt: tp(baseTime.Add(48 * time.Hour))},
		{ID: "overdue", Title: "Overdue", Status: project.StatusInProgress,
			DeadlineAt: tp(baseTime.Add(-71 * time.Hour))},
		{ID: "too-old", Title: "Long gone", Status: project.StatusInProgress,
			DeadlineAt: tp(baseTime.Add(-72 * time.Hour))},
		{ID: "done", Title: "Done", Status: project.StatusCompleted,
			DeadlineAt: tp(baseTime.Add(10 * time.Hour))},
		{ID: "cancelled", Title: "Cancelled", Status: project.StatusCancelled,
			DeadlineAt: tp(baseTime.Add(10 * time.Hour))},
		{ID: "no-deadline", Title: "Free", Status: project.StatusInProgress},
	}

	alerts := BuildAlerts(projects, nil, baseTime)
	require.Len(t, alerts, 1)

	alert := alerts[0]
	require.Equal(t, AlertDeadline, alert.Type)
	// Most overdue first.
	require.Contains(t, alert.Items[0].Text, "Overdue")
	require.Contains(t, alert.Items[1].Text, "In window")
	require.Nil(t, alert.Action)
}

func TestDeadlineAlert_UsesClassifierText(t *testing.T) {
	projects := []*project.Project{
		{ID: "p1", Title: "Edit", Status: project.StatusInProgress,
			DeadlineAt: tp(baseTime.Add(20 * time.Hour))},
	}

	alerts := BuildAlerts(projects, nil, baseTime)
	require.Equal(t, "Edit · 20 hours remaining", alerts[0].Items[0].Text)
}

func TestBuildAlerts_EndToEnd(t *testing.T) {
	projects := []*project.Project{
		{ID: "rev", Title: "Launch video", Status: project.StatusInReview,
			ReviewRequestedAt: tp(baseTime.Add(-3 * 24 * time.Hour))},
		{ID: "due", Title: "Promo cut", Status: project.StatusInProgress,
			DeadlineAt: tp(baseTime.Add(20 * time.Hour))},
	}
	messages := []*message.Message{
		{ID: "m1", SenderName: "Carla", Body: strings.Repeat("x", 45), CreatedAt: baseTime},
	}

	alerts := BuildAlerts(projects, messages, baseTime)
	require.Len(t, alerts, 3)

	review := alerts[0]
	require.Len(t, review.Items, 1)
	require.Nil(t, review.Action)
	require.Contains(t, review.Items[0].Text, "3 days")

	msg := alerts[1]
	require.Len(t, msg.Items, 1)
	require.Equal(t, "Carla: "+strings.Repeat("x", 40)+"…", msg.Items[0].Text)

	deadline := alerts[2]
	require.Len(t, deadline.Items, 1)
	require.Contains(t, deadline.Items[0].Text, "20 hours remaining")
}
