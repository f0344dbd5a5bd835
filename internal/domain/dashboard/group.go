package dashboard

import (
	"sort"
	"time"

	"github.com/danielcazi/frameup-connect-creators-sub000/internal/domain/project"
)

// Groups partitions a creator's projects into the four dashboard buckets.
// Draft, cancelled, and archived projects appear in none of them.
type Groups struct {
	InProduction   []*project.Project `json:"in_production"`
	AwaitingReview []*project.Project `json:"awaiting_review"`
	AwaitingEditor []*project.Project `json:"awaiting_editor"`
	Completed      []*project.Project `json:"completed"`
}

// Group buckets projects by effective status and applies each bucket's sort
// order. Sorts are stable; ties keep input order. The input slice is not
// modified.
func Group(projects []*project.Project) Groups {
	var g Groups
	for _, p := range projects {
		if p.Status == project.StatusCancelled {
			continue
		}
		switch EffectiveStatus(p) {
		case project.StatusInProgress, project.StatusAssigned:
			g.InProduction = append(g.InProduction, p)
		case project.StatusInReview:
			g.AwaitingReview = append(g.AwaitingReview, p)
		case project.StatusOpen:
			g.AwaitingEditor = append(g.AwaitingEditor, p)
		case project.StatusCompleted:
			g.Completed = append(g.Completed, p)
		}
	}

	// Soonest deadline first; projects without one go last.
	sort.SliceStable(g.InProduction, func(i, j int) bool {
		a, b := g.InProduction[i].DeadlineAt, g.InProduction[j].DeadlineAt
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.Before(*b)
	})

	// Oldest-waiting first.
	sort.SliceStable(g.AwaitingReview, func(i, j int) bool {
		return reviewTime(g.AwaitingReview[i]).Before(reviewTime(g.AwaitingReview[j]))
	})

	// Newest first.
	sort.SliceStable(g.AwaitingEditor, func(i, j int) bool {
		return g.AwaitingEditor[j].CreatedAt.Before(g.AwaitingEditor[i].CreatedAt)
	})

	// Most recently finished first.
	sort.SliceStable(g.Completed, func(i, j int) bool {
		return completedTime(g.Completed[j]).Before(completedTime(g.Completed[i]))
	})

	return g
}

func reviewTime(p *project.Project) time.Time {
	if p.ReviewRequestedAt != nil {
		return *p.ReviewRequestedAt
	}
	return p.UpdatedAt
}

func completedTime(p *project.Project) time.Time {
	if p.CompletedAt != nil {
		return *p.CompletedAt
	}
	return p.UpdatedAt
}
