package dashboard

import (
	"github.com/danielcazi/frameup-connect-creators-sub000/internal/domain/project"
)

// Metrics holds the dashboard counters. Counts are in videos, not projects:
// a batch project contributes its batch quantity to every counter it
// qualifies for.
type Metrics struct {
	InProduction   int `json:"in_production"`
	AwaitingReview int `json:"awaiting_review"`
	Completed      int `json:"completed"`
	Total          int `json:"total"`
}

// ComputeMetrics counts videos per dashboard bucket. Cancelled projects are
// excluded everywhere, including the total.
func ComputeMetrics(projects []*project.Project) Metrics {
	var m Metrics
	for _, p := range projects {
		if p.Status == project.StatusCancelled {
			continue
		}
		status := EffectiveStatus(p)

		units := 1
		if p.IsBatch && p.BatchQuantity > 1 {
			units = p.BatchQuantity
		}

		m.Total += units
		switch status {
		case project.StatusInProgress, project.StatusAssigned:
			m.InProduction += units
		case project.StatusInReview:
			m.AwaitingReview += units
		case project.StatusCompleted:
			m.Completed += units
		}
	}
	return m
}
