package dashboard

import (
	"github.com/danielcazi/frameup-connect-creators-sub000/internal/domain/project"
)

// AggregateItems reduces a batch's item statuses to one project-level status.
// Rules are evaluated top to bottom, first match wins; a single item awaiting
// creator action anywhere in the batch keeps the batch from reading as done.
// An empty list yields in_progress.
func AggregateItems(items []project.BatchItem) project.Status {
	if len(items) == 0 {
		return project.StatusInProgress
	}

	allApproved := true
	anyDelivered := false
	anyRevision := false
	for _, item := range items {
		switch item.Status {
		case project.ItemApproved:
		case project.ItemDelivered:
			allApproved = false
			anyDelivered = true
		case project.ItemRevisionRequested:
			allApproved = false
			anyRevision = true
		default:
			allApproved = false
		}
	}

	switch {
	case allApproved:
		return project.StatusCompleted
	case anyDelivered:
		return project.StatusInReview
	case anyRevision:
		return project.StatusRevisionRequested
	default:
		return project.StatusInProgress
	}
}

// EffectiveStatus returns the status used for grouping and counting. Archived
// projects short-circuit without inspecting items. Batch projects derive their
// status from items whenever items exist; the stored status is only the
// fallback for an itemless batch.
func EffectiveStatus(p *project.Project) project.Status {
	if p.Status == project.StatusArchived {
		return project.StatusArchived
	}
	if p.IsBatch && len(p.Items) > 0 {
		return AggregateItems(p.Items)
	}
	return p.Status
}
