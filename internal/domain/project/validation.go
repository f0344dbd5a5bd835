package project

import "strings"

// ValidateCreateInput validates fields required to open a project.
func ValidateCreateInput(req CreateRequest) error {
	if strings.TrimSpace(req.CreatorID) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(req.Title) == "" {
		return ErrInvalidInput
	}
	if req.BatchQuantity < 0 {
		return ErrInvalidInput
	}
	return nil
}

// ValidateTransition validates a requested project status transition.
func ValidateTransition(from, to Status) error {
	if from == StatusArchived {
		return ErrArchived
	}

	valid := false
	switch from {
	case StatusDraft:
		valid = to == StatusOpen || to == StatusCancelled
	case StatusOpen:
		valid = to == StatusAssigned || to == StatusCancelled
	case StatusAssigned:
		valid = to == StatusInProgress || to == StatusOpen || to == StatusCancelled
	case StatusInProgress:
		valid = to == StatusInReview || to == StatusCancelled
	case StatusInReview:
		valid = to == StatusRevisionRequested || to == StatusCompleted
	case StatusRevisionRequested:
		valid = to == StatusInProgress || to == StatusInReview
	case StatusCompleted:
		valid = to == StatusArchived
	case StatusCancelled:
		valid = to == StatusArchived
	}

	if !valid {
		return ErrInvalidTransition
	}
	return nil
}

// ValidateItemTransition validates a batch item status transition. Items move
// independently: the editor delivers each one and the creator reviews it.
func ValidateItemTransition(from, to ItemStatus) error {
	valid := false
	switch from {
	case ItemPending:
		valid = to == ItemInProgress
	case ItemInProgress:
		valid = to == ItemDelivered
	case ItemDelivered:
		valid = to == ItemRevisionRequested || to == ItemApproved
	case ItemRevisionRequested:
		valid = to == ItemInProgress || to == ItemDelivered
	}

	if !valid {
		return ErrInvalidTransition
	}
	return nil
}
