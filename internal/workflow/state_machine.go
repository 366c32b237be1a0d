// Package workflow models the publication lifecycle shared by stories,
// bulletins and shows as an explicit finite-state machine.
package workflow

import (
	"fmt"

	"newskoop/newsroom/internal/constants"
)

// ErrInvalidTransition is returned when a status change is not in the
// transition table.
type ErrInvalidTransition struct {
	From constants.ContentStatus
	To   constants.ContentStatus
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("invalid status transition %s -> %s", e.From, e.To)
}

// transitions declares every legal status change. Publishing is allowed from
// any pre-archive state, including PUBLISHED itself (a re-publish re-stamps
// published_at). ARCHIVED is terminal and only reachable through the
// administrative content edit path.
var transitions = map[constants.ContentStatus][]constants.ContentStatus{
	constants.StatusDraft:     {constants.StatusReview, constants.StatusPublished},
	constants.StatusReview:    {constants.StatusDraft, constants.StatusApproved, constants.StatusPublished},
	constants.StatusApproved:  {constants.StatusReview, constants.StatusPublished},
	constants.StatusPublished: {constants.StatusPublished, constants.StatusArchived},
	constants.StatusArchived:  {},
}

// CanTransition reports whether from -> to is a legal status change.
func CanTransition(from, to constants.ContentStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates from -> to and returns the new status.
func Transition(from, to constants.ContentStatus) (constants.ContentStatus, error) {
	if !CanTransition(from, to) {
		return from, &ErrInvalidTransition{From: from, To: to}
	}
	return to, nil
}

// CanPublish reports whether content in the given status may be published.
func CanPublish(from constants.ContentStatus) bool {
	return CanTransition(from, constants.StatusPublished)
}

// Editable reports whether content in the given status is still open for
// author-level edits (pre-publication states only).
func Editable(status constants.ContentStatus) bool {
	return status == constants.StatusDraft || status == constants.StatusReview
}
