package workflow

import (
	"errors"
	"testing"

	"newskoop/newsroom/internal/constants"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to constants.ContentStatus
		want     bool
	}{
		{constants.StatusDraft, constants.StatusReview, true},
		{constants.StatusDraft, constants.StatusPublished, true},
		{constants.StatusDraft, constants.StatusApproved, false},
		{constants.StatusDraft, constants.StatusArchived, false},
		{constants.StatusReview, constants.StatusDraft, true},
		{constants.StatusReview, constants.StatusApproved, true},
		{constants.StatusReview, constants.StatusPublished, true},
		{constants.StatusReview, constants.StatusArchived, false},
		{constants.StatusApproved, constants.StatusReview, true},
		{constants.StatusApproved, constants.StatusPublished, true},
		{constants.StatusApproved, constants.StatusDraft, false},
		{constants.StatusPublished, constants.StatusPublished, true},
		{constants.StatusPublished, constants.StatusArchived, true},
		{constants.StatusPublished, constants.StatusDraft, false},
		{constants.StatusArchived, constants.StatusPublished, false},
		{constants.StatusArchived, constants.StatusDraft, false},
		{constants.StatusArchived, constants.StatusArchived, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestTransitionError(t *testing.T) {
	_, err := Transition(constants.StatusArchived, constants.StatusPublished)
	if err == nil {
		t.Fatal("expected error for archived -> published")
	}
	var invalid *ErrInvalidTransition
	if !errors.As(err, &invalid) {
		t.Fatalf("error type = %T", err)
	}
	if invalid.From != constants.StatusArchived || invalid.To != constants.StatusPublished {
		t.Errorf("error carries %s -> %s", invalid.From, invalid.To)
	}

	got, err := Transition(constants.StatusDraft, constants.StatusReview)
	if err != nil || got != constants.StatusReview {
		t.Errorf("Transition(DRAFT, REVIEW) = (%s, %v)", got, err)
	}
}

func TestEditable(t *testing.T) {
	editable := map[constants.ContentStatus]bool{
		constants.StatusDraft:     true,
		constants.StatusReview:    true,
		constants.StatusApproved:  false,
		constants.StatusPublished: false,
		constants.StatusArchived:  false,
	}
	for status, want := range editable {
		if got := Editable(status); got != want {
			t.Errorf("Editable(%s) = %v, want %v", status, got, want)
		}
	}
}

func TestCanPublish(t *testing.T) {
	for _, status := range []constants.ContentStatus{
		constants.StatusDraft, constants.StatusReview,
		constants.StatusApproved, constants.StatusPublished,
	} {
		if !CanPublish(status) {
			t.Errorf("CanPublish(%s) = false", status)
		}
	}
	if CanPublish(constants.StatusArchived) {
		t.Error("CanPublish(ARCHIVED) = true")
	}
}
