package models

import (
	"errors"
	"testing"
	"time"

	"github.com/khanhle/schoolhealth/internal/pkg/apperrors"
)

func validResult() HealthResult {
	return HealthResult{
		Type: EventDental,
		Dental: &DentalResult{
			MilkTeeth:      "18",
			PermanentTeeth: "6",
			Cavities:       "none",
		},
	}
}

func TestApprove(t *testing.T) {
	tests := []struct {
		name    string
		status  ConfirmationStatus
		wantErr error
	}{
		{name: "from pending", status: StatusPending, wantErr: nil},
		{name: "already approved", status: StatusApproved, wantErr: apperrors.ErrConfirmationAlreadyResponded},
		{name: "already rejected", status: StatusRejected, wantErr: apperrors.ErrConfirmationAlreadyResponded},
		{name: "already completed", status: StatusCompleted, wantErr: apperrors.ErrConfirmationAlreadyResponded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Confirmation{Status: tt.status}
			err := c.Approve("please check her left ear")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Approve() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil {
				if c.Status != StatusApproved {
					t.Errorf("status = %q, want %q", c.Status, StatusApproved)
				}
				if c.ParentNotes != "please check her left ear" {
					t.Errorf("parent notes not recorded: %q", c.ParentNotes)
				}
			} else if c.Status != tt.status {
				t.Errorf("failed transition mutated status to %q", c.Status)
			}
		})
	}
}

func TestReject(t *testing.T) {
	tests := []struct {
		name    string
		status  ConfirmationStatus
		reason  string
		wantErr error
	}{
		{name: "from pending with reason", status: StatusPending, reason: "recently vaccinated elsewhere", wantErr: nil},
		{name: "missing reason", status: StatusPending, reason: "", wantErr: apperrors.ErrRejectionReasonRequired},
		{name: "whitespace reason", status: StatusPending, reason: "   ", wantErr: apperrors.ErrRejectionReasonRequired},
		{name: "already responded", status: StatusApproved, reason: "changed my mind", wantErr: apperrors.ErrConfirmationAlreadyResponded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Confirmation{Status: tt.status, ParentNotes: "earlier note"}
			err := c.Reject(tt.reason)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Reject() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil {
				if c.Status != StatusRejected {
					t.Errorf("status = %q, want %q", c.Status, StatusRejected)
				}
				if c.RejectionReason != tt.reason {
					t.Errorf("rejection reason not recorded: %q", c.RejectionReason)
				}
				if c.ParentNotes != "" {
					t.Errorf("parent notes should be cleared on rejection, got %q", c.ParentNotes)
				}
			}
		})
	}
}

func TestComplete(t *testing.T) {
	followUpDate := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		status       ConfirmationStatus
		followUp     bool
		followUpDate *time.Time
		wantErr      error
	}{
		{name: "from approved", status: StatusApproved, wantErr: nil},
		{name: "from pending is rejected", status: StatusPending, wantErr: apperrors.ErrConfirmationNotApproved},
		{name: "from rejected is rejected", status: StatusRejected, wantErr: apperrors.ErrConfirmationNotApproved},
		{name: "double completion", status: StatusCompleted, wantErr: apperrors.ErrConfirmationAlreadyCompleted},
		{name: "follow-up without date", status: StatusApproved, followUp: true, wantErr: apperrors.ErrFollowUpDateRequired},
		{name: "follow-up with date", status: StatusApproved, followUp: true, followUpDate: &followUpDate, wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Confirmation{Status: tt.status}
			err := c.Complete(validResult(), "no issues found", "brush twice daily", tt.followUp, tt.followUpDate)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Complete() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if c.Status != tt.status {
					t.Errorf("failed transition mutated status to %q", c.Status)
				}
				return
			}
			if c.Status != StatusCompleted {
				t.Errorf("status = %q, want %q", c.Status, StatusCompleted)
			}
			if c.Result == nil || c.Result.Dental == nil {
				t.Fatal("result payload not attached")
			}
			if c.ExaminationNotes != "no issues found" {
				t.Errorf("examination notes not recorded: %q", c.ExaminationNotes)
			}
			if tt.followUp && (c.FollowUpDate == nil || !c.FollowUpDate.Equal(followUpDate)) {
				t.Errorf("follow-up date not recorded: %v", c.FollowUpDate)
			}
			if !tt.followUp && c.FollowUpDate != nil {
				t.Errorf("follow-up date set without follow-up flag: %v", c.FollowUpDate)
			}
		})
	}
}

func TestFullLifecycle(t *testing.T) {
	c := Confirmation{Status: StatusPending}

	if err := c.Approve("ok"); err != nil {
		t.Fatalf("Approve() error = %v", err)
	}
	if err := c.Complete(validResult(), "", "", false, nil); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	// Terminal: no further transitions are allowed.
	if err := c.Approve("again"); !errors.Is(err, apperrors.ErrConfirmationAlreadyResponded) {
		t.Errorf("Approve() after completion = %v, want %v", err, apperrors.ErrConfirmationAlreadyResponded)
	}
	if err := c.Complete(validResult(), "", "", false, nil); !errors.Is(err, apperrors.ErrConfirmationAlreadyCompleted) {
		t.Errorf("Complete() after completion = %v, want %v", err, apperrors.ErrConfirmationAlreadyCompleted)
	}
}
