package mission

import (
	"errors"
	"testing"
)

func TestCanAssign(t *testing.T) {
	for _, current := range []Status{StatusScheduled, StatusPending, StatusInProgress} {
		if err := CanAssign("Starlink-1", current); err != nil {
			t.Errorf("CanAssign(%s) = %v, want nil", current, err)
		}
	}

	err := CanAssign("Starlink-1", StatusEnded)
	var endedErr *EndedError
	if !errors.As(err, &endedErr) {
		t.Fatalf("CanAssign(ENDED) error type = %T, want *EndedError", err)
	}
	want := "cannot modify mission 'Starlink-1': it has 'ENDED' status"
	if err.Error() != want {
		t.Errorf("CanAssign(ENDED) error = %q, want %q", err.Error(), want)
	}
}

func TestCanComplete(t *testing.T) {
	tests := []struct {
		name    string
		current Status
		wantErr bool
	}{
		{name: "in progress can complete", current: StatusInProgress, wantErr: false},
		{name: "scheduled cannot complete", current: StatusScheduled, wantErr: true},
		{name: "pending cannot complete", current: StatusPending, wantErr: true},
		{name: "ended cannot complete again", current: StatusEnded, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanComplete("Starlink-1", tt.current)

			if !tt.wantErr {
				if err != nil {
					t.Fatalf("CanComplete() = %v, want nil", err)
				}
				return
			}

			var statusErr *InvalidStatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("CanComplete() error type = %T, want *InvalidStatusError", err)
			}
			if statusErr.Current != tt.current {
				t.Errorf("InvalidStatusError.Current = %s, want %s", statusErr.Current, tt.current)
			}
			if statusErr.Required != StatusInProgress {
				t.Errorf("InvalidStatusError.Required = %s, want %s", statusErr.Required, StatusInProgress)
			}
		})
	}
}

func TestNotPartOfMissionErrorMessage(t *testing.T) {
	err := &NotPartOfMissionError{Rocket: "Falcon 9", Mission: "Starlink-1"}
	want := "rocket 'Falcon 9' is not part of mission 'Starlink-1'"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
