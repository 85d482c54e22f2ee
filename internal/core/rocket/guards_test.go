package rocket

import (
	"errors"
	"testing"
)

func TestCanBeAssigned(t *testing.T) {
	tests := []struct {
		name    string
		ctx     AssignContext
		wantErr string
	}{
		{
			name: "unassigned rocket can be assigned",
			ctx: AssignContext{
				RocketName:    "Falcon 9",
				TargetMission: "Starlink-1",
			},
		},
		{
			name: "re-assignment to the same mission is allowed",
			ctx: AssignContext{
				RocketName:      "Falcon 9",
				AssignedMission: "Starlink-1",
				TargetMission:   "Starlink-1",
			},
		},
		{
			name: "rocket on a different mission is rejected",
			ctx: AssignContext{
				RocketName:      "Falcon 9",
				AssignedMission: "Starlink-1",
				TargetMission:   "Crew-2",
			},
			wantErr: "rocket 'Falcon 9' is already assigned to mission 'Starlink-1'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanBeAssigned(tt.ctx)

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("CanBeAssigned() = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Fatal("CanBeAssigned() = nil, want error")
			}
			if err.Error() != tt.wantErr {
				t.Errorf("CanBeAssigned() error = %q, want %q", err.Error(), tt.wantErr)
			}

			var assignErr *AlreadyAssignedError
			if !errors.As(err, &assignErr) {
				t.Fatalf("CanBeAssigned() error type = %T, want *AlreadyAssignedError", err)
			}
			if assignErr.Mission != tt.ctx.AssignedMission {
				t.Errorf("AlreadyAssignedError.Mission = %q, want %q", assignErr.Mission, tt.ctx.AssignedMission)
			}
		})
	}
}

func TestCanCompleteRepair(t *testing.T) {
	tests := []struct {
		name    string
		current Status
		wantErr bool
	}{
		{name: "rocket under repair can complete", current: StatusInRepair, wantErr: false},
		{name: "rocket on ground cannot complete", current: StatusOnGround, wantErr: true},
		{name: "rocket in space cannot complete", current: StatusInSpace, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanCompleteRepair("Falcon 9", tt.current)

			if !tt.wantErr {
				if err != nil {
					t.Fatalf("CanCompleteRepair() = %v, want nil", err)
				}
				return
			}

			var statusErr *InvalidStatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("CanCompleteRepair() error type = %T, want *InvalidStatusError", err)
			}
			if statusErr.Current != tt.current {
				t.Errorf("InvalidStatusError.Current = %s, want %s", statusErr.Current, tt.current)
			}
			if statusErr.Required != StatusInRepair {
				t.Errorf("InvalidStatusError.Required = %s, want %s", statusErr.Required, StatusInRepair)
			}
		})
	}
}

func TestInvalidStatusErrorMessage(t *testing.T) {
	err := &InvalidStatusError{Rocket: "Falcon 9", Current: StatusOnGround, Required: StatusInRepair}
	want := "rocket 'Falcon 9' has status 'ON_GROUND', but 'IN_REPAIR' was expected"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
