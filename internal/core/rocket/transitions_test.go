package rocket

import "testing"

func TestStatusAfterAssignment(t *testing.T) {
	tests := []struct {
		name    string
		current Status
		want    Status
	}{
		{name: "rocket on ground launches", current: StatusOnGround, want: StatusInSpace},
		{name: "rocket in space stays in space", current: StatusInSpace, want: StatusInSpace},
		{name: "repair is not interrupted", current: StatusInRepair, want: StatusInRepair},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusAfterAssignment(tt.current); got != tt.want {
				t.Errorf("StatusAfterAssignment(%s) = %s, want %s", tt.current, got, tt.want)
			}
		})
	}
}

func TestStatusAfterDetach(t *testing.T) {
	tests := []struct {
		name    string
		current Status
		want    Status
	}{
		{name: "rocket in space lands", current: StatusInSpace, want: StatusOnGround},
		{name: "rocket under repair stays under repair", current: StatusInRepair, want: StatusInRepair},
		{name: "rocket on ground stays on ground", current: StatusOnGround, want: StatusOnGround},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusAfterDetach(tt.current); got != tt.want {
				t.Errorf("StatusAfterDetach(%s) = %s, want %s", tt.current, got, tt.want)
			}
		})
	}
}

func TestStatusAfterRepair(t *testing.T) {
	if got := StatusAfterRepair(true); got != StatusInSpace {
		t.Errorf("StatusAfterRepair(assigned) = %s, want %s", got, StatusInSpace)
	}
	if got := StatusAfterRepair(false); got != StatusOnGround {
		t.Errorf("StatusAfterRepair(unassigned) = %s, want %s", got, StatusOnGround)
	}
}

func TestInitialStatus(t *testing.T) {
	if got := InitialStatus(); got != StatusOnGround {
		t.Errorf("InitialStatus() = %s, want %s", got, StatusOnGround)
	}
}
