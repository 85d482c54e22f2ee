package secondary

import "fmt"

// Entity kinds used in storage errors.
const (
	KindRocket  = "rocket"
	KindMission = "mission"
)

// NotFoundError reports a lookup for a name the store does not hold.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Kind, e.Name)
}

// AlreadyExistsError reports a create for a name the store already holds.
type AlreadyExistsError struct {
	Kind string
	Name string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s '%s' already exists", e.Kind, e.Name)
}
