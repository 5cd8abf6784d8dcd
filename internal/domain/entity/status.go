package entity

// Status is the lifecycle state of a reference entity. Inactive records keep
// existing media intact but cannot be newly referenced.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

func DefaultStatus() Status {
	return StatusActive
}

// Valid reports whether s is one of the known lifecycle states.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}
