package adoption

import "fmt"

// Status represents the state of an adoption record. ENCERRADA is terminal.
type Status string

const (
	StatusActive Status = "ATIVA"
	StatusClosed Status = "ENCERRADA"
)

// validTransitions defines the state machine for adoption record transitions.
var validTransitions = map[Status][]Status{
	StatusActive: {StatusClosed},
	StatusClosed: {},
}

// IsValid returns true if the status is a recognized adoption status.
func (s Status) IsValid() bool {
	_, exists := validTransitions[s]
	return exists
}

// CanTransitionTo returns true if a transition from this status to the target is allowed.
func (s Status) CanTransitionTo(target Status) bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible.
func (s Status) IsTerminal() bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return true
	}
	return len(allowed) == 0
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts a string to a Status, returning an error if invalid.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("status de adoção inválido: %s", s)
	}
	return status, nil
}
