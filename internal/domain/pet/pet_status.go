package pet

import "fmt"

// Status represents the adoption state of a pet. The lifecycle is a two-state
// loop: DISPONIVEL <-> ADOTADO.
type Status string

const (
	StatusAvailable Status = "DISPONIVEL"
	StatusAdopted   Status = "ADOTADO"
)

// validTransitions defines the state machine for pet status transitions.
var validTransitions = map[Status][]Status{
	StatusAvailable: {StatusAdopted},
	StatusAdopted:   {StatusAvailable},
}

// IsValid returns true if the status is a recognized pet status.
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

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts a string to a Status, returning an error if invalid.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("status de pet inválido: %s", s)
	}
	return status, nil
}
