package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Topics and event types emitted by the shelter service.
const (
	TopicShelterEvents = "shelter.events"

	PetAdopted  = "pet.adopted"
	PetReturned = "pet.returned"
)

// CloudEvent is the envelope for every event published to Kafka.
type CloudEvent struct {
	ID     string          `json:"id"`
	Source string          `json:"source"`
	Type   string          `json:"type"`
	Time   time.Time       `json:"time"`
	Data   json.RawMessage `json:"data"`
}

// NewCloudEvent builds an envelope around a serialized payload.
func NewCloudEvent(source, eventType string, data interface{}) (CloudEvent, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return CloudEvent{}, fmt.Errorf("failed to marshal event data: %w", err)
	}
	return CloudEvent{
		ID:     uuid.New().String(),
		Source: source,
		Type:   eventType,
		Time:   time.Now().UTC(),
		Data:   payload,
	}, nil
}

// ParseCloudEvent decodes an envelope from its wire form.
func ParseCloudEvent(raw []byte) (CloudEvent, error) {
	var ce CloudEvent
	if err := json.Unmarshal(raw, &ce); err != nil {
		return CloudEvent{}, fmt.Errorf("failed to parse cloud event: %w", err)
	}
	return ce, nil
}

// ParseData decodes the event payload into v.
func (ce CloudEvent) ParseData(v interface{}) error {
	return json.Unmarshal(ce.Data, v)
}

// PetAdoptedEvent is published after an adoption commits.
type PetAdoptedEvent struct {
	PetID      uuid.UUID `json:"pet_id"`
	TutorID    uuid.UUID `json:"tutor_id"`
	AdoptionID uuid.UUID `json:"adoption_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PetReturnedEvent is published after a return commits.
type PetReturnedEvent struct {
	PetID      uuid.UUID `json:"pet_id"`
	TutorID    uuid.UUID `json:"tutor_id"`
	AdoptionID uuid.UUID `json:"adoption_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
