package domain

import "time"

// EventType names a committed transition reported to the notification dispatcher.
type EventType string

const (
	EventExpressionSubmitted EventType = "expression_submitted"
	EventExpressionDecided   EventType = "expression_decided"
	EventOrderCreated        EventType = "order_created"
	EventReceptionRecorded   EventType = "reception_recorded"
)

// DomainEvent is published after the transaction that produced it has committed.
type DomainEvent struct {
	Type       EventType         `json:"type"`
	EntityID   string            `json:"entityID"`
	ActorID    string            `json:"actorID"`
	OccurredAt time.Time         `json:"occurredAt"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// NewDomainEvent builds an event with optional key/value attribute pairs.
func NewDomainEvent(t EventType, entityID, actorID string, at time.Time, kv ...string) DomainEvent {
	ev := DomainEvent{Type: t, EntityID: entityID, ActorID: actorID, OccurredAt: at}
	if len(kv) > 1 {
		ev.Attributes = make(map[string]string, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			ev.Attributes[kv[i]] = kv[i+1]
		}
	}
	return ev
}
