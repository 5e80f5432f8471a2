package model

// Movie defines a movie record stored by the catalog.
type Movie struct {
	ID    int    `json:"Id"`
	Title string `json:"Title,omitempty"`
}

// EventType defines the kind of change a movie event describes.
type EventType string

const (
	EventTypeCreated = EventType("created")
	EventTypeUpdated = EventType("updated")
	EventTypeDeleted = EventType("deleted")
)

// MovieEvent defines a movie change event exchanged over Kafka.
type MovieEvent struct {
	Type      EventType `json:"type"`
	Movie     Movie     `json:"movie"`
	Timestamp int64     `json:"timestamp"`
}
