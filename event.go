package hfsm

import "github.com/google/uuid"

// Event is handed to React. Data carries host-defined payload; ID is
// assigned automatically if left zero, so every event a React hook sees
// carries a correlation id. The engine does not pass ID to the Logger or
// into Structure reports.
type Event struct {
	Name string
	Data any
	ID   uuid.UUID
}

// NewEvent creates an Event with a fresh correlation id.
func NewEvent(name string, data any) Event {
	return Event{Name: name, Data: data, ID: uuid.New()}
}

func (e Event) withID() Event {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return e
}
