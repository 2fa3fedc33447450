package amqp

import (
	"encoding/json"
	"time"
)

// Actions carried by a RecordChangeMessage.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// RecordChangeMessage announces one mutation to one record. Consumers that
// mirror the data elsewhere (summary export, backups) re-read the record
// sets themselves; the message carries only the coordinates of the change.
type RecordChangeMessage struct {
	Set       string    `json:"set"`
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// NewRecordChangeMessage creates a change message stamped with now.
func NewRecordChangeMessage(set, id, action string) *RecordChangeMessage {
	return &RecordChangeMessage{
		Set:       set,
		ID:        id,
		Action:    action,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *RecordChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// RecordChangeMessageFromJSON decodes a message from JSON bytes.
func RecordChangeMessageFromJSON(data []byte) (*RecordChangeMessage, error) {
	var msg RecordChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
