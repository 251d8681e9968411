package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages a session stream carries
type MessageType string

const (
	MessageTypeMove         MessageType = "move"
	MessageTypeUndo         MessageType = "undo"
	MessageTypeSessionState MessageType = "sessionState"
	MessageTypeClosed       MessageType = "closed"
	MessageTypeError        MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// MovePayload is the body of a move message. Move is UCI text such as "e7e8q".
type MovePayload struct {
	Move string `json:"move"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

// NewMessage marshals payload into a message of the given type.
func NewMessage(t MessageType, payload interface{}) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}
