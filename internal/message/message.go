// Package message defines the wayclip IPC protocol.
//
// All messages are newline-delimited JSON, one message per line. Text
// payloads are base64-encoded so that arbitrary clipboard bytes are safe to
// embed in JSON strings.
package message

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

// Type identifies the kind of message.
type Type string

const (
	// Requests, sent by CLI tools to the serve daemon.
	TypeCopy   Type = "COPY"
	TypePaste  Type = "PASTE"
	TypeClear  Type = "CLEAR"
	TypeStatus Type = "STATUS"

	// Responses.
	TypeResult Type = "RESULT"
	TypeError  Type = "ERROR"
)

// StatusInfo describes the daemon's clipboard context.
type StatusInfo struct {
	Backend        string    `json:"backend"`
	PrimarySupport bool      `json:"primary_support"`
	StartedAt      time.Time `json:"started_at"`
	LastSource     string    `json:"last_source,omitempty"`
	LastCopyAt     time.Time `json:"last_copy_at,omitzero"`
}

// Message is the wire envelope for both requests and responses.
type Message struct {
	Type   Type   `json:"type"`
	Source string `json:"source,omitempty"`

	// COPY request and PASTE result: base64-encoded text.
	Payload string `json:"payload,omitempty"`

	// STATUS result.
	Status *StatusInfo `json:"status,omitempty"`

	// ERROR response.
	Error string `json:"error,omitempty"`
}

// NewCopy builds a COPY request carrying text.
func NewCopy(source, text string) *Message {
	return &Message{
		Type:    TypeCopy,
		Source:  source,
		Payload: base64.StdEncoding.EncodeToString([]byte(text)),
	}
}

// NewResult builds a RESULT response carrying text.
func NewResult(text string) *Message {
	return &Message{
		Type:    TypeResult,
		Payload: base64.StdEncoding.EncodeToString([]byte(text)),
	}
}

// NewError builds an ERROR response from err.
func NewError(err error) *Message {
	return &Message{Type: TypeError, Error: err.Error()}
}

// Text returns the decoded payload.
func (m *Message) Text() (string, error) {
	b, err := base64.StdEncoding.DecodeString(m.Payload)
	if err != nil {
		return "", fmt.Errorf("payload decode: %w", err)
	}
	return string(b), nil
}

// Encode serialises the message to JSON without a trailing newline.
func (m *Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// Decode deserialises a message from raw JSON bytes.
func Decode(b []byte) (*Message, error) {
	var m Message
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("message decode: %w", err)
	}
	return &m, nil
}
