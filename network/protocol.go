package network

import (
	"encoding/json"

	"github.com/lixenwraith/fieldtd/engine"
)

// ProtocolVersion is bumped on incompatible envelope changes
const ProtocolVersion = 1

// MessageType identifies the semantic meaning of a message
type MessageType string

const (
	MsgHello    MessageType = "hello"    // First message on every connection
	MsgSnapshot MessageType = "snapshot" // World state after a step
)

// Message is the JSON envelope written to subscribers
type Message struct {
	Ver      int              `json:"ver" jsonschema:"required,description=Protocol version"`
	Type     MessageType      `json:"type" jsonschema:"required,enum=hello,enum=snapshot"`
	Snapshot *engine.Snapshot `json:"snapshot,omitempty" jsonschema:"description=Present on snapshot messages"`
}

// Encode marshals a snapshot message
func Encode(snap engine.Snapshot) ([]byte, error) {
	return json.Marshal(Message{Ver: ProtocolVersion, Type: MsgSnapshot, Snapshot: &snap})
}

func helloMessage() ([]byte, error) {
	return json.Marshal(Message{Ver: ProtocolVersion, Type: MsgHello})
}
