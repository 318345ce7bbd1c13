package remote

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/phanxgames/touchinput"
)

// Message is the wire format for one pointer sample. A frame of samples is
// sent as a JSON array; a lone object is accepted too.
type Message struct {
	ID    int              `json:"id"`
	X     float64          `json:"x"`
	Y     float64          `json:"y"`
	Z     float64          `json:"z,omitempty"`
	DX    float64          `json:"dx,omitempty"`
	DY    float64          `json:"dy,omitempty"`
	DZ    float64          `json:"dz,omitempty"`
	DT    float64          `json:"dt,omitempty"`
	Phase touchinput.Phase `json:"phase"`
	Tap   int              `json:"tap,omitempty"`
}

// MessageOf converts a sample to its wire form.
func MessageOf(s touchinput.PointerSample) Message {
	return Message{
		ID:    s.ID,
		X:     s.Position.X,
		Y:     s.Position.Y,
		Z:     s.Position.Z,
		DX:    s.DeltaPosition.X,
		DY:    s.DeltaPosition.Y,
		DZ:    s.DeltaPosition.Z,
		DT:    s.DeltaTime,
		Phase: s.Phase,
		Tap:   s.TapCount,
	}
}

// Sample converts m back to a pointer sample.
func (m Message) Sample() touchinput.PointerSample {
	return touchinput.PointerSample{
		ID:            m.ID,
		Position:      touchinput.Vec3{X: m.X, Y: m.Y, Z: m.Z},
		DeltaPosition: touchinput.Vec3{X: m.DX, Y: m.DY, Z: m.DZ},
		DeltaTime:     m.DT,
		Phase:         m.Phase,
		TapCount:      m.Tap,
	}
}

// Encode marshals samples as a JSON array of messages.
func Encode(samples []touchinput.PointerSample) ([]byte, error) {
	msgs := make([]Message, len(samples))
	for i, s := range samples {
		msgs[i] = MessageOf(s)
	}
	data, err := json.Marshal(msgs)
	if err != nil {
		return nil, fmt.Errorf("encode samples: %w", err)
	}
	return data, nil
}

// Decode parses a JSON array of messages or a single message.
func Decode(data []byte) ([]Message, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("decode messages: empty payload")
	}
	if data[0] == '[' {
		var msgs []Message
		if err := json.Unmarshal(data, &msgs); err != nil {
			return nil, fmt.Errorf("decode messages: %w", err)
		}
		return msgs, nil
	}
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	return []Message{m}, nil
}
