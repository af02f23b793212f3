package messages

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrEmptyMessage is returned when decoding a zero-length frame.
	ErrEmptyMessage = errors.New("empty message")
	// ErrMissingType is returned when a frame has no "t" field.
	ErrMissingType = errors.New("message has no type")
	// ErrUnknownType is returned for a "t" value this client does not handle.
	ErrUnknownType = errors.New("unknown message type")
)

// Encode serialises msg as a flat JSON object with its type under "t".
func Encode(msg Message) ([]byte, error) {
	if msg == nil {
		return nil, fmt.Errorf("encode: nil message")
	}
	tag, err := json.Marshal(msg.Type())
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", msg.Type(), err)
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", msg.Type(), err)
	}
	if len(body) < 2 || body[0] != '{' {
		return nil, fmt.Errorf("encode %s: payload is not an object", msg.Type())
	}

	out := make([]byte, 0, len(body)+len(tag)+6)
	out = append(out, `{"t":`...)
	out = append(out, tag...)
	if len(body) > 2 {
		out = append(out, ',')
	}
	out = append(out, body[1:]...)
	return out, nil
}

// Decode parses one frame into its concrete message type.
func Decode(data []byte) (Message, error) {
	if len(data) == 0 {
		return nil, ErrEmptyMessage
	}

	var head struct {
		T Type `json:"t"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	switch head.T {
	case "":
		return nil, ErrMissingType
	case TypeIdentity:
		return decodeAs[Identity](data)
	case TypeSnapshot:
		return decodeAs[Snapshot](data)
	case TypeKill:
		return decodeAs[Kill](data)
	case TypeEnd:
		return decodeAs[End](data)
	case TypeJoin:
		return decodeAs[Join](data)
	case TypeFull:
		return Full{}, nil
	case TypeMove:
		return decodeAs[Move](data)
	case TypeShoot:
		return decodeAs[Shoot](data)
	case TypeBuild:
		return decodeAs[Build](data)
	case TypeEdit:
		return decodeAs[Edit](data)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownType, head.T)
}

func decodeAs[T Message](data []byte) (Message, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", out.Type(), err)
	}
	return out, nil
}
