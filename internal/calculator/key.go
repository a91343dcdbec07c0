package calculator

import (
	"errors"
	"fmt"

	"calc-engine/internal/expr"
)

// ErrUnknownKey is returned by ParseKey for labels outside the keypad.
var ErrUnknownKey = errors.New("unknown key")

// KeyKind tags the variant held by a Key.
type KeyKind int

const (
	KeyDigit KeyKind = iota + 1
	KeyPoint
	KeyOperator
	KeyEquals
	KeyClear
	KeyClearEntry
	KeyDelete
)

// Key is one validated keypad event. Char holds the digit or operator byte
// for KeyDigit and KeyOperator.
type Key struct {
	Kind KeyKind
	Char byte
}

// ParseKey converts a button label ("0".."9", ".", "+", "-", "*", "/", "%",
// "=", "C", "CE", "DEL") into a Key.
func ParseKey(label string) (Key, error) {
	switch label {
	case ".":
		return Key{Kind: KeyPoint}, nil
	case "=":
		return Key{Kind: KeyEquals}, nil
	case "C":
		return Key{Kind: KeyClear}, nil
	case "CE":
		return Key{Kind: KeyClearEntry}, nil
	case "DEL":
		return Key{Kind: KeyDelete}, nil
	}

	if len(label) == 1 {
		c := label[0]
		if c >= '0' && c <= '9' {
			return Key{Kind: KeyDigit, Char: c}, nil
		}
		if expr.IsOperator(c) {
			return Key{Kind: KeyOperator, Char: c}, nil
		}
	}
	return Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, label)
}

// ParseKeys converts every label, failing on the first unknown one.
func ParseKeys(labels []string) ([]Key, error) {
	keys := make([]Key, 0, len(labels))
	for _, l := range labels {
		k, err := ParseKey(l)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// String returns the button label.
func (k Key) String() string {
	switch k.Kind {
	case KeyDigit, KeyOperator:
		return string(k.Char)
	case KeyPoint:
		return "."
	case KeyEquals:
		return "="
	case KeyClear:
		return "C"
	case KeyClearEntry:
		return "CE"
	case KeyDelete:
		return "DEL"
	}
	return ""
}
