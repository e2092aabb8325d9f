package pricing

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/bits"
	"slices"
	"strconv"
	"strings"
)

// MaxQuantity bounds a single line of a selection.
const MaxQuantity = 1000

var ErrInvalidSelection = errors.New("invalid supplement selection")

// Selection maps a supplement id to the requested quantity.
type Selection map[uint]uint

func (s Selection) IDs() []uint {
	ids := make([]uint, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (s Selection) Validate() error {
	for _, id := range s.IDs() {
		if s[id] > MaxQuantity {
			return fmt.Errorf("%w: quantity %d for supplement %d exceeds %d", ErrInvalidSelection, s[id], id, MaxQuantity)
		}
	}
	return nil
}

// EncodeSelection renders the selection as a JSON object with decimal string keys, e.g. {"7":2}.
// Keys come out sorted, so equal selections always encode to the same text.
func EncodeSelection(s Selection) (string, error) {
	if s == nil {
		s = Selection{}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}
	return string(b), nil
}

// DecodeSelection accepts only what EncodeSelection can produce: canonical
// decimal keys, each at most once, and quantities within MaxQuantity.
func DecodeSelection(raw string) (Selection, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty encoding", ErrInvalidSelection)
	}
	if raw == "null" {
		return Selection{}, nil
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: not an object", ErrInvalidSelection)
	}

	s := Selection{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
		}
		key, _ := tok.(string)
		id, err := parseKey(key)
		if err != nil {
			return nil, err
		}
		if _, dup := s[id]; dup {
			return nil, fmt.Errorf("%w: duplicate supplement %d", ErrInvalidSelection, id)
		}

		var qty uint
		if err := dec.Decode(&qty); err != nil {
			return nil, fmt.Errorf("%w: supplement %d: %v", ErrInvalidSelection, id, err)
		}
		s[id] = qty
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data", ErrInvalidSelection)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func parseKey(key string) (uint, error) {
	id, err := strconv.ParseUint(key, 10, bits.UintSize)
	if err != nil || strconv.FormatUint(id, 10) != key {
		return 0, fmt.Errorf("%w: key %q is not a supplement id", ErrInvalidSelection, key)
	}
	return uint(id), nil
}
