// Package serial turns catalog entities into plain nested maps ready for JSON.
//
// Every entity lists its public keys explicitly, so nothing internal leaks into
// the output. Relationship graphs may contain cycles (artwork -> image link ->
// artwork); the Encoder tracks the entities on the current path and emits a
// back-reference instead of expanding one a second time.
package serial

import "time"

type Dict map[string]any

type Serializable interface {
	// SerialKey identifies the entity across kinds, e.g. "artwork:42".
	SerialKey() string
	// Ref is the short form emitted for an entity already on the path.
	Ref() Dict
	ToDict(enc *Encoder) Dict
}

type Encoder struct {
	path map[string]struct{}
}

func NewEncoder() *Encoder {
	return &Encoder{path: make(map[string]struct{})}
}

// ToDict encodes v with a fresh Encoder.
func ToDict(v Serializable) Dict {
	return NewEncoder().Encode(v)
}

func (e *Encoder) Encode(v Serializable) Dict {
	key := v.SerialKey()
	if _, ok := e.path[key]; ok {
		return v.Ref()
	}
	e.path[key] = struct{}{}
	defer delete(e.path, key)

	return v.ToDict(e)
}

// Slice keeps input order and never returns nil, so empty relations encode as [].
func Slice[T Serializable](e *Encoder, items []T) []Dict {
	out := make([]Dict, 0, len(items))
	for _, item := range items {
		out = append(out, e.Encode(item))
	}
	return out
}

// Time renders t as RFC 3339, or nil when t was never set.
func Time(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.RFC3339Nano)
}

func Date(t *time.Time) any {
	if t == nil || t.IsZero() {
		return nil
	}
	return t.Format(time.DateOnly)
}

func String(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
