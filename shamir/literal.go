package shamir

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// KeysLiteral is the metadata header of a share file: the number of dealt
// shares n and the threshold k.
type KeysLiteral struct {
	N int `json:"n"`
	K int `json:"k"`
}

// ShareLiteral is the unchecked literal form of a single share. Value holds
// the digit string of y and Base the radix it is written in.
//
// Base is typed as a string: share files in the wild carry it either as a
// JSON string or as a bare number, and an out-of-range base must not abort
// the whole file but only discard the share (see [NewShareSet]).
type ShareLiteral struct {
	Base  string `json:"base"`
	Value string `json:"value"`
}

// UnmarshalJSON accepts the base field both as a JSON string and as a JSON
// number, normalizing it to its string form.
func (s *ShareLiteral) UnmarshalJSON(data []byte) (err error) {

	var aux struct {
		Base  any    `json:"base"`
		Value string `json:"value"`
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err = dec.Decode(&aux); err != nil {
		return
	}

	s.Value = aux.Value

	switch base := aux.Base.(type) {
	case nil:
		s.Base = ""
	case string:
		s.Base = base
	case json.Number:
		s.Base = base.String()
	default:
		return fmt.Errorf("field base must be a string or a number, but is %T", base)
	}

	return
}

// ShareSetLiteral is the literal representation of a share file. The file is
// a single JSON object holding a "keys" header plus one entry per share,
// keyed by the decimal point x at which the secret polynomial was evaluated:
//
//	{
//	    "keys": {"n": 4, "k": 3},
//	    "1": {"base": "10", "value": "4"},
//	    "2": {"base": "2", "value": "111"}
//	}
//
// Share points being object keys, a file that repeats a point silently keeps
// the last occurrence, as is usual for JSON objects.
type ShareSetLiteral struct {
	Keys   KeysLiteral
	Shares map[uint64]ShareLiteral
}

// UnmarshalJSON splits the object into the "keys" header and the dynamically
// keyed share entries. A missing header or a key that is not a decimal
// integer makes the whole file invalid.
func (l *ShareSetLiteral) UnmarshalJSON(data []byte) (err error) {

	var raw map[string]json.RawMessage
	if err = json.Unmarshal(data, &raw); err != nil {
		return
	}

	keys, ok := raw["keys"]
	if !ok {
		return errors.New(`share file has no "keys" object`)
	}

	if err = json.Unmarshal(keys, &l.Keys); err != nil {
		return fmt.Errorf(`invalid "keys" object: %w`, err)
	}

	l.Shares = make(map[uint64]ShareLiteral, len(raw)-1)

	for key, msg := range raw {

		if key == "keys" {
			continue
		}

		x, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			return fmt.Errorf("share key %q is not a decimal integer: %w", key, err)
		}

		var sl ShareLiteral
		if err = json.Unmarshal(msg, &sl); err != nil {
			return fmt.Errorf("invalid share object at key %q: %w", key, err)
		}

		l.Shares[x] = sl
	}

	return
}

// MarshalJSON writes the literal back in the share file layout, with every
// base in its string form.
func (l ShareSetLiteral) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(l.Shares)+1)
	out["keys"] = l.Keys
	for x, sl := range l.Shares {
		out[strconv.FormatUint(x, 10)] = sl
	}
	return json.Marshal(out)
}
