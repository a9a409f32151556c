package gameroom

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// ID is a document id or a reference to one. Exports write it as a plain
// string, a number or {"$oid": "..."}.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	v, err := decodeValue(b)
	if err != nil {
		return err
	}
	s, ok := numberText(v, "$oid", "$numberInt", "$numberLong")
	if !ok {
		return fmt.Errorf("unsupported id %s", b)
	}
	*id = ID(s)
	return nil
}

// Int is an integer that may arrive wrapped as {"$numberInt": "5"}.
type Int int64

func (n *Int) UnmarshalJSON(b []byte) error {
	v, err := decodeValue(b)
	if err != nil {
		return err
	}
	s, ok := numberText(v, "$numberInt", "$numberLong", "$numberDouble")
	if !ok {
		return fmt.Errorf("unsupported integer %s", b)
	}
	if s == "" {
		*n = 0
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		*n = Int(i)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parse integer %q: %w", s, err)
	}
	*n = Int(f)
	return nil
}

// Float is a decimal amount that may arrive wrapped as
// {"$numberDouble": "9.9"}. Anything that is not a number counts as zero.
type Float float64

func (f *Float) UnmarshalJSON(b []byte) error {
	v, err := decodeValue(b)
	if err != nil {
		return err
	}
	*f = 0
	s, ok := numberText(v, "$numberDouble", "$numberInt", "$numberLong", "$numberDecimal")
	if !ok || s == "" {
		return nil
	}
	if x, err := strconv.ParseFloat(s, 64); err == nil {
		*f = Float(x)
	}
	return nil
}

// Time is a UTC timestamp. Exports write it as epoch milliseconds, an ISO
// date or {"$date": ...} wrapping either, with the milliseconds possibly
// wrapped again as {"$numberLong": "..."}.
type Time struct {
	time.Time
}

func (t *Time) UnmarshalJSON(b []byte) error {
	v, err := decodeValue(b)
	if err != nil {
		return err
	}

	if m, ok := v.(map[string]any); ok {
		inner, found := m["$date"]
		if !found {
			return fmt.Errorf("unsupported date %s", b)
		}
		v = inner
		if wrapped, ok := v.(map[string]any); ok {
			s, ok := field(wrapped, "$numberLong")
			if !ok {
				return fmt.Errorf("unsupported date %s", b)
			}
			v = json.Number(s)
		}
	}

	switch v := v.(type) {
	case nil:
		t.Time = time.Time{}
	case json.Number:
		ms, err := v.Int64()
		if err != nil {
			f, ferr := v.Float64()
			if ferr != nil {
				return fmt.Errorf("parse date %s: %w", b, err)
			}
			ms = int64(f)
		}
		t.Time = time.UnixMilli(ms).UTC()
	case string:
		parsed, err := parseDate(v)
		if err != nil {
			return err
		}
		t.Time = parsed
	default:
		return fmt.Errorf("unsupported date %s", b)
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("parse date %q", s)
}

// decodeValue decodes b keeping numbers as json.Number.
func decodeValue(b []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// numberText returns the text of a scalar, or of the first wrapper key
// present when v is an object. null yields "".
func numberText(v any, keys ...string) (string, bool) {
	switch v := v.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case map[string]any:
		return field(v, keys...)
	default:
		return "", false
	}
}

func field(m map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		switch v := m[key].(type) {
		case string:
			return v, true
		case json.Number:
			return v.String(), true
		}
	}
	return "", false
}
