package domain

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// FlexID is a numeric identifier that tolerates the backend's mixed
// serialization: JSON number, numeric string, null, or empty string.
// Zero means "absent"; real ids are positive.
type FlexID int64

func (f *FlexID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// Some endpoints serialize ids as floats ("12.0").
		fv, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return fmt.Errorf("domain: bad id %q: %w", s, err)
		}
		n = int64(fv)
	}
	*f = FlexID(n)
	return nil
}

func (f FlexID) MarshalJSON() ([]byte, error) {
	if f == 0 {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(int64(f), 10)), nil
}

func (f FlexID) Int64() int64 { return int64(f) }
func (f FlexID) Valid() bool  { return f > 0 }

// FlexBool tolerates true/false, 1/0, and "1"/"0"/"true"/"false".
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(b []byte) error {
	s := strings.ToLower(strings.Trim(strings.TrimSpace(string(b)), `"`))
	switch s {
	case "1", "true", "yes":
		*f = true
	case "", "0", "false", "no", "null":
		*f = false
	default:
		return fmt.Errorf("domain: bad bool %q", s)
	}
	return nil
}

func (f FlexBool) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("true"), nil
	}
	return []byte("false"), nil
}

func (f FlexBool) Bool() bool { return bool(f) }

// FlexString accepts strings and bare numbers (order numbers, zip codes and
// similar fields come back as either).
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		*f = ""
		return nil
	}
	if len(b) >= 2 && b[0] == '"' {
		*f = FlexString(strings.Trim(string(b), `"`))
		return nil
	}
	*f = FlexString(string(b))
	return nil
}

func (f FlexString) String() string { return string(f) }
