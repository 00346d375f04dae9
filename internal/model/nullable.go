package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// The data service encodes missing values as empty strings. The nullable
// types below normalize those to an explicit absent state at decode time so
// downstream consumers never see a sentinel string.

var jsonNull = []byte("null")

// NullString is a string that may be absent.
type NullString struct {
	String string
	Valid  bool
}

// UnmarshalJSON treats JSON null and empty strings as absent.
func (n *NullString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*n = NullString{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*n = NullString{}
		return nil
	}
	*n = NullString{String: s, Valid: true}
	return nil
}

// MarshalJSON encodes absent values as null.
func (n NullString) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}
	return json.Marshal(n.String)
}

// NullFloat is a float64 that may be absent. The data service is
// inconsistent about numeric encoding, so quoted numbers are accepted too.
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// UnmarshalJSON treats JSON null, empty strings and unparsable values as absent.
func (n *NullFloat) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*n = NullFloat{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*n = NullFloat{}
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*n = NullFloat{}
			return nil
		}
		*n = NullFloat{Float64: v, Valid: true}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = NullFloat{Float64: v, Valid: true}
	return nil
}

// MarshalJSON encodes absent values as null.
func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}
	return json.Marshal(n.Float64)
}

// DateLayout is the canonical date format used across datasets.
const DateLayout = "2006-01-02"

// dateLayouts lists the formats accepted when parsing dataset dates.
var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// NullDate is a calendar date that may be absent. Unparsable dates degrade
// to the absent state rather than failing the whole decode.
type NullDate struct {
	Time  time.Time
	Valid bool
}

// ParseDate parses s using the accepted layouts. The boolean result reports
// whether parsing succeeded.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// UnmarshalJSON treats JSON null, empty strings and unparsable dates as absent.
func (n *NullDate) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*n = NullDate{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*n = NullDate{}
		return nil
	}
	t, ok := ParseDate(s)
	if !ok {
		*n = NullDate{}
		return nil
	}
	*n = NullDate{Time: t, Valid: true}
	return nil
}

// MarshalJSON encodes present dates in the canonical layout and absent
// values as null.
func (n NullDate) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}
	return json.Marshal(n.Time.Format(DateLayout))
}
