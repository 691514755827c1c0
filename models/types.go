package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringList is a jsonb-backed list of weak references (service or employee
// ids). Referenced records may no longer exist; lookups resolve misses at
// display time.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return errors.New("type assertion to []byte failed")
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, l)
}

// PriceMap holds per-booking price overrides keyed by service id.
type PriceMap map[string]float64

func (m PriceMap) Value() (driver.Value, error) {
	if m == nil {
		m = PriceMap{}
	}
	return json.Marshal(m)
}

func (m *PriceMap) Scan(value interface{}) error {
	if value == nil {
		*m = PriceMap{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return errors.New("type assertion to []byte failed")
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, m)
}
