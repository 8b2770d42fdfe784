package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Layout accepted and emitted for appointment times. Values are naive
// wall-clock datetimes: no zone designator on the wire, none stored.
const LocalTimeLayout = "2006-01-02T15:04:05"

// LocalTime wraps time.Time so that JSON and the database both see the
// naive datetime form instead of RFC 3339 with a zone suffix.
type LocalTime struct {
	time.Time
}

func NewLocalTime(t time.Time) LocalTime {
	return LocalTime{Time: t}
}

func (lt LocalTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + lt.Format(LocalTimeLayout) + `"`), nil
}

func (lt *LocalTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}

	t, err := time.Parse(LocalTimeLayout, s)
	if err != nil {
		// tolerate a missing seconds component
		t, err = time.Parse("2006-01-02T15:04", s)
	}
	if err != nil {
		return fmt.Errorf("invalid datetime %q: expected %s", s, LocalTimeLayout)
	}

	lt.Time = t
	return nil
}

func (lt LocalTime) Value() (driver.Value, error) {
	return lt.Time, nil
}

func (lt *LocalTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		lt.Time = v
		return nil
	case nil:
		lt.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into LocalTime", src)
	}
}

func (LocalTime) GormDataType() string {
	return "timestamp"
}
