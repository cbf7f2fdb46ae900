package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const (
	dateLayout      = "2006-01-02"
	timeOfDayLayout = "15:04:05"
)

// Date is a calendar day stored in a DATE column.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	year, month, day := t.Date()

	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, t.Location())}
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v)

		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

func (d *Date) parse(value string) error {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return fmt.Errorf("failed to parse date %q: %w", value, err)
	}

	d.Time = parsed

	return nil
}

// TimeOfDay is a wall clock value stored in a TIME column. Only hour, minute
// and second are meaningful.
type TimeOfDay struct {
	time.Time
}

func NewTimeOfDay(t time.Time) TimeOfDay {
	return TimeOfDay{Time: time.Date(0, time.January, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)}
}

func (t TimeOfDay) String() string {
	return t.Format(timeOfDayLayout)
}

// Value implements driver.Valuer.
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan implements sql.Scanner.
func (t *TimeOfDay) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*t = NewTimeOfDay(v)

		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}
}

func (t *TimeOfDay) parse(value string) error {
	parsed, err := time.Parse(timeOfDayLayout, value)
	if err != nil {
		parsed, err = time.Parse(timeOfDayLayout+".999999", value)
	}

	if err != nil {
		return fmt.Errorf("failed to parse time of day %q: %w", value, err)
	}

	*t = NewTimeOfDay(parsed)

	return nil
}
