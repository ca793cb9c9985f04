package booking

import (
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDate   = errors.New("invalid date, required format: YYYY-MM-DD")
	ErrInvalidAmount = errors.New("amount must be a number of at least 0.25 hours")
	ErrInvalidID     = errors.New("invalid identifier")
)

// MinAmount is the smallest bookable increment, in hours.
const MinAmount = 0.25

const dateLayout = "2006-01-02"

// Date is a calendar date in canonical YYYY-MM-DD form. Both the ledger and
// the day membership index compare dates through this type, so the same-day
// decision cannot drift between the create and delete paths.
type Date struct {
	value string
}

func NewDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{value: t.Format(dateLayout)}, nil
}

// DateOfMillis truncates a millisecond epoch timestamp to its UTC calendar
// day. This is the single comparator source for "same day" decisions.
func DateOfMillis(ms int64) Date {
	t := time.UnixMilli(ms).UTC()
	return Date{value: t.Format(dateLayout)}
}

func (d Date) String() string {
	return d.value
}

func (d Date) IsZero() bool {
	return d.value == ""
}

func (d Date) Equal(other Date) bool {
	return d.value == other.value
}

// Amount is a booked quantity in hours.
type Amount struct {
	hours float64
}

func NewAmount(hours float64) (Amount, error) {
	if hours < MinAmount {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{hours: hours}, nil
}

// ParseAmount validates the raw request string. A value that does not parse
// is treated like zero, the same way the reference client submitted it.
func ParseAmount(s string) (Amount, error) {
	hours, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Amount{}, ErrInvalidAmount
	}
	return NewAmount(hours)
}

func (a Amount) Hours() float64 {
	return a.hours
}

// ParseID checks the identifier shape of externally supplied ids.
func ParseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrInvalidID
	}
	return id, nil
}
