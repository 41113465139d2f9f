package report

import (
	"encoding/json"
	"errors"
	"net/url"
	"time"
)

// Kind names a backend report.
type Kind string

const (
	KindRevenue  Kind = "revenue"
	KindBookings Kind = "bookings"
	KindStudios  Kind = "studios"
	KindOverview Kind = "dashboard"
)

// MaxRangeDays bounds one report query.
const MaxRangeDays = 366

const dateLayout = "2006-01-02"

var (
	ErrInvalidDate  = errors.New("dates must be YYYY-MM-DD")
	ErrInvalidRange = errors.New("from must not be after to")
	ErrRangeTooLong = errors.New("report range is longer than a year")
	ErrUnknownKind  = errors.New("unknown report")
)

// Range is an inclusive date range in the server location.
type Range struct {
	From time.Time
	To   time.Time
}

// Values renders the range as backend query parameters.
func (r Range) Values() url.Values {
	v := url.Values{}
	v.Set("startDate", r.From.Format(dateLayout))
	v.Set("endDate", r.To.Format(dateLayout))
	return v
}

// Days is the number of calendar days covered.
func (r Range) Days() int {
	const day = 24 * time.Hour
	return int(r.To.Sub(r.From).Round(day)/day) + 1
}

// ParseRange reads from/to (or startDate/endDate). Missing bounds default to
// the first day of the current month and today.
func ParseRange(q url.Values, now time.Time) (Range, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	r := Range{
		From: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
		To:   today,
	}

	if v := first(q, "from", "startDate"); v != "" {
		t, err := time.ParseInLocation(dateLayout, v, now.Location())
		if err != nil {
			return Range{}, ErrInvalidDate
		}
		r.From = t
	}
	if v := first(q, "to", "endDate"); v != "" {
		t, err := time.ParseInLocation(dateLayout, v, now.Location())
		if err != nil {
			return Range{}, ErrInvalidDate
		}
		r.To = t
	}

	if r.From.After(r.To) {
		return Range{}, ErrInvalidRange
	}
	if r.Days() > MaxRangeDays {
		return Range{}, ErrRangeTooLong
	}
	return r, nil
}

func first(q url.Values, keys ...string) string {
	for _, k := range keys {
		if v := q.Get(k); v != "" {
			return v
		}
	}
	return ""
}

// Report is a backend report body passed through untouched, with the range used.
type Report struct {
	Kind Kind            `json:"kind"`
	From string          `json:"from"`
	To   string          `json:"to"`
	Data json.RawMessage `json:"data"`
}
