package auction

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// TimeSlot is a wall-clock start label ("HH:MM") with no date attached.
type TimeSlot struct {
	minutes int
}

func NewTimeSlot(hour, minute int) (TimeSlot, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{minutes: hour*60 + minute}, nil
}

func ParseTimeSlot(s string) (TimeSlot, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return NewTimeSlot(hour, minute)
}

func mustTimeSlot(s string) TimeSlot {
	ts, err := ParseTimeSlot(s)
	if err != nil {
		panic("auction: invalid time slot literal " + s)
	}
	return ts
}

// Add moves the label forward by d, wrapping around midnight. Sub-minute
// precision is dropped.
func (ts TimeSlot) Add(d time.Duration) TimeSlot {
	delta := int(d / time.Minute)
	m := (ts.minutes + delta) % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return TimeSlot{minutes: m}
}

func (ts TimeSlot) Hour() int   { return ts.minutes / 60 }
func (ts TimeSlot) Minute() int { return ts.minutes % 60 }

func (ts TimeSlot) String() string {
	return fmt.Sprintf("%02d:%02d", ts.Hour(), ts.Minute())
}
