package service

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Clock lets tests pin "now"; day-boundary rules depend on local wall time.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

const (
	firstSlotHour = 9
	lastSlotHour  = 20
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	slotRe = regexp.MustCompile(`^(?:09|1\d|20):00$`)
)

// HourlySlots returns the selectable delivery slots, 09:00 through 20:00.
func HourlySlots() []string {
	slots := make([]string, 0, lastSlotHour-firstSlotHour+1)
	for h := firstSlotHour; h <= lastSlotHour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
	}
	return slots
}

// ParseDate parses a YYYY-MM-DD string as local midnight.
func ParseDate(dateStr string) (time.Time, bool) {
	if !dateRe.MatchString(dateStr) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsValidSlot reports whether the slot is an on-the-hour time between
// 09:00 and 20:00 inclusive.
func IsValidSlot(slot string) bool {
	return slotRe.MatchString(slot)
}

type ScheduleValidator struct {
	clock Clock
}

func NewScheduleValidator(clock Clock) *ScheduleValidator {
	if clock == nil {
		clock = SystemClock{}
	}
	return &ScheduleValidator{clock: clock}
}

func (v *ScheduleValidator) todayMidnight() time.Time {
	now := v.clock.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}

// IsTodayOrLater compares at local-midnight granularity, not elapsed hours.
func (v *ScheduleValidator) IsTodayOrLater(dateStr string) bool {
	selected, ok := ParseDate(dateStr)
	if !ok {
		return false
	}
	return !selected.Before(v.todayMidnight())
}

func (v *ScheduleValidator) IsAtLeastTomorrow(dateStr string) bool {
	selected, ok := ParseDate(dateStr)
	if !ok {
		return false
	}
	return !selected.Before(v.todayMidnight().AddDate(0, 0, 1))
}

// IsSlotValidForDate rejects past-hour slots when the date is today;
// future dates accept any listed slot.
func (v *ScheduleValidator) IsSlotValidForDate(dateStr, slot string) bool {
	if !IsValidSlot(slot) {
		return false
	}
	selected, ok := ParseDate(dateStr)
	if !ok {
		return false
	}

	hour, _ := strconv.Atoi(slot[:2])
	now := v.clock.Now()
	sameDay := selected.Year() == now.Year() &&
		selected.Month() == now.Month() &&
		selected.Day() == now.Day()

	if sameDay {
		return hour >= now.Hour()
	}
	return true
}

// Validate gates checkout. A hidden schedule is acceptable only for
// non-bulk orders; a shown schedule must be fully valid either way.
func (v *ScheduleValidator) Validate(showSchedule bool, dateStr, slot string, isBulk bool) error {
	if !showSchedule {
		if isBulk {
			return invalid("schedule", "orders with more than 12 of a single item require a scheduled delivery")
		}
		return nil
	}
	if !v.IsTodayOrLater(dateStr) {
		return invalid("scheduleDate", "scheduled date must be today or later")
	}
	if !v.IsSlotValidForDate(dateStr, slot) {
		return invalid("scheduleTime", "scheduled time must be an available hourly slot that is not in the past")
	}
	return nil
}

// ToInstant converts a local schedule date and slot into a UTC instant.
func (v *ScheduleValidator) ToInstant(dateStr, slot string) (time.Time, error) {
	selected, ok := ParseDate(dateStr)
	if !ok {
		return time.Time{}, invalid("scheduleDate", "invalid schedule date")
	}
	if !IsValidSlot(slot) {
		return time.Time{}, invalid("scheduleTime", "invalid schedule time")
	}
	hour, _ := strconv.Atoi(slot[:2])
	local := time.Date(selected.Year(), selected.Month(), selected.Day(), hour, 0, 0, 0, time.Local)
	return local.UTC(), nil
}
