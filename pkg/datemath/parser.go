package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// maxRelativeAmount bounds "in N <unit>" expressions.
const maxRelativeAmount = 3650

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parser turns user supplied date strings into calendar dates.
// Relative expressions ("today", "in 3 days", "next friday") are resolved in
// the parser's timezone; the result is always the calendar date at UTC midnight.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// ParseDate accepts an ISO date (2024-03-01) or a relative expression and
// returns the calendar date it names. baseTime is the reference for relative input.
func (p *Parser) ParseDate(input string, baseTime time.Time) (time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	if t, err := time.Parse(DateLayout, input); err == nil {
		return t.UTC(), nil
	}

	switch input {
	case "today":
		return p.calendarDate(baseTime), nil
	case "tomorrow":
		return p.calendarDate(baseTime).AddDate(0, 0, 1), nil
	case "yesterday":
		return p.calendarDate(baseTime).AddDate(0, 0, -1), nil
	}

	if strings.HasPrefix(input, "in ") {
		return p.parseInDuration(input, baseTime)
	}
	if strings.HasPrefix(input, "next ") {
		return p.parseNextWeekday(input, baseTime)
	}

	return time.Time{}, fmt.Errorf("unrecognised date %q", input)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil || amount > maxRelativeAmount {
		return time.Time{}, fmt.Errorf("duration amount out of range: %q", matches[1])
	}
	unit := matches[2]
	today := p.calendarDate(baseTime)

	switch {
	case strings.HasPrefix(unit, "day"):
		return today.AddDate(0, 0, amount), nil
	case strings.HasPrefix(unit, "week"):
		return today.AddDate(0, 0, amount*7), nil
	case strings.HasPrefix(unit, "month"):
		return today.AddDate(0, amount, 0), nil
	}

	return time.Time{}, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday: %q", dayName)
	}

	local := baseTime.In(p.location)
	daysUntil := int(targetWeekday - local.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.calendarDate(baseTime).AddDate(0, 0, daysUntil), nil
}

// calendarDate reads the wall-clock date of t in the parser's timezone and
// returns it at UTC midnight.
func (p *Parser) calendarDate(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Truncate drops the clock part of t, keeping its own wall-clock date.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Format renders a calendar date with DateLayout.
func Format(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseISO parses a stored DateLayout value.
func ParseISO(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
