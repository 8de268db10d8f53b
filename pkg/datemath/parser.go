package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parser resolves deadline strings, absolute ISO dates or relative
// phrases like "tomorrow", into absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone, e.g. "Europe/Berlin".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseDeadline resolves a deadline string. Absolute forms (RFC3339,
// "2006-01-02 15:04", "2006-01-02") are tried first; anything else goes
// through Parse as a relative phrase anchored at baseTime.
func (p *Parser) ParseDeadline(value string, baseTime time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty deadline")
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, value, p.location); err == nil {
			return t, nil
		}
	}

	return p.Parse(value, baseTime)
}

// Parse converts a relative phrase ("today", "tomorrow", "in 3 days",
// "next friday") to an absolute time. Unknown phrases resolve to the start
// of baseTime's day.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))
	base := baseTime.In(p.location)

	switch relative {
	case "today":
		return p.startOfDay(base), nil
	case "tomorrow":
		return p.startOfDay(base.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(base.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, base)
	}
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, base)
	}

	// Unknown phrasing degrades to today rather than failing the task.
	return p.startOfDay(base), nil
}

func (p *Parser) parseInDuration(relative string, base time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return base, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	switch {
	case strings.HasPrefix(matches[2], "day"):
		return p.startOfDay(base.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(matches[2], "week"):
		return p.startOfDay(base.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(base.AddDate(0, amount, 0)), nil
	}
}

func (p *Parser) parseNextWeekday(relative string, base time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	target, ok := weekdays[strings.TrimPrefix(relative, "next ")]
	if !ok {
		return base, fmt.Errorf("unknown weekday: %q", relative)
	}

	daysUntil := int(target - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.startOfDay(base.AddDate(0, 0, daysUntil)), nil
}

func (p *Parser) startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
