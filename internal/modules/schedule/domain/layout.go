package domain

import (
	"sort"
	"time"
)

// Layout engine: a stateless transformation of (sessions, week window, now)
// into grid geometry. Vertical units are abstract minutes; one hour of grid
// is 60 units and renderers decide how many rows or pixels a unit maps to.

const (
	DefaultMinHour = 8
	DefaultMaxHour = 18
	MinutesPerHour = 60
)

// Session is the layout engine's view of a course occurrence. Attendance and
// professor are already resolved; the engine only reads the timestamps.
type Session struct {
	ID         string
	Name       string
	Classroom  string
	Professor  string
	Attendance string
	Start      time.Time
	End        time.Time
}

// HourBounds is the vertical extent of the grid, in whole hours, inclusive.
type HourBounds struct {
	Min int
	Max int
}

// BoundsFor derives the hour bounds from the week's sessions: the earliest
// start hour and latest end hour, padded by one hour each side and clamped
// to [0, 23]. An empty week keeps the default working-day bounds.
func BoundsFor(sessions []Session) HourBounds {
	if len(sessions) == 0 {
		return HourBounds{Min: DefaultMinHour, Max: DefaultMaxHour}
	}
	minHour, maxHour := 24, 0
	for _, s := range sessions {
		if h := s.Start.Hour(); h < minHour {
			minHour = h
		}
		if h := int(endHourFrac(s)); h > maxHour {
			maxHour = h
		}
	}
	minHour--
	if minHour < 0 {
		minHour = 0
	}
	maxHour++
	if maxHour > 23 {
		maxHour = 23
	}
	return HourBounds{Min: minHour, Max: maxHour}
}

// HourRange is the number of hour rows the grid spans.
func (b HourBounds) HourRange() int {
	return b.Max - b.Min + 1
}

// GridHeight is the total vertical extent in minute units.
func (b HourBounds) GridHeight() float64 {
	return float64(b.HourRange() * MinutesPerHour)
}

// Box is one session's vertical placement within a day column.
type Box struct {
	Top    float64
	Height float64
}

// BoxFor positions s relative to the bounds' top hour.
func (b HourBounds) BoxFor(s Session) Box {
	start := hourFrac(s.Start)
	end := endHourFrac(s)
	return Box{
		Top:    (start - float64(b.Min)) * MinutesPerHour,
		Height: (end - start) * MinutesPerHour,
	}
}

// DayBuckets partitions sessions into the window's seven day columns by the
// start timestamp's calendar date. A session is never split across buckets:
// one crossing midnight belongs entirely to its start day. Sessions outside
// the window are dropped; each bucket is ordered by start time.
func DayBuckets(sessions []Session, window WeekWindow) [7][]Session {
	var days [7][]Session
	for _, s := range sessions {
		for i := 0; i < 7; i++ {
			if SameDate(s.Start, window.Day(i)) {
				days[i] = append(days[i], s)
				break
			}
		}
	}
	for i := range days {
		sort.Slice(days[i], func(a, b int) bool {
			return days[i][a].Start.Before(days[i][b].Start)
		})
	}
	return days
}

// NowIndicator marks the current time within the displayed week.
type NowIndicator struct {
	Day      int
	Position float64
}

// NowIndicatorFor locates now within the window and bounds. The second
// return is false when today is outside the displayed week or the time falls
// outside the visible hour range.
func NowIndicatorFor(window WeekWindow, bounds HourBounds, now time.Time) (NowIndicator, bool) {
	day := -1
	for i := 0; i < 7; i++ {
		if SameDate(now, window.Day(i)) {
			day = i
			break
		}
	}
	if day < 0 {
		return NowIndicator{}, false
	}
	position := (hourFrac(now) - float64(bounds.Min)) * MinutesPerHour
	if position < 0 || position > bounds.GridHeight() {
		return NowIndicator{}, false
	}
	return NowIndicator{Day: day, Position: position}, true
}

// PlacedSession is a session with its computed geometry.
type PlacedSession struct {
	Session
	Box
}

// Grid is the complete renderable geometry for one week.
type Grid struct {
	Window WeekWindow
	Bounds HourBounds
	Days   [7][]PlacedSession
	Now    *NowIndicator
}

// BuildGrid runs the full layout: bucketing, hour bounds, per-session
// geometry, and the now indicator.
func BuildGrid(sessions []Session, window WeekWindow, now time.Time) Grid {
	buckets := DayBuckets(sessions, window)
	var visible []Session
	for _, day := range buckets {
		visible = append(visible, day...)
	}
	bounds := BoundsFor(visible)

	grid := Grid{Window: window, Bounds: bounds}
	for i, day := range buckets {
		placed := make([]PlacedSession, 0, len(day))
		for _, s := range day {
			placed = append(placed, PlacedSession{Session: s, Box: bounds.BoxFor(s)})
		}
		grid.Days[i] = placed
	}
	if indicator, ok := NowIndicatorFor(window, bounds, now); ok {
		grid.Now = &indicator
	}
	return grid
}

// WeeksWithSessions returns the set of week keys that contain at least one
// session, keyed by each session's start date.
func WeeksWithSessions(sessions []Session) map[string]struct{} {
	weeks := make(map[string]struct{})
	for _, s := range sessions {
		weeks[WeekKey(s.Start)] = struct{}{}
	}
	return weeks
}

func hourFrac(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60
}

// endHourFrac treats a session that runs past midnight as ending at 24:00 of
// its start day, matching the bucketing rule that ignores the end date.
func endHourFrac(s Session) float64 {
	if !SameDate(s.Start, s.End) {
		return 24
	}
	return hourFrac(s.End)
}
