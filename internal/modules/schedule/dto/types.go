package dto

import "time"

// EventOutput is one placed session, geometry included. Top and Height are in
// minute units relative to the grid's top hour.
type EventOutput struct {
	ID         string
	Name       string
	Classroom  string
	Professor  string
	Attendance string
	Start      time.Time
	End        time.Time
	Top        float64
	Height     float64
}

type DayOutput struct {
	Date   time.Time
	Events []EventOutput
}

// NowOutput marks the current time inside the grid, present only when today
// falls within the displayed week and visible hours.
type NowOutput struct {
	Day      int
	Position float64
}

// WeekGridOutput is everything a renderer needs for one week.
type WeekGridOutput struct {
	WeekKey    string
	WeekNumber int
	MinHour    int
	MaxHour    int
	Days       [7]DayOutput
	Now        *NowOutput
}

// WeekInfoOutput describes one week of the academic year for the overview
// strip.
type WeekInfoOutput struct {
	Key        string
	Number     int
	Start      time.Time
	HasCourses bool
	Current    bool
}
