package dto

import "time"

type CourseOutput struct {
	ID          string
	Name        string
	Start       time.Time
	End         time.Time
	Classroom   string
	ProfessorID string
	Attendance  string
}

type ProfessorOutput struct {
	ID       string
	FullName string
}
