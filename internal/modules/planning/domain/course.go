package domain

import (
	"sort"
	"time"
)

// AttendanceState classifies one course occurrence from its raw flags.
type AttendanceState string

const (
	AttendancePresent   AttendanceState = "present"
	AttendanceAbsent    AttendanceState = "absent"
	AttendanceJustified AttendanceState = "justified"
	AttendanceUnmarked  AttendanceState = "unmarked"
)

// Course is one scheduled class occurrence. Start and End are absolute
// instants; End is after Start. The attendance flags come straight off the
// wire and are only interpreted through Attendance.
type Course struct {
	ID          string
	Name        string
	Start       time.Time
	End         time.Time
	Classroom   string
	ProfessorID string

	Presence  bool
	AbsenceID string
	// IsJustified and LegacyJustified are aliases from an API migration;
	// either one marks the absence as justified.
	IsJustified     bool
	LegacyJustified bool
}

// Attendance applies the classification priority: presence wins over
// everything, a justification flag beats a recorded absence, and a course
// with no flags at all is unmarked.
func (c Course) Attendance() AttendanceState {
	switch {
	case c.Presence:
		return AttendancePresent
	case c.IsJustified || c.LegacyJustified:
		return AttendanceJustified
	case c.AbsenceID != "":
		return AttendanceAbsent
	default:
		return AttendanceUnmarked
	}
}

type Professor struct {
	ID        string
	FirstName string
	LastName  string
}

func (p Professor) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// DistinctProfessorIDs collects the professor ids referenced by courses,
// sorted, without duplicates or empties.
func DistinctProfessorIDs(courses []Course) []string {
	seen := make(map[string]struct{})
	for _, c := range courses {
		if c.ProfessorID != "" {
			seen[c.ProfessorID] = struct{}{}
		}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
