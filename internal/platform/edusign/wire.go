package edusign

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	apperrors "planview/internal/platform/errors"
)

type envelope struct {
	Status string          `json:"status"`
	Result json.RawMessage `json:"result"`
}

// flexibleID accepts a JSON string, number, or null; the API is not
// consistent about identifier types across endpoints.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexibleID(n.String())
	return nil
}

type accountWire struct {
	FirstName string `json:"FIRSTNAME"`
	LastName  string `json:"LASTNAME"`
	Email     string `json:"EMAIL"`
	Token     string `json:"TOKEN"`
}

type courseWire struct {
	ID            flexibleID `json:"ID"`
	Name          string     `json:"NAME"`
	Start         string     `json:"START"`
	End           string     `json:"END"`
	Classroom     string     `json:"CLASSROOM"`
	Professor     flexibleID `json:"PROFESSOR"`
	Presence      bool       `json:"STUDENT_PRESENCE"`
	AbsenceID     flexibleID `json:"STUDENT_ABSENCE_ID"`
	IsJustificate bool       `json:"STUDENT_IS_JUSTIFICATED"`
	Justified     bool       `json:"JUSTIFIED"`
}

func (w courseWire) toCourse() (Course, error) {
	start, err := parseInstant(w.Start)
	if err != nil {
		return Course{}, fmt.Errorf("%w: course %s start: %v", apperrors.ErrBadEnvelope, w.ID, err)
	}
	end, err := parseInstant(w.End)
	if err != nil {
		return Course{}, fmt.Errorf("%w: course %s end: %v", apperrors.ErrBadEnvelope, w.ID, err)
	}
	return Course{
		ID:              string(w.ID),
		Name:            w.Name,
		Start:           start,
		End:             end,
		Classroom:       w.Classroom,
		ProfessorID:     string(w.Professor),
		Presence:        w.Presence,
		AbsenceID:       string(w.AbsenceID),
		IsJustified:     w.IsJustificate,
		LegacyJustified: w.Justified,
	}, nil
}

type professorWire struct {
	ID         flexibleID `json:"ID"`
	FirstName  string     `json:"FIRSTNAME"`
	LastName   string     `json:"LASTNAME"`
	Tags       []string   `json:"TAGS"`
	TeamsIDs   []string   `json:"TEAMS_ID"`
	ZoomIDs    []string   `json:"ZOOM_ID"`
	LoginCodes []string   `json:"LOGIN_CODE"`
}

// parseInstant reads the API's timestamps: RFC 3339 with or without
// fractional seconds, or a unix epoch in milliseconds.
func parseInstant(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if millis, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.UnixMilli(millis), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}
