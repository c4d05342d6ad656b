package edusign

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	apperrors "planview/internal/platform/errors"
)

type fixedIDs struct{}

func (fixedIDs) New() string { return "req-1" }

func newTestClient(server *httptest.Server) *Client {
	return NewClient(server.URL, "fr", zap.NewNop(), fixedIDs{})
}

func TestAuthenticateSendsCredentialsAndDecodesAccount(t *testing.T) {
	var body map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/student/account/getByCredentials" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_, _ = w.Write([]byte(`{"status":"success","result":{"FIRSTNAME":"Jean","LASTNAME":"Dupont","EMAIL":"jean@example.edu","TOKEN":"tok-123"}}`))
	}))
	defer server.Close()

	account, err := newTestClient(server).Authenticate(context.Background(), "jean@example.edu", "secret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if body["EMAIL"] != "jean@example.edu" || body["PASSWORD"] != "secret" || body["LANGUAGE"] != "fr" {
		t.Fatalf("unexpected payload %v", body)
	}
	if account.Token != "tok-123" || account.FirstName != "Jean" {
		t.Fatalf("unexpected account %+v", account)
	}
}

func TestAuthenticateRejectionMapsToInvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newTestClient(server).Authenticate(context.Background(), "jean@example.edu", "wrong")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateMissingTokenIsInvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","result":{"FIRSTNAME":"Jean"}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server).Authenticate(context.Background(), "jean@example.edu", "secret")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestCoursesQueryAndDecoding(t *testing.T) {
	var query map[string][]string
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"status":"success","result":[
			{"ID":42,"NAME":"Algebra","START":"2024-03-06T09:00:00.000Z","END":"2024-03-06T10:30:00.000Z","CLASSROOM":"B12","PROFESSOR":"p1","STUDENT_PRESENCE":true},
			{"ID":"c2","NAME":"Physics","START":"1709714400000","END":"1709719800000","STUDENT_ABSENCE_ID":7,"JUSTIFIED":true}
		]}`))
	}))
	defer server.Close()

	start := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 10, 23, 59, 59, 999_000_000, time.UTC)
	courses, err := newTestClient(server).Courses(context.Background(), "tok-123", start, end)
	if err != nil {
		t.Fatalf("courses: %v", err)
	}

	if auth != "Bearer tok-123" {
		t.Fatalf("unexpected authorization header %q", auth)
	}
	if got := query["start"]; len(got) != 1 || got[0] != "2024-03-04T00:00:00.000Z" {
		t.Fatalf("unexpected start query %v", got)
	}
	if got := query["end"]; len(got) != 1 || got[0] != "2024-03-10T23:59:59.999Z" {
		t.Fatalf("unexpected end query %v", got)
	}

	if len(courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(courses))
	}
	if courses[0].ID != "42" || !courses[0].Presence {
		t.Fatalf("numeric id or presence not decoded: %+v", courses[0])
	}
	if courses[1].AbsenceID != "7" || !courses[1].LegacyJustified {
		t.Fatalf("absence flags not decoded: %+v", courses[1])
	}
	wantStart := time.UnixMilli(1709714400000)
	if !courses[1].Start.Equal(wantStart) {
		t.Fatalf("epoch millis not decoded: %v", courses[1].Start)
	}
}

func TestExpiredTokenMapsToSessionExpired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := newTestClient(server).Courses(context.Background(), "stale", time.Now(), time.Now())
	if !errors.Is(err, apperrors.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
}

func TestServerErrorKeepsStatusCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestClient(server).Courses(context.Background(), "tok", time.Now(), time.Now())
	var httpErr *apperrors.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Status != http.StatusBadGateway {
		t.Fatalf("expected HTTPError 502, got %v", err)
	}
}

func TestEnvelopeFailureStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"error","result":null}`))
	}))
	defer server.Close()

	_, err := newTestClient(server).Courses(context.Background(), "tok", time.Now(), time.Now())
	if !errors.Is(err, apperrors.ErrBadEnvelope) {
		t.Fatalf("expected ErrBadEnvelope, got %v", err)
	}
}

func TestProfessorsEmptyIDsSkipsNetwork(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		calls++
	}))
	defer server.Close()

	got, err := newTestClient(server).Professors(context.Background(), "tok", nil)
	if err != nil {
		t.Fatalf("professors: %v", err)
	}
	if got != nil || calls != 0 {
		t.Fatalf("expected short-circuit, got %v after %d calls", got, calls)
	}
}

func TestProfessorsPostsIDs(t *testing.T) {
	var body map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/student/professors" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_, _ = w.Write([]byte(`{"status":"success","result":[{"ID":"p1","FIRSTNAME":"Ada","LASTNAME":"Lovelace"}]}`))
	}))
	defer server.Close()

	got, err := newTestClient(server).Professors(context.Background(), "tok", []string{"p1"})
	if err != nil {
		t.Fatalf("professors: %v", err)
	}
	if len(body["ids"]) != 1 || body["ids"][0] != "p1" {
		t.Fatalf("unexpected payload %v", body)
	}
	if len(got) != 1 || got[0].LastName != "Lovelace" {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestParseInstantVariants(t *testing.T) {
	rfc, err := parseInstant("2024-03-06T09:00:00Z")
	if err != nil {
		t.Fatalf("rfc3339: %v", err)
	}
	if rfc.Hour() != 9 {
		t.Fatalf("unexpected hour %d", rfc.Hour())
	}
	if _, err := parseInstant("not a time"); err == nil {
		t.Fatal("expected error for garbage timestamp")
	}
	if _, err := parseInstant(""); err == nil {
		t.Fatal("expected error for empty timestamp")
	}
}
