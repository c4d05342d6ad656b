package edusign

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	apperrors "planview/internal/platform/errors"
	"planview/internal/platform/id"
)

// Client is the low-level REST client for the student attendance API. It
// decodes the `{status, result}` envelope exactly once and translates every
// failure into the shared error taxonomy; callers never re-inspect status
// fields or HTTP codes.
type Client struct {
	baseURL  string
	language string
	http     *http.Client
	logger   *zap.Logger
	ids      id.Generator
}

func NewClient(baseURL, language string, logger *zap.Logger, ids id.Generator) *Client {
	return &Client{
		baseURL:  baseURL,
		language: language,
		http:     &http.Client{Timeout: 30 * time.Second},
		logger:   logger,
		ids:      ids,
	}
}

// Account is the identity returned by a successful login.
type Account struct {
	FirstName string
	LastName  string
	Email     string
	Token     string
}

// Course is one scheduled session with raw attendance flags.
type Course struct {
	ID              string
	Name            string
	Start           time.Time
	End             time.Time
	Classroom       string
	ProfessorID     string
	Presence        bool
	AbsenceID       string
	IsJustified     bool
	LegacyJustified bool
}

type Professor struct {
	ID         string
	FirstName  string
	LastName   string
	Tags       []string
	TeamsIDs   []string
	ZoomIDs    []string
	LoginCodes []string
}

// Authenticate exchanges credentials for a bearer token.
func (c *Client) Authenticate(ctx context.Context, email, password string) (Account, error) {
	payload := map[string]string{
		"EMAIL":    email,
		"PASSWORD": password,
		"LANGUAGE": c.language,
	}
	var result accountWire
	err := c.call(ctx, http.MethodPost, "/student/account/getByCredentials", "", payload, &result)
	if err != nil {
		// The login endpoint answers non-2xx for bad credentials.
		var httpErr *apperrors.HTTPError
		if errors.As(err, &httpErr) || apperrors.IsAuth(err) {
			return Account{}, apperrors.ErrInvalidCredentials
		}
		return Account{}, err
	}
	if result.Token == "" {
		return Account{}, fmt.Errorf("%w: no token in response", apperrors.ErrInvalidCredentials)
	}
	return Account{
		FirstName: result.FirstName,
		LastName:  result.LastName,
		Email:     result.Email,
		Token:     result.Token,
	}, nil
}

// Courses fetches the course sessions between start and end (inclusive).
func (c *Client) Courses(ctx context.Context, token string, start, end time.Time) ([]Course, error) {
	path := "/student/planning?" + url.Values{
		"start": {isoMillis(start)},
		"end":   {isoMillis(end)},
	}.Encode()
	var result []courseWire
	if err := c.call(ctx, http.MethodGet, path, token, nil, &result); err != nil {
		return nil, err
	}
	courses := make([]Course, 0, len(result))
	for _, w := range result {
		course, err := w.toCourse()
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, nil
}

// Professors resolves professor records by id. An empty id list short-circuits
// to an empty result without a network call.
func (c *Client) Professors(ctx context.Context, token string, ids []string) ([]Professor, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var result []professorWire
	err := c.call(ctx, http.MethodPost, "/student/professors", token, map[string][]string{"ids": ids}, &result)
	if err != nil {
		return nil, err
	}
	professors := make([]Professor, 0, len(result))
	for _, w := range result {
		professors = append(professors, Professor{
			ID:         string(w.ID),
			FirstName:  w.FirstName,
			LastName:   w.LastName,
			Tags:       w.Tags,
			TeamsIDs:   w.TeamsIDs,
			ZoomIDs:    w.ZoomIDs,
			LoginCodes: w.LoginCodes,
		})
	}
	return professors, nil
}

// call performs one request and decodes the response envelope into out.
func (c *Client) call(ctx context.Context, method, path, token string, body, out any) error {
	requestID := c.ids.New()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("api request failed",
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("api request",
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(started)))

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return apperrors.ErrSessionExpired
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &apperrors.HTTPError{Status: resp.StatusCode}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrBadEnvelope, err)
	}
	if env.Status != "success" {
		return fmt.Errorf("%w: status %q", apperrors.ErrBadEnvelope, env.Status)
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return fmt.Errorf("%w: unexpected result shape", apperrors.ErrBadEnvelope)
	}
	return nil
}

func isoMillis(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
