package schoolapi

// Package schoolapi implements ports.Gateway against the remote
// school-management service over HTTP/JSON.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/edumax/schoolapp/internal/domain/auth"
	"github.com/edumax/schoolapp/internal/domain/school"
	"github.com/edumax/schoolapp/internal/ports"
)

// genericFailure is shown when the service reports an error without a
// human-readable message, or cannot be reached at all.
const genericFailure = "request to school service failed"

// TokenFunc supplies the current bearer token, or "" when no session is
// active. The client never reads session state directly.
type TokenFunc func() string

// Client talks to the school-management API. All operations funnel through
// a single do primitive so exactly one error-normalization path exists.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenFunc
}

var _ ports.Gateway = (*Client)(nil)

// NewClient creates an API client with connection pooling. token may be nil
// for a client that only performs login.
func NewClient(baseURL string, timeout time.Duration, token TokenFunc) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		token: token,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type loginResponse struct {
	Token string `json:"token"`
	Role  string `json:"perfil"`
}

// Login exchanges credentials for a token and role. A response that omits
// the role degrades to the student tier via auth.ParseRole.
func (c *Client) Login(ctx context.Context, email, password string) (ports.LoginResult, error) {
	if email == "" {
		return ports.LoginResult{}, &ports.ValidationError{Field: "email", Reason: "is required"}
	}
	if password == "" {
		return ports.LoginResult{}, &ports.ValidationError{Field: "password", Reason: "is required"}
	}

	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return ports.LoginResult{}, err
	}
	if resp.Token == "" {
		return ports.LoginResult{}, &ports.GatewayError{Message: genericFailure}
	}

	return ports.LoginResult{
		Token: resp.Token,
		Role:  domainauth.ParseRole(resp.Role),
	}, nil
}

// ReportFor fetches a student's report rows. An empty report is a valid
// result, not an error.
func (c *Client) ReportFor(ctx context.Context, studentID int) ([]school.ReportRow, error) {
	if studentID <= 0 {
		return nil, &ports.ValidationError{Field: "studentID", Reason: "must be a positive integer"}
	}

	var rows []school.ReportRow
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/boletim/%d", studentID), nil, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []school.ReportRow{}
	}
	return rows, nil
}

// CreateStudent registers a new student.
func (c *Client) CreateStudent(ctx context.Context, s school.Student) error {
	if err := requireField("nome", s.Name); err != nil {
		return err
	}
	if err := requireField("matricula", s.Registration); err != nil {
		return err
	}
	if err := requireField("curso", s.Course); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/alunos", s, nil)
}

// CreateProfessor registers a new professor.
func (c *Client) CreateProfessor(ctx context.Context, p school.Professor) error {
	if err := requireField("nome", p.Name); err != nil {
		return err
	}
	if err := requireField("email", p.Email); err != nil {
		return err
	}
	if err := requireField("titulacao", p.Title); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/professores", p, nil)
}

// CreateDiscipline registers a new discipline.
func (c *Client) CreateDiscipline(ctx context.Context, d school.Discipline) error {
	if err := requireField("nome", d.Name); err != nil {
		return err
	}
	if err := requireField("codigo", d.Code); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/disciplinas", d, nil)
}

// requireField rejects an empty required field before any I/O.
func requireField(name, value string) error {
	if value == "" {
		return &ports.ValidationError{Field: name, Reason: "is required"}
	}
	return nil
}

// errorBody is the error envelope the service uses for failures.
type errorBody struct {
	Message string `json:"message"`
}

// do executes one request and decodes the response into out (when non-nil).
// Any transport or remote-reported failure is normalized into *GatewayError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ports.GatewayError{Message: genericFailure}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		msg := genericFailure
		var eb errorBody
		if decodeErr := json.NewDecoder(resp.Body).Decode(&eb); decodeErr == nil && eb.Message != "" {
			msg = eb.Message
		}
		return &ports.GatewayError{Code: resp.StatusCode, Message: msg}
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if decodeErr := json.NewDecoder(resp.Body).Decode(out); decodeErr != nil {
			return &ports.GatewayError{Code: resp.StatusCode, Message: genericFailure}
		}
	}
	return nil
}
