package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/attendance-board-go/internal/config"
)

// maxBodyBytes caps how much of an upstream answer is read.
const maxBodyBytes = 4 << 20

// Client talks to the upstream attendance API
type Client struct {
	baseURL    string
	writeURL   string
	httpClient *http.Client
}

// NewClient creates a client for the configured upstream
func NewClient(cfg config.UpstreamConfig) *Client {
	writeURL := cfg.WriteURL
	if writeURL == "" {
		writeURL = cfg.BaseURL + "/attendance"
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		writeURL:   writeURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// APIError is a non-2xx answer from the upstream
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream API error [%d]: %s", e.StatusCode, e.Body)
}

// Reply is an upstream answer relayed as-is
type Reply struct {
	ContentType string
	Body        []byte
}

// IsJSON reports whether the upstream declared a JSON body
func (r Reply) IsJSON() bool {
	mediaType, _, err := mime.ParseMediaType(r.ContentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// ListEmployees fetches the employee list
func (c *Client) ListEmployees(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	if err := c.getJSON(ctx, c.baseURL+"/employees", &employees); err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// ListAttendance fetches one employee's records for an inclusive yyyy-MM-dd range
func (c *Client) ListAttendance(ctx context.Context, userID int64, from, to string) ([]Attendance, error) {
	q := url.Values{}
	q.Set("userId", strconv.FormatInt(userID, 10))
	q.Set("from", from)
	q.Set("to", to)

	var records []Attendance
	if err := c.getJSON(ctx, c.baseURL+"/attendance?"+q.Encode(), &records); err != nil {
		return nil, fmt.Errorf("failed to list attendance of employee %d: %w", userID, err)
	}
	return records, nil
}

// UpdateAttendance submits one record to the write URL, which is either the
// upstream itself or the attendance proxy in front of it
func (c *Client) UpdateAttendance(ctx context.Context, record Attendance) (Reply, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return Reply{}, fmt.Errorf("failed to encode attendance update: %w", err)
	}
	return c.put(ctx, c.writeURL, "application/json", body)
}

// Forward relays a raw write body to the upstream write endpoint unchanged
func (c *Client) Forward(ctx context.Context, contentType string, body []byte) (Reply, error) {
	if contentType == "" {
		contentType = "application/json"
	}
	return c.put(ctx, c.baseURL+"/attendance", contentType, body)
}

// AdjustVacationDays submits a leave-day delta for one employee
func (c *Client) AdjustVacationDays(ctx context.Context, userID int64, delta float64) error {
	body, err := json.Marshal(VacationDelta{Delta: delta})
	if err != nil {
		return fmt.Errorf("failed to encode vacation delta: %w", err)
	}
	endpoint := fmt.Sprintf("%s/employees/%d/vacation-days", c.baseURL, userID)
	if _, err := c.put(ctx, endpoint, "application/json", body); err != nil {
		return fmt.Errorf("failed to adjust vacation days of employee %d: %w", userID, err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	reply, err := c.do(req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(reply.Body, out); err != nil {
		return fmt.Errorf("failed to decode upstream response: %w", err)
	}
	return nil
}

func (c *Client) put(ctx context.Context, endpoint, contentType string, body []byte) (Reply, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return Reply{}, err
	}
	req.Header.Set("Content-Type", contentType)
	return c.do(req)
}

func (c *Client) do(req *http.Request) (Reply, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Reply{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Reply{}, fmt.Errorf("failed to read upstream response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Reply{}, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	return Reply{ContentType: resp.Header.Get("Content-Type"), Body: body}, nil
}
