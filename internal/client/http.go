// Package client talks to the directory API over HTTP/JSON.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-talent/internal/domain"
)

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient targets baseURL, e.g. "http://localhost:8080".
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// CreateEmployeeRequest mirrors the POST body. Age is a pointer so a missing
// age reaches the server as absent rather than zero.
type CreateEmployeeRequest struct {
	Name        string   `json:"name"`
	Age         *int     `json:"age,omitempty"`
	Affiliation string   `json:"affiliation"`
	Post        string   `json:"post"`
	Skills      []string `json:"skills"`
}

func (c *HTTPClient) ListEmployees(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error) {
	q := url.Values{}
	if filter.Name != "" {
		q.Set("name", filter.Name)
	}
	if filter.Affiliation != "" {
		q.Set("affiliation", filter.Affiliation)
	}
	if filter.Post != "" {
		q.Set("post", filter.Post)
	}
	if filter.Skill != "" {
		q.Set("skill", filter.Skill)
	}

	path := "/api/employees"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var list []domain.Employee
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.Employee{}
	}
	return list, nil
}

func (c *HTTPClient) GetEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	var emp domain.Employee
	if err := c.doJSON(ctx, http.MethodGet, "/api/employees/"+url.PathEscape(id), nil, &emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (c *HTTPClient) CreateEmployee(ctx context.Context, req *CreateEmployeeRequest) (*domain.Employee, error) {
	var emp domain.Employee
	if err := c.doJSON(ctx, http.MethodPost, "/api/employees", req, &emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (c *HTTPClient) FormOptions(ctx context.Context) (*domain.FormOptions, error) {
	var opts domain.FormOptions
	if err := c.doJSON(ctx, http.MethodGet, "/api/form-options", nil, &opts); err != nil {
		return nil, err
	}
	return &opts, nil
}

// APIError represents an error response from the server.
type APIError struct {
	StatusCode int
	Code       string
	Field      string
	Message    string
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("HTTP %d: %s (field %s)", e.StatusCode, e.Message, e.Field)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// doJSON performs an HTTP request with optional JSON body and decodes the JSON response.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
			Code  string `json:"code"`
			Field string `json:"field"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Code: errResp.Code, Field: errResp.Field, Message: errResp.Error}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
