package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/studyplanhq/studyplan-cli/internal/constants"
	"github.com/studyplanhq/studyplan-cli/internal/logger"
	"github.com/studyplanhq/studyplan-cli/internal/models"
)

// StatusError is a non-2xx response from the planning service. Detail carries
// the service-provided message when the error body had one; it is empty when
// the body was absent or malformed.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("planning service returned status %d", e.StatusCode)
}

// Client is the boundary adapter for the remote planning service. It performs
// a single attempt per call; retry policy belongs to the caller.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the service at baseURL. A nil httpClient falls
// back to http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// GeneratePlan submits the normalized request and returns the decoded plan.
// Transport-level failures come back as the underlying error; service
// rejections come back as *StatusError.
func (c *Client) GeneratePlan(ctx context.Context, req models.PlanRequest) (*models.StudyPlanResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode plan request: %w", err)
	}

	url := c.baseURL + constants.GeneratePlanPath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	logger.Debug("Submitting plan request", "url", url, "subjects", len(req.Subjects))

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeStatusError(resp)
	}

	var plan models.StudyPlanResponse
	if err := json.NewDecoder(resp.Body).Decode(&plan); err != nil {
		return nil, fmt.Errorf("decode plan response: %w", err)
	}
	return &plan, nil
}

// decodeStatusError reads an error response body of the shape
// {"detail": "..."}. Anything else degrades to an empty detail.
func decodeStatusError(resp *http.Response) *StatusError {
	statusErr := &StatusError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return statusErr
	}
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		logger.Debug("Unparseable error body from service", "status", resp.StatusCode)
		return statusErr
	}
	statusErr.Detail = body.Detail
	return statusErr
}
