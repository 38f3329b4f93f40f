package form

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rnperera/portfolio-backend/internal/enquiry"
)

// Client submits enquiries to the delivery endpoint over HTTP.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a client for the given endpoint URL. A nil httpClient
// gets a default with a 15s timeout.
func NewClient(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{endpoint: endpoint, http: httpClient}
}

// Submit posts the payload as JSON. A returned error means no response was
// received at all; any HTTP response, success or failure, yields a Result.
func (c *Client) Submit(ctx context.Context, e enquiry.Enquiry) (*Result, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("form: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("form: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("form: submit enquiry: %w", err)
	}
	defer resp.Body.Close()

	res := &Result{
		StatusCode: resp.StatusCode,
		OK:         resp.StatusCode >= 200 && resp.StatusCode < 300,
	}

	// An unparsable body leaves ErrorText empty so the controller falls
	// back to its generic failure copy.
	var parsed struct {
		OK      bool   `json:"ok"`
		Emailed bool   `json:"emailed"`
		ID      string `json:"id"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err == nil {
		res.Emailed = parsed.Emailed
		res.ID = parsed.ID
		res.ErrorText = parsed.Error
	}

	return res, nil
}
