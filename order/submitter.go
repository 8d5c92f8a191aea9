package order

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Tuka1911/dymokminiapp/models"
)

// SubmissionError is a retry-eligible failure of the submit round trip.
// The cart and form are preserved when one occurs.
type SubmissionError struct {
	Msg string
}

func (e *SubmissionError) Error() string {
	return e.Msg
}

// Submitter is the abstract "submit to backend" call of the checkout. It
// may fail or time out; the ctx carries the submission deadline.
type Submitter interface {
	Submit(ctx context.Context, req models.OrderRequest) error
}

// LocalSubmitter accepts every order immediately. Used when no submission
// endpoint is configured: the order is only archived locally and the
// operator reconciles payment by hand.
type LocalSubmitter struct{}

func (LocalSubmitter) Submit(ctx context.Context, req models.OrderRequest) error {
	return nil
}

// HTTPSubmitter posts the order as JSON to the configured endpoint.
type HTTPSubmitter struct {
	endpoint string
	client   *http.Client
}

func NewHTTPSubmitter(endpoint string) *HTTPSubmitter {
	return &HTTPSubmitter{endpoint: endpoint, client: &http.Client{}}
}

func (s *HTTPSubmitter) Submit(ctx context.Context, req models.OrderRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return &SubmissionError{Msg: fmt.Sprintf("encode order: %v", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return &SubmissionError{Msg: fmt.Sprintf("build request: %v", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return &SubmissionError{Msg: fmt.Sprintf("submit order: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &SubmissionError{Msg: fmt.Sprintf("submit order: backend returned %d: %s", resp.StatusCode, detail)}
	}
	return nil
}
