package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// INotifyService delivers best-effort notifications. Callers treat failures
// as log-only; nothing is retried or rolled back.
type INotifyService interface {
	Send(ctx context.Context, to, subject, text string) error
}

type notifyPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

type httpNotifyService struct {
	endpoint string
	client   *http.Client
}

func NewHTTPNotifyService(endpoint string, client *http.Client) INotifyService {
	return &httpNotifyService{
		endpoint: endpoint,
		client:   client,
	}
}

func (s *httpNotifyService) Send(ctx context.Context, to, subject, text string) error {
	if s.endpoint == "" {
		return fmt.Errorf("notify endpoint not configured")
	}

	body, err := json.Marshal(notifyPayload{To: to, Subject: subject, Text: text})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notify endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
