package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// DefaultDoubletickURL is the Doubletick template-message endpoint.
const DefaultDoubletickURL = "https://public.doubletick.io/whatsapp/message/template"

// WhatsAppClient sends quotation documents through the Doubletick
// template-messaging API. Timeout-class failures are retried with
// exponential backoff up to MaxAttempts; authentication and validation
// failures are never retried.
type WhatsAppClient struct {
	APIURL       string
	APIKey       string
	SenderPhone  string
	TemplateName string
	MaxAttempts  int
	BackoffBase  time.Duration
	HTTPClient   *http.Client
}

// NewWhatsAppClient builds a client with sane transport defaults.
func NewWhatsAppClient(apiURL, apiKey, senderPhone, templateName string, maxAttempts int) *WhatsAppClient {
	if apiURL == "" {
		apiURL = DefaultDoubletickURL
	}
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	return &WhatsAppClient{
		APIURL:       apiURL,
		APIKey:       apiKey,
		SenderPhone:  senderPhone,
		TemplateName: templateName,
		MaxAttempts:  maxAttempts,
		BackoffBase:  500 * time.Millisecond,
		HTTPClient:   &http.Client{Timeout: 15 * time.Second},
	}
}

type waDocumentHeader struct {
	Type     string `json:"type"`
	MediaURL string `json:"mediaUrl"`
	Filename string `json:"filename"`
}

type waTemplateData struct {
	Header waDocumentHeader `json:"header"`
	Body   struct {
		Placeholders []string `json:"placeholders"`
	} `json:"body"`
}

type waContent struct {
	TemplateName string         `json:"templateName"`
	Language     string         `json:"language"`
	TemplateData waTemplateData `json:"templateData"`
}

type waMessage struct {
	To      string    `json:"to"`
	From    string    `json:"from"`
	Content waContent `json:"content"`
}

type waPayload struct {
	Messages []waMessage `json:"messages"`
}

// SendQuotationDocument delivers the PDF at pdfURL to a customer phone as
// a template message. The phone must resolve to exactly 10 digits; the
// country-code prefix is applied here.
func (c *WhatsAppClient) SendQuotationDocument(ctx context.Context, phone, pdfURL string) error {
	if c.APIKey == "" || c.SenderPhone == "" {
		return fmt.Errorf("whatsapp: API key or sender phone is not configured")
	}

	to, err := NormalizePhone(phone)
	if err != nil {
		return fmt.Errorf("whatsapp: %w", err)
	}

	filename := pdfURL
	if idx := strings.LastIndex(pdfURL, "/"); idx >= 0 {
		filename = pdfURL[idx+1:]
	}

	payload := waPayload{
		Messages: []waMessage{{
			To:   to,
			From: c.SenderPhone,
			Content: waContent{
				TemplateName: c.TemplateName,
				Language:     "en",
				TemplateData: waTemplateData{
					Header: waDocumentHeader{
						Type:     "DOCUMENT",
						MediaURL: pdfURL,
						Filename: filename,
					},
				},
			},
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("whatsapp: marshal payload: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= c.MaxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.APIURL, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("whatsapp: build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", c.APIKey)

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			// Transport or timeout failure: transient, eligible for retry.
			lastErr = fmt.Errorf("whatsapp: send attempt %d: %w", attempt, err)
		} else {
			respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()

			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				log.Printf("whatsapp: message sent to %s", to)
				return nil
			}

			lastErr = fmt.Errorf("whatsapp: API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
			if !retryableStatus(resp.StatusCode) {
				return lastErr
			}
		}

		if attempt == c.MaxAttempts {
			break
		}
		if err := sleepBackoff(ctx, c.BackoffBase, attempt); err != nil {
			return err
		}
	}

	return lastErr
}

// retryableStatus reports whether a response status is timeout-class.
// Auth and validation failures (other 4xx) fail immediately.
func retryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

// sleepBackoff waits base << (attempt-1), honoring context cancellation.
func sleepBackoff(ctx context.Context, base time.Duration, attempt int) error {
	if base <= 0 {
		base = 100 * time.Millisecond
	}
	timer := time.NewTimer(base << (attempt - 1))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
