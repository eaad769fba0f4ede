package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/validation"
)

// sheetsMirror talks to the Apps Script web app fronting the spreadsheet.
// The webhook takes form-encoded POSTs: plain fields append a row,
// action=delete removes one by email, action=updateStatus rewrites the
// Status column. It answers {"result":"success"|"error", ...} as JSON.
type sheetsMirror struct {
	webhookURL string
	httpClient *http.Client
}

func NewSheetsMirror(webhookURL string, timeout time.Duration) SheetsMirror {
	return &sheetsMirror{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// AppendRow mirrors a flat projection of a record. This is the one place
// cell values are sanitized against formula injection; the canonical
// record keeps the raw text.
func (m *sheetsMirror) AppendRow(ctx context.Context, fields map[string]string) error {
	form := url.Values{}
	for key, value := range fields {
		form.Set(key, validation.SanitizeCell(value).(string))
	}
	return m.post(ctx, "append", form)
}

func (m *sheetsMirror) Delete(ctx context.Context, email string) error {
	form := url.Values{}
	form.Set("action", "delete")
	form.Set("email", email)
	return m.post(ctx, "delete", form)
}

func (m *sheetsMirror) UpdateStatus(ctx context.Context, email, status string) error {
	form := url.Values{}
	form.Set("action", "updateStatus")
	form.Set("email", email)
	form.Set("status", status)
	return m.post(ctx, "updateStatus", form)
}

func (m *sheetsMirror) post(ctx context.Context, operation string, form url.Values) error {
	if m.webhookURL == "" {
		logger.Debug("Sheets mirror disabled, skipping", "operation", operation)
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.webhookURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build sheets request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	logger.ExternalServiceCall("sheets", operation)
	resp, err := m.httpClient.Do(req)
	logger.ExternalServiceResult("sheets", operation, err)
	if err != nil {
		return fmt.Errorf("sheets webhook call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("sheets webhook error: status %d", resp.StatusCode)
	}

	var out struct {
		Result  string `json:"result"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("failed to decode sheets response: %w", err)
	}
	if out.Result != "success" {
		return fmt.Errorf("sheets webhook rejected %s: %s", operation, out.Message)
	}
	return nil
}
