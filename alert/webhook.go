// Package alert posts threshold notifications to a configured webhook.
package alert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

var client = &http.Client{Timeout: 10 * time.Second}

type payload struct {
	Content string `json:"content"`
}

// Send posts msg as a JSON body to the webhook URL. A missing URL is a
// no-op so the daemon runs fine without notifications configured.
func Send(webhookURL, msg string) error {
	if webhookURL == "" {
		return nil
	}

	body, err := json.Marshal(payload{Content: msg})
	if err != nil {
		return err
	}

	resp, err := client.Post(webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("posting webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned %s", resp.Status)
	}
	return nil
}
