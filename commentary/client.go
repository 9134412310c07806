// File: commentary/client.go
package commentary

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"
)

// Mood tags the tone of a generated remark.
type Mood string

const (
	MoodExcited     Mood = "excited"
	MoodSarcastic   Mood = "sarcastic"
	MoodNeutral     Mood = "neutral"
	MoodEncouraging Mood = "encouraging"
)

// ParseMood validates a mood string from the wire.
func ParseMood(s string) (Mood, bool) {
	switch Mood(s) {
	case MoodExcited, MoodSarcastic, MoodNeutral, MoodEncouraging:
		return Mood(s), true
	}
	return "", false
}

// Remark is a short celebratory text plus its mood tag. Consumed by
// presentation only; never feeds back into gameplay.
type Remark struct {
	Text string `json:"text"`
	Mood Mood   `json:"mood"`
}

// FallbackRemark is the deterministic response used whenever the gateway is
// unavailable or misbehaves. Idempotent across repeated failures.
func FallbackRemark() Remark {
	return Remark{Text: "The commentators are speechless.", Mood: MoodNeutral}
}

// Gateway generates a remark for a scored point. Implementations must never
// return an error: any failure degrades to the fallback remark.
type Gateway interface {
	Remark(ctx context.Context, playerScore, cpuScore int, event string) Remark
}

// remarkRequest is the wire format sent to the commentary service.
type remarkRequest struct {
	PlayerScore int    `json:"playerScore"`
	CpuScore    int    `json:"cpuScore"`
	Event       string `json:"event"`
}

// remarkResponse is the wire format expected back.
type remarkResponse struct {
	Text string `json:"text"`
	Mood string `json:"mood"`
}

// Client calls an external commentary service over HTTP. A single
// best-effort attempt followed by the fallback is the complete policy: no
// retries, no error propagation.
type Client struct {
	url    string
	apiKey string
	http   *http.Client
}

// NewClient creates a gateway client for the given endpoint. An empty url
// yields a client that always answers with the fallback.
func NewClient(url, apiKey string, timeout time.Duration) *Client {
	return &Client{
		url:    url,
		apiKey: apiKey,
		http:   &http.Client{Timeout: timeout},
	}
}

// NewClientFromEnv reads COMMENTARY_URL and COMMENTARY_KEY. Missing
// credentials are not an error; the client degrades to the fallback.
func NewClientFromEnv(timeout time.Duration) *Client {
	return NewClient(os.Getenv("COMMENTARY_URL"), os.Getenv("COMMENTARY_KEY"), timeout)
}

// Remark implements Gateway.
func (c *Client) Remark(ctx context.Context, playerScore, cpuScore int, event string) Remark {
	if c.url == "" {
		return FallbackRemark()
	}

	payload, err := json.Marshal(remarkRequest{
		PlayerScore: playerScore,
		CpuScore:    cpuScore,
		Event:       event,
	})
	if err != nil {
		return FallbackRemark()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return FallbackRemark()
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return FallbackRemark()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return FallbackRemark()
	}

	var decoded remarkResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return FallbackRemark()
	}
	mood, ok := ParseMood(decoded.Mood)
	if !ok || decoded.Text == "" {
		return FallbackRemark()
	}

	return Remark{Text: decoded.Text, Mood: mood}
}
