package client

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// StreamEvent is one server-sent event
type StreamEvent struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Timestamp int64           `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// StreamHandler receives each event in order
type StreamHandler func(event StreamEvent) error

var errStreamClosed = errors.New("stream closed unexpectedly")

// Watch follows the server's event stream until ctx is cancelled,
// reconnecting with exponential backoff after every failure.
// An empty types list subscribes to everything.
func (c *APIClient) Watch(ctx context.Context, types []string, handle StreamHandler) error {
	backoff := streamInitialBackoff
	failures := 0

	for {
		err := c.stream(ctx, types, handle)
		if ctx.Err() != nil {
			return nil
		}

		failures++
		slog.Warn(LogMsgStreamFailed, "error", err, "backoff", backoff, "consecutive_failures", failures)

		select {
		case <-time.After(backoff):
			backoff = time.Duration(float64(backoff) * streamBackoffMultiplier)
			if backoff > streamMaxBackoff {
				backoff = streamMaxBackoff
			}
		case <-ctx.Done():
			return nil
		}
	}
}

func (c *APIClient) stream(ctx context.Context, types []string, handle StreamHandler) error {
	url := c.BaseURL + apiPrefix + "/events"
	if len(types) > 0 {
		url += "?types=" + strings.Join(types, ",")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")
	if c.APIKey != "" {
		req.Header.Set(APIKeyHeader, c.APIKey)
	}

	// The shared client's timeout would cut long-lived streams
	streamClient := &http.Client{Transport: c.Client.Transport}
	resp, err := streamClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	slog.Info(LogMsgStreamConnected, "url", url)
	return readEvents(ctx, resp.Body, handle)
}

func readEvents(ctx context.Context, body io.Reader, handle StreamHandler) error {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, streamBufferSize), streamBufferSize)

	var eventID, eventType, data string
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		line := scanner.Text()
		switch {
		case line == "":
			if data != "" {
				dispatch(eventID, eventType, data, handle)
			}
			eventID, eventType, data = "", "", ""
		case strings.HasPrefix(line, "id: "):
			eventID = strings.TrimPrefix(line, "id: ")
		case strings.HasPrefix(line, "event: "):
			eventType = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = strings.TrimPrefix(line, "data: ")
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading stream: %w", err)
	}
	return errStreamClosed
}

func dispatch(id, eventType, data string, handle StreamHandler) {
	if eventType == "keepalive" || eventType == "connected" {
		return
	}

	var event StreamEvent
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		slog.Warn(LogMsgStreamParseError, "error", err, "data", data)
		return
	}
	if eventType != "" {
		event.Type = eventType
	}
	if id != "" {
		event.ID = id
	}

	if err := handle(event); err != nil {
		slog.Error(LogMsgStreamHandlerFail, "event_type", event.Type, "error", err)
	}
}
