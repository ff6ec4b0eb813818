package enroll

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/strimtechdev/academy/registration"
)

// Client posts registrations directly to the external enrollment endpoint.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient builds a direct client for the given endpoint URL. The
// underlying http.Client carries no timeout: a submission rides the
// backend call's own resolution and is cancelled only through ctx.
func NewClient(url string) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{},
	}
}

// Submit sends the registration as a JSON POST. Any 2xx returns the body
// verbatim. A non-2xx is reported with the backend's {message} field when
// one parses, otherwise the generic rejection text. Transport and read
// failures surface as a generic server error with Status 0.
func (c *Client) Submit(ctx context.Context, reg registration.Registration) (json.RawMessage, error) {
	payload, err := json.Marshal(reg)
	if err != nil {
		return nil, &Error{Message: MsgTransport}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, &Error{Message: MsgTransport}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Message: MsgTransport}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Message: MsgTransport}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := MsgRejected
		var e struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &e) == nil && e.Message != "" {
			msg = e.Message
		}
		return nil, &Error{Status: resp.StatusCode, Message: msg}
	}

	// Some backends answer 2xx with an empty body; normalize so the
	// result always re-marshals.
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("null")
	}
	return json.RawMessage(body), nil
}
