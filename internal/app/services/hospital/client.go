package hospital

import (
	"bytes"
	"context"
	"io"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// Client is the shared HTTP plumbing for every hospital resource client. The
// hospital backend is the sole authority over persistence, slot computation
// and conflict arbitration; this package only moves typed payloads in and out.
type Client struct {
	BaseUrl    string
	httpClient *http.Client
}

func NewClient(baseUrl string, requestTimeout time.Duration) *Client {
	return &Client{
		BaseUrl:    baseUrl,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path, token string, payload interface{}) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		requestJSON, err := json.Marshal(payload)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewBuffer(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseUrl+path, body)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+token)
	}
	return req, nil
}

// do sends the request and decodes a 2xx body into out (out may be nil).
// Non-2xx bodies are probed for an "error" or "message" field so the upstream
// text can be surfaced to the caller verbatim.
func (c *Client) do(req *http.Request, out interface{}, resource string) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		return c.rejectionError(resp, resource)
	}

	if out == nil {
		return nil
	}
	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return exceptions.ErrDecodeResponse(err, resource)
	}
	return nil
}

func (c *Client) rejectionError(resp *http.Response, resource string) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return exceptions.ErrHospitalRejected(resp.StatusCode, "", resource)
	}

	message := gjson.GetBytes(bodyBytes, "error").String()
	if message == "" {
		message = gjson.GetBytes(bodyBytes, "message").String()
	}
	return exceptions.ErrHospitalRejected(resp.StatusCode, message, resource)
}
