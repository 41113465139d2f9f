package studioapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/splus/splus-api/internal/pkg/logger"
)

const (
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 64 << 10
)

// Client sends requests to the S+ Studio REST backend.
type Client struct {
	baseURL  string
	ua       string
	http     *http.Client
	messages map[string]string
}

// Request describes one backend round trip.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	// Body is encoded as JSON unless Form is set.
	Body  any
	Form  *Form
	Token string
	// Module selects the default failure message.
	Module string
}

// Form is a multipart/form-data payload.
type Form struct {
	Fields map[string]string
	Files  []File
}

// File is one multipart file part.
type File struct {
	Field       string
	Name        string
	ContentType string
	Data        []byte
}

// NewClient creates a backend client. messages may be nil.
func NewClient(baseURL string, timeout time.Duration, ua string, messages map[string]string) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if messages == nil {
		messages = Messages("vi")
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		ua:       ua,
		messages: messages,
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// Message returns the default failure message for module.
func (c *Client) Message(module string) string {
	if msg, ok := c.messages[module]; ok {
		return msg
	}
	return c.messages["default"]
}

// Do performs req, unwraps the {success, data} envelope and decodes data into out.
// out may be nil when the payload is not needed.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	raw, err := c.send(ctx, req)
	if err != nil {
		return err
	}

	data, err := c.unwrap(raw, req.Module)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Kind: KindNetwork, Message: c.Message(req.Module), Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// Raw performs req and returns the undecoded 2xx body.
func (c *Client) Raw(ctx context.Context, req Request) ([]byte, error) {
	raw, err := c.send(ctx, req)
	if err != nil {
		return nil, err
	}
	if _, err := c.unwrap(raw, req.Module); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) send(ctx context.Context, req Request) ([]byte, error) {
	if c == nil || c.http == nil {
		return nil, &Error{Kind: KindNetwork, Message: "backend client is not initialized"}
	}
	if strings.TrimSpace(c.baseURL) == "" {
		return nil, &Error{Kind: KindNetwork, Message: "backend base url is empty"}
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	endpoint := c.baseURL + "/" + strings.TrimLeft(req.Path, "/")
	if len(req.Query) > 0 {
		endpoint += "?" + req.Query.Encode()
	}

	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, Validation(err.Error(), nil)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: c.Message(req.Module), Err: err}
	}

	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}
	if c.ua != "" {
		httpReq.Header.Set("User-Agent", c.ua)
	}
	if reqID := logger.RequestID(ctx); reqID != "" {
		httpReq.Header.Set("X-Request-ID", reqID)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		apiErr := classifyRequestError(ctx, err, c.Message("network"))
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("method", method).
			Str("path", req.Path).
			Bool("timeout", apiErr.Timeout).
			Msg("Backend request failed")
		return nil, apiErr
	}
	defer resp.Body.Close()

	logger.FromContext(ctx).Debug().
		Str("method", method).
		Str("path", req.Path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Backend request")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &Error{Kind: KindNetwork, Message: c.Message("network"), Err: err}
		}
		return raw, nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return nil, c.errorFromBody(resp.StatusCode, raw, req.Module)
}

func encodeBody(req Request) (io.Reader, string, error) {
	if req.Form != nil {
		buf := &bytes.Buffer{}
		mw := multipart.NewWriter(buf)
		for k, v := range req.Form.Fields {
			if err := mw.WriteField(k, v); err != nil {
				return nil, "", fmt.Errorf("write field %s: %w", k, err)
			}
		}
		for _, f := range req.Form.Files {
			h := make(textproto.MIMEHeader)
			h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, f.Field, f.Name))
			ct := f.ContentType
			if ct == "" {
				ct = "application/octet-stream"
			}
			h.Set("Content-Type", ct)
			part, err := mw.CreatePart(h)
			if err != nil {
				return nil, "", fmt.Errorf("create part %s: %w", f.Name, err)
			}
			if _, err := part.Write(f.Data); err != nil {
				return nil, "", fmt.Errorf("write part %s: %w", f.Name, err)
			}
		}
		if err := mw.Close(); err != nil {
			return nil, "", err
		}
		return buf, mw.FormDataContentType(), nil
	}

	if req.Body == nil {
		return nil, "", nil
	}
	payload, err := json.Marshal(req.Body)
	if err != nil {
		return nil, "", fmt.Errorf("encode request: %w", err)
	}
	return bytes.NewReader(payload), "application/json", nil
}

type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// unwrap strips the {success, data} envelope. Bodies without it are returned unchanged.
func (c *Client) unwrap(raw []byte, module string) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed, nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil || env.Success == nil {
		return trimmed, nil
	}
	if !*env.Success {
		return nil, c.errorFromBody(http.StatusOK, trimmed, module)
	}
	return env.Data, nil
}

type errorBody struct {
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Error   json.RawMessage `json:"error"`
	Details json.RawMessage `json:"details"`
}

type errorObject struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Details json.RawMessage `json:"details"`
}

func (c *Client) errorFromBody(status int, raw []byte, module string) *Error {
	apiErr := &Error{
		Kind:    kindForStatus(status),
		Status:  status,
		Message: c.Message(module),
	}
	if status == http.StatusOK {
		apiErr.Status = 0
		apiErr.Kind = KindBusinessRule
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return apiErr
	}

	apiErr.Code = body.Code
	apiErr.Details = decodeDetails(body.Details)

	if len(body.Error) > 0 {
		var s string
		var obj errorObject
		switch {
		case json.Unmarshal(body.Error, &s) == nil && s != "":
			if body.Message == "" {
				body.Message = s
			}
		case json.Unmarshal(body.Error, &obj) == nil:
			if obj.Code != "" {
				apiErr.Code = obj.Code
			}
			if obj.Message != "" {
				body.Message = obj.Message
			}
			if d := decodeDetails(obj.Details); d != nil {
				apiErr.Details = d
			}
		}
	}

	if strings.TrimSpace(body.Message) != "" {
		apiErr.Message = body.Message
	}
	return apiErr
}

func decodeDetails(raw json.RawMessage) map[string]string {
	if len(raw) == 0 {
		return nil
	}
	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil || len(generic) == 0 {
		return nil
	}
	out := make(map[string]string, len(generic))
	for k, v := range generic {
		out[k] = fmt.Sprint(v)
	}
	return out
}
