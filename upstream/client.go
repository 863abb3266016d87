// Package upstream talks to the console's REST boundary. The boundary's
// schema is not defined here; responses come back as loosely-shaped records
// for the normalize package to reconcile.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"bitbucket.org/mmdatafocus/console_backend/config"
	"bitbucket.org/mmdatafocus/console_backend/normalize"
	"bitbucket.org/mmdatafocus/console_backend/utils"
)

var tracer = otel.Tracer("console-upstream")

type Client struct {
	baseURL    string
	authHeader string
	http       *http.Client
	limiter    *time.Ticker
}

func NewClient(cfg config.UpstreamConfig) *Client {
	c := &Client{
		baseURL:    cfg.BaseURL,
		authHeader: cfg.AuthHeader,
		http:       &http.Client{Timeout: cfg.RequestTimeout},
	}
	if cfg.RatePerMinute > 0 {
		c.limiter = time.NewTicker(time.Minute / time.Duration(cfg.RatePerMinute))
	}
	return c
}

// Close stops the rate limiter's ticker.
func (c *Client) Close() {
	if c.limiter != nil {
		c.limiter.Stop()
	}
}

// FilePart is one file in a multipart upload. Sibling metadata fields are
// appended as separate form parts, never folded into a JSON blob.
type FilePart struct {
	FieldName string
	FileName  string
	Content   []byte
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body io.Reader, contentType string) ([]byte, error) {
	if c.limiter != nil {
		select {
		case <-c.limiter.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	ctx, span := tracer.Start(ctx, "upstream."+method)
	defer span.End()
	span.SetAttributes(attribute.String("upstream.path", path))

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint = endpoint + "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token, ok := utils.GetTokenFromContext(ctx); ok && token != "" {
		req.Header.Set(c.authHeader, "Bearer "+token)
	}
	if correlationId, ok := utils.GetCorrelationIdFromContext(ctx); ok && correlationId != "" {
		req.Header.Set("X-Correlation-Id", correlationId)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Status: resp.StatusCode, Detail: extractDetail(respBody)}
	}
	return respBody, nil
}

// ListRecords fetches a collection endpoint. The response may be a bare
// array or a results-wrapped object; both decode the same way.
func (c *Client) ListRecords(ctx context.Context, resource string, params url.Values) ([]normalize.RawRecord, error) {
	body, err := c.do(ctx, http.MethodGet, "/"+resource, params, nil, "")
	if err != nil {
		return nil, err
	}
	return normalize.DecodeList(body), nil
}

// ListSubRecords fetches a nested sub-resource collection
// (/resource/{id}/sub-resource).
func (c *Client) ListSubRecords(ctx context.Context, resource, id, sub string) ([]normalize.RawRecord, error) {
	path := fmt.Sprintf("/%s/%s/%s", resource, url.PathEscape(id), sub)
	body, err := c.do(ctx, http.MethodGet, path, nil, nil, "")
	if err != nil {
		return nil, err
	}
	return normalize.DecodeList(body), nil
}

func (c *Client) GetRecord(ctx context.Context, resource, id string) (normalize.RawRecord, error) {
	path := fmt.Sprintf("/%s/%s", resource, url.PathEscape(id))
	body, err := c.do(ctx, http.MethodGet, path, nil, nil, "")
	if err != nil {
		return nil, err
	}
	return normalize.DecodeRecord(body), nil
}

func (c *Client) CreateRecord(ctx context.Context, resource string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPost, "/"+resource, nil, bytes.NewReader(body), "application/json")
	return err
}

func (c *Client) UpdateRecord(ctx context.Context, resource, id string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	path := fmt.Sprintf("/%s/%s", resource, url.PathEscape(id))
	_, err = c.do(ctx, http.MethodPut, path, nil, bytes.NewReader(body), "application/json")
	return err
}

// PatchRecord is the partial-update variant for endpoints that reject PUT.
func (c *Client) PatchRecord(ctx context.Context, resource, id string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	path := fmt.Sprintf("/%s/%s", resource, url.PathEscape(id))
	_, err = c.do(ctx, http.MethodPatch, path, nil, bytes.NewReader(body), "application/json")
	return err
}

func (c *Client) DeleteRecord(ctx context.Context, resource, id string) error {
	path := fmt.Sprintf("/%s/%s", resource, url.PathEscape(id))
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil, "")
	return err
}

// UploadMultipart posts files plus sibling metadata fields, each appended
// as its own form part.
func (c *Client) UploadMultipart(ctx context.Context, resource string, fields map[string]string, files []FilePart) (normalize.RawRecord, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, err
		}
	}
	for _, file := range files {
		part, err := writer.CreateFormFile(file.FieldName, file.FileName)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(file.Content); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodPost, "/"+resource, nil, &buf, writer.FormDataContentType())
	if err != nil {
		return nil, err
	}
	return normalize.DecodeRecord(body), nil
}
