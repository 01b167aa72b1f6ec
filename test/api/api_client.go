/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"
)

const contentTypeJSON = "application/json"

type APIClient struct {
	baseURL   string
	client    *http.Client
	transport *http.Transport
	config    *TestConfig
	endpoints *Endpoints
}

// NewAPIClient returns a client bound to config.BaseURL. One client is meant
// to serve a whole test process; call Close when the run ends.
func NewAPIClient(config *TestConfig) *APIClient {
	transport := http.DefaultTransport.(*http.Transport).Clone() //nolint:forcetypeassert // the default transport is always an *http.Transport

	return &APIClient{
		baseURL:   strings.TrimSuffix(config.BaseURL, "/"),
		transport: transport,
		client: &http.Client{
			Transport: transport,
			Timeout:   config.RequestTimeout,
			// Redirects are part of the observed behavior, never followed.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		config:    config,
		endpoints: NewEndpoints(),
	}
}

// BaseURL returns the address the client is bound to.
func (c *APIClient) BaseURL() string {
	return c.baseURL
}

// Close releases pooled connections.
func (c *APIClient) Close() {
	c.transport.CloseIdleConnections()
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logErrorWithStatus logs an error with HTTP status code.
func (c *APIClient) logErrorWithStatus(method, path string, duration time.Duration, statusCode int, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s status=%d traceparent=%s error=%v\n", method, path, context, duration, statusCode, traceParent, err)
	c.logTraceContext(traceParent)
}

// logUnexpectedStatus logs an unexpected HTTP status code.
func (c *APIClient) logUnexpectedStatus(resp *Response, expectedStatus int) {
	ginkgo.GinkgoWriter.Printf("[%s %s] UNEXPECTED STATUS expected=%d got=%d body=%s traceid=%s\n", resp.Method, resp.Path, expectedStatus, resp.StatusCode, resp.Text(), resp.TraceID)
	c.logTraceContext(resp.TraceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceParent string) {
	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID.
// A fresh trace ID per request lets a failing spec be matched to service logs.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	traceID := generateTraceID()
	spanID := generateSpanID()

	return fmt.Sprintf("00-%s-%s-01", traceID, spanID)
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// doRequest issues a single request and buffers the response. A nil body
// sends no body and no Content-Type. Any status is returned without error;
// only transport and read failures are errors.
func (c *APIClient) doRequest(ctx context.Context, method, path string, body []byte, contentType string) (*Response, error) {
	fullURL := c.baseURL + path

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")
	req.Header.Set("Accept", contentTypeJSON)

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, "http request failed")
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logErrorWithStatus(method, path, duration, resp.StatusCode, traceParent, err, "reading response body")
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(respBody))
	}

	return &Response{
		Method:      method,
		Path:        path,
		StatusCode:  resp.StatusCode,
		Header:      resp.Header,
		Body:        respBody,
		Duration:    duration,
		TraceParent: traceParent,
		TraceID:     extractTraceID(traceParent),
	}, nil
}

// doJSON marshals payload as the request body. A nil payload sends no body.
func (c *APIClient) doJSON(ctx context.Context, method, path string, payload interface{}) (*Response, error) {
	if payload == nil {
		return c.doRequest(ctx, method, path, nil, "")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	return c.doRequest(ctx, method, path, body, contentTypeJSON)
}

// expectStatus turns a response with the wrong status into a StatusError.
func (c *APIClient) expectStatus(resp *Response, expectedStatus int) error {
	if resp.StatusCode != expectedStatus {
		c.logUnexpectedStatus(resp, expectedStatus)
		return resp.statusError(expectedStatus)
	}

	return nil
}

// Get issues a GET and returns the response whatever its status.
func (c *APIClient) Get(ctx context.Context, path string) (*Response, error) {
	return c.doRequest(ctx, http.MethodGet, path, nil, "")
}

// Post issues a POST with a JSON encoded payload.
func (c *APIClient) Post(ctx context.Context, path string, payload interface{}) (*Response, error) {
	return c.doJSON(ctx, http.MethodPost, path, payload)
}

// Put issues a PUT with a JSON encoded payload.
func (c *APIClient) Put(ctx context.Context, path string, payload interface{}) (*Response, error) {
	return c.doJSON(ctx, http.MethodPut, path, payload)
}

// Patch issues a PATCH with a JSON encoded payload.
func (c *APIClient) Patch(ctx context.Context, path string, payload interface{}) (*Response, error) {
	return c.doJSON(ctx, http.MethodPatch, path, payload)
}

// Delete issues a DELETE without a body.
func (c *APIClient) Delete(ctx context.Context, path string) (*Response, error) {
	return c.doRequest(ctx, http.MethodDelete, path, nil, "")
}

// Send issues a request with a raw body and content type, for transport
// level malformations the JSON helpers cannot express.
func (c *APIClient) Send(ctx context.Context, method, path string, body []byte, contentType string) (*Response, error) {
	return c.doRequest(ctx, method, path, body, contentType)
}

func (c *APIClient) Root(ctx context.Context) (*Message, error) {
	return c.message(ctx, c.endpoints.Root())
}

func (c *APIClient) Health(ctx context.Context) (*Message, error) {
	return c.message(ctx, c.endpoints.Health())
}

func (c *APIClient) message(ctx context.Context, path string) (*Message, error) {
	resp, err := c.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", path, err)
	}

	if err := c.expectStatus(resp, http.StatusOK); err != nil {
		return nil, err
	}

	var message Message
	if err := resp.DecodeJSON(&message); err != nil {
		return nil, err
	}

	return &message, nil
}

// ListItems lists every item in the collection.
func (c *APIClient) ListItems(ctx context.Context) ([]Item, error) {
	resp, err := c.Get(ctx, c.endpoints.ListItems())
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}

	if err := c.expectStatus(resp, http.StatusOK); err != nil {
		return nil, err
	}

	return resp.Items()
}

// GetItem retrieves a single item.
func (c *APIClient) GetItem(ctx context.Context, id int64) (*Item, error) {
	resp, err := c.Get(ctx, c.endpoints.GetItem(id))
	if err != nil {
		return nil, fmt.Errorf("getting item %d: %w", id, err)
	}

	if err := c.expectStatus(resp, http.StatusOK); err != nil {
		return nil, err
	}

	return resp.Item()
}

// CreateItem creates an item and returns it as stored by the service.
func (c *APIClient) CreateItem(ctx context.Context, payload map[string]interface{}) (*Item, error) {
	resp, err := c.Post(ctx, c.endpoints.CreateItem(), payload)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	if err := c.expectStatus(resp, http.StatusCreated); err != nil {
		return nil, err
	}

	return resp.Item()
}

// UpdateItem replaces an item.
func (c *APIClient) UpdateItem(ctx context.Context, id int64, payload map[string]interface{}) (*Item, error) {
	resp, err := c.Put(ctx, c.endpoints.UpdateItem(id), payload)
	if err != nil {
		return nil, fmt.Errorf("updating item %d: %w", id, err)
	}

	if err := c.expectStatus(resp, http.StatusOK); err != nil {
		return nil, err
	}

	return resp.Item()
}

// DeleteItem deletes an item.
func (c *APIClient) DeleteItem(ctx context.Context, id int64) error {
	resp, err := c.Delete(ctx, c.endpoints.DeleteItem(id))
	if err != nil {
		return fmt.Errorf("deleting item %d: %w", id, err)
	}

	return c.expectStatus(resp, http.StatusNoContent)
}
