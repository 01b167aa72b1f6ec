/*
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

package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Response is a fully read HTTP response. The body is buffered so specs can
// decode it more than once.
type Response struct {
	Method     string
	Path       string
	StatusCode int
	Header     http.Header
	Body       []byte
	Duration   time.Duration

	// TraceParent is the W3C traceparent header the request was sent with.
	TraceParent string
	TraceID     string
}

// ContentType returns the Content-Type header.
func (r *Response) ContentType() string {
	return r.Header.Get("Content-Type")
}

// Text returns the body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}

// DecodeJSON unmarshals the body into v.
func (r *Response) DecodeJSON(v interface{}) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decoding %s %s response body %q: %w", r.Method, r.Path, r.Text(), err)
	}

	return nil
}

// Value decodes the body into generic JSON values.
func (r *Response) Value() (interface{}, error) {
	var value interface{}
	if err := r.DecodeJSON(&value); err != nil {
		return nil, err
	}

	return value, nil
}

// Object decodes the body as a JSON object.
func (r *Response) Object() (map[string]interface{}, error) {
	var object map[string]interface{}
	if err := r.DecodeJSON(&object); err != nil {
		return nil, err
	}

	return object, nil
}

// Array decodes the body as a JSON array.
func (r *Response) Array() ([]interface{}, error) {
	var array []interface{}
	if err := r.DecodeJSON(&array); err != nil {
		return nil, err
	}

	return array, nil
}

func (r *Response) Item() (*Item, error) {
	var item Item
	if err := r.DecodeJSON(&item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *Response) Items() ([]Item, error) {
	var items []Item
	if err := r.DecodeJSON(&items); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *Response) NotFoundError() (*NotFoundError, error) {
	var notFound NotFoundError
	if err := r.DecodeJSON(&notFound); err != nil {
		return nil, err
	}

	return &notFound, nil
}

func (r *Response) ValidationError() (*ValidationError, error) {
	var validation ValidationError
	if err := r.DecodeJSON(&validation); err != nil {
		return nil, err
	}

	return &validation, nil
}

// statusError builds the error typed calls return when r is not the status
// they expect.
func (r *Response) statusError(expected int) *StatusError {
	return &StatusError{
		Method:   r.Method,
		Path:     r.Path,
		Expected: expected,
		Actual:   r.StatusCode,
		Body:     r.Text(),
		TraceID:  r.TraceID,
	}
}
