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

// Item is an item resource as returned by the service.
type Item struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// Message is the body of the root and health endpoints.
type Message struct {
	Message string `json:"message"`
}

// NotFoundError is the body of a 404 response.
type NotFoundError struct {
	Detail string `json:"detail"`
}

// ValidationError is the body of a 422 response.
type ValidationError struct {
	Detail []ValidationErrorDetail `json:"detail"`
}

// ValidationErrorDetail locates one rejected input. Loc mixes strings and
// integers, e.g. ["body", "name"] or ["path", "item_id"].
type ValidationErrorDetail struct {
	Loc  []interface{} `json:"loc"`
	Msg  string        `json:"msg"`
	Type string        `json:"type,omitempty"`
}

// Fields returns the last element of every error location, which for body
// errors is the offending field name.
func (e *ValidationError) Fields() []string {
	fields := make([]string, 0, len(e.Detail))

	for _, detail := range e.Detail {
		if len(detail.Loc) == 0 {
			continue
		}

		if field, ok := detail.Loc[len(detail.Loc)-1].(string); ok {
			fields = append(fields, field)
		}
	}

	return fields
}
