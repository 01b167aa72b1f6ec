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

package api

import (
	"fmt"
	"net/url"
	"strconv"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Meta endpoints.
func (e *Endpoints) Root() string {
	return "/"
}

func (e *Endpoints) Health() string {
	return "/health"
}

func (e *Endpoints) Docs() string {
	return "/docs"
}

func (e *Endpoints) OpenAPISpec() string {
	return "/openapi.json"
}

// Item endpoints.
func (e *Endpoints) ListItems() string {
	return "/items"
}

func (e *Endpoints) CreateItem() string {
	return "/items"
}

// Item returns the single item path for a raw id token. The token is path
// escaped but otherwise sent as given, so malformed ids reach the service
// unchanged. An empty token yields the trailing slash form "/items/".
func (e *Endpoints) Item(id string) string {
	return fmt.Sprintf("/items/%s", url.PathEscape(id))
}

func (e *Endpoints) GetItem(id int64) string {
	return e.Item(ItemID(id))
}

func (e *Endpoints) UpdateItem(id int64) string {
	return e.Item(ItemID(id))
}

func (e *Endpoints) DeleteItem(id int64) string {
	return e.Item(ItemID(id))
}

// ItemID formats a numeric id as a path token.
func ItemID(id int64) string {
	return strconv.FormatInt(id, 10)
}
