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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"net/http"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spjmurray/go-util/pkg/set"
)

// ItemFactory creates items for a single spec and deletes them all when the
// spec exits, whether it passed or failed.
type ItemFactory struct {
	ctx      context.Context
	client   *APIClient
	registry *ItemRegistry
}

// NewItemFactory must be called from a setup node or spec body, it schedules
// its own cleanup with DeferCleanup.
func NewItemFactory(ctx context.Context, client *APIClient) *ItemFactory {
	factory := &ItemFactory{
		ctx:      ctx,
		client:   client,
		registry: NewItemRegistry(client),
	}

	// Schedule cleanup - this runs whether the test passes or fails so specs don't need to clean up manually
	DeferCleanup(factory.cleanup)

	return factory
}

func (f *ItemFactory) cleanup() {
	ids := f.registry.IDs()
	if len(ids) == 0 {
		return
	}

	GinkgoWriter.Printf("Cleaning up items: %v\n", ids)

	// A failed delete must never mask the spec result.
	if err := f.registry.Release(f.ctx); err != nil {
		GinkgoWriter.Printf("Warning: Failed to delete items: %v\n", err)
	}
}

// Create creates an item from the canonical payload, or from payload when
// given, and fails the spec if the service rejects it.
func (f *ItemFactory) Create(payload ...map[string]interface{}) *Item {
	GinkgoHelper()

	data := NewItemPayload().Build()
	if len(payload) > 0 {
		data = payload[0]
	}

	item, err := f.client.CreateItem(f.ctx, data)
	Expect(err).NotTo(HaveOccurred(), "creating test item")

	f.registry.Track(item.ID)

	GinkgoWriter.Printf("Created item with ID: %d\n", item.ID)

	return item
}

// CreateMany creates one item per payload.
func (f *ItemFactory) CreateMany(payloads []map[string]interface{}) []*Item {
	GinkgoHelper()

	items := make([]*Item, 0, len(payloads))

	for _, payload := range payloads {
		items = append(items, f.Create(payload))
	}

	return items
}

// Track schedules deletion of an item created outside the factory.
func (f *ItemFactory) Track(id int64) {
	f.registry.Track(id)
}

// TrackResponse schedules deletion of the item in a 201 response from a raw
// create call and returns it. Any other response is ignored and nil is
// returned.
func (f *ItemFactory) TrackResponse(resp *Response) *Item {
	GinkgoHelper()

	if resp == nil || resp.StatusCode != http.StatusCreated {
		return nil
	}

	item, err := resp.Item()
	Expect(err).NotTo(HaveOccurred(), "decoding created item")

	f.registry.Track(item.ID)

	return item
}

// Tracked returns the ids scheduled for deletion.
func (f *ItemFactory) Tracked() []int64 {
	return f.registry.IDs()
}

// ItemIDs extracts the ids of items.
func ItemIDs(items []Item) []int64 {
	ids := make([]int64, len(items))

	for i := range items {
		ids[i] = items[i].ID
	}

	return ids
}

// ItemNames extracts the names of items.
func ItemNames(items []Item) []string {
	names := make([]string, len(items))

	for i := range items {
		names[i] = items[i].Name
	}

	return names
}

// MissingItemIDs returns, sorted, the ids in want that are not in listed.
func MissingItemIDs(listed []Item, want ...int64) []int64 {
	present := set.New[int64](ItemIDs(listed)...)
	missing := set.New[int64](want...).Difference(present)

	var out []int64

	for id := range missing.All() {
		out = append(out, id)
	}

	slices.Sort(out)

	return out
}
