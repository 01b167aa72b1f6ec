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
	"fmt"
	"maps"

	"k8s.io/apimachinery/pkg/util/rand"
)

// Item payload field names.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldQuantity    = "quantity"
)

// ItemPayloadBuilder builds item payloads for testing. Values are kept as
// generic JSON so any field can carry a value of the wrong type.
type ItemPayloadBuilder struct {
	payload map[string]interface{}
}

// NewItemPayload creates a builder seeded with the canonical valid payload,
// every field populated well within its limits.
func NewItemPayload() *ItemPayloadBuilder {
	return &ItemPayloadBuilder{
		payload: map[string]interface{}{
			FieldName:        "Test Item",
			FieldDescription: "A test item for automated testing",
			FieldPrice:       19.99,
			FieldQuantity:    50,
		},
	}
}

// NewMinimalItemPayload creates a builder with only the required fields.
func NewMinimalItemPayload() *ItemPayloadBuilder {
	return &ItemPayloadBuilder{
		payload: map[string]interface{}{
			FieldName:     "Minimal Item",
			FieldPrice:    1.00,
			FieldQuantity: 0,
		},
	}
}

// NewEmptyItemPayload creates a builder with no fields at all.
func NewEmptyItemPayload() *ItemPayloadBuilder {
	return &ItemPayloadBuilder{
		payload: map[string]interface{}{},
	}
}

// SampleItemPayloads returns a small batch of distinct valid payloads.
func SampleItemPayloads() []map[string]interface{} {
	return []map[string]interface{}{
		NewItemPayload().WithName("Sample Item 1").WithDescription("First sample item").WithPrice(10.00).WithQuantity(100).Build(),
		NewItemPayload().WithName("Sample Item 2").WithDescription("Second sample item").WithPrice(25.50).WithQuantity(200).Build(),
		NewItemPayload().WithName("Sample Item 3").WithDescription("Third sample item").WithPrice(99.99).WithQuantity(50).Build(),
	}
}

// WithName sets the item name.
func (b *ItemPayloadBuilder) WithName(name string) *ItemPayloadBuilder {
	b.payload[FieldName] = name
	return b
}

// WithUniqueName sets a name no other spec will use.
func (b *ItemPayloadBuilder) WithUniqueName(prefix string) *ItemPayloadBuilder {
	b.payload[FieldName] = GenerateTestName(prefix)
	return b
}

// WithDescription sets the item description.
func (b *ItemPayloadBuilder) WithDescription(desc string) *ItemPayloadBuilder {
	b.payload[FieldDescription] = desc
	return b
}

// WithNullDescription sends an explicit JSON null description.
func (b *ItemPayloadBuilder) WithNullDescription() *ItemPayloadBuilder {
	b.payload[FieldDescription] = nil
	return b
}

// WithPrice sets the item price.
func (b *ItemPayloadBuilder) WithPrice(price float64) *ItemPayloadBuilder {
	b.payload[FieldPrice] = price
	return b
}

// WithQuantity sets the item quantity.
func (b *ItemPayloadBuilder) WithQuantity(quantity int) *ItemPayloadBuilder {
	b.payload[FieldQuantity] = quantity
	return b
}

// WithField sets any field to any JSON value, including ones the service
// must reject.
func (b *ItemPayloadBuilder) WithField(field string, value interface{}) *ItemPayloadBuilder {
	b.payload[field] = value
	return b
}

// Without removes a field from the payload.
func (b *ItemPayloadBuilder) Without(field string) *ItemPayloadBuilder {
	delete(b.payload, field)
	return b
}

// Build returns a copy of the payload, further builder calls do not affect it.
func (b *ItemPayloadBuilder) Build() map[string]interface{} {
	return maps.Clone(b.payload)
}

// GenerateTestName returns prefix with a random suffix.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, rand.String(8))
}
