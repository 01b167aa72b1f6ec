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
	"strings"
)

// Field limits of the item payload.
const (
	NameMinLength        = 1
	NameMaxLength        = 100
	DescriptionMaxLength = 500
)

// FieldCase is one value for one payload field, named so that a failure
// identifies a single (field, kind) pair.
type FieldCase struct {
	Field string
	// Kind names what the value exercises, e.g. "int", "length-101", "zero".
	Kind  string
	Value interface{}
	// Omit removes the field instead of setting Value.
	Omit bool
	// Accepted is true when the service must create the item.
	Accepted bool
}

// String renders the case as "field=kind".
func (c FieldCase) String() string {
	return fmt.Sprintf("%s=%s", c.Field, c.Kind)
}

// Payload applies the case to a minimal valid payload whose other fields
// cannot cause a rejection.
func (c FieldCase) Payload() map[string]interface{} {
	builder := NewItemPayload().WithName("Item").WithPrice(10.00).WithQuantity(5).Without(FieldDescription)

	if c.Omit {
		return builder.Without(c.Field).Build()
	}

	return builder.WithField(c.Field, c.Value).Build()
}

// StringOfLength returns a string of exactly n runes.
func StringOfLength(char rune, n int) string {
	return strings.Repeat(string(char), n)
}

func lengthCase(field string, char rune, n int, accepted bool) FieldCase {
	return FieldCase{
		Field:    field,
		Kind:     fmt.Sprintf("length-%d", n),
		Value:    StringOfLength(char, n),
		Accepted: accepted,
	}
}

// NameLengthCases covers both length bounds of name.
func NameLengthCases() []FieldCase {
	return []FieldCase{
		lengthCase(FieldName, 'A', NameMinLength-1, false),
		lengthCase(FieldName, 'A', NameMinLength, true),
		lengthCase(FieldName, 'A', NameMaxLength, true),
		lengthCase(FieldName, 'A', NameMaxLength+1, false),
		lengthCase(FieldName, 'A', 2*NameMaxLength, false),
	}
}

// NameTypeCases are non-string values for name.
func NameTypeCases() []FieldCase {
	return []FieldCase{
		{Field: FieldName, Kind: "int", Value: 12345},
		{Field: FieldName, Kind: "bool", Value: true},
		{Field: FieldName, Kind: "null", Value: nil},
		{Field: FieldName, Kind: "float", Value: 123.45},
		{Field: FieldName, Kind: "array", Value: []interface{}{"Item1", "Item2"}},
		{Field: FieldName, Kind: "object", Value: map[string]interface{}{"first": "Item"}},
	}
}

// NameContentCases are names the service must store as given.
func NameContentCases() []FieldCase {
	return []FieldCase{
		{Field: FieldName, Kind: "special-characters", Value: "Item!@#$%^&*()", Accepted: true},
		{Field: FieldName, Kind: "unicode", Value: "Café élégant 日本語", Accepted: true},
		{Field: FieldName, Kind: "emoji", Value: "Cool Item 🎉🚀", Accepted: true},
		{Field: FieldName, Kind: "leading-spaces", Value: "  Leading Spaces", Accepted: true},
		{Field: FieldName, Kind: "trailing-spaces", Value: "Trailing Spaces  ", Accepted: true},
		{Field: FieldName, Kind: "only-spaces", Value: "   ", Accepted: true},
		{Field: FieldName, Kind: "newline", Value: "Line1\nLine2", Accepted: true},
		{Field: FieldName, Kind: "tab", Value: "Col1\tCol2", Accepted: true},
	}
}

// DescriptionCases covers optionality, length and type of description.
func DescriptionCases() []FieldCase {
	return []FieldCase{
		{Field: FieldDescription, Kind: "null", Value: nil, Accepted: true},
		{Field: FieldDescription, Kind: "omitted", Omit: true, Accepted: true},
		{Field: FieldDescription, Kind: "empty", Value: "", Accepted: true},
		lengthCase(FieldDescription, 'D', DescriptionMaxLength, true),
		lengthCase(FieldDescription, 'D', DescriptionMaxLength+1, false),
		{Field: FieldDescription, Kind: "special-characters", Value: `<script>alert("xss")</script> & "quotes" 'single'`, Accepted: true},
		{Field: FieldDescription, Kind: "int", Value: 12345},
	}
}

// PriceCases covers the exclusive lower bound and large or precise prices.
func PriceCases() []FieldCase {
	return []FieldCase{
		{Field: FieldPrice, Kind: "minimum", Value: 0.01, Accepted: true},
		{Field: FieldPrice, Kind: "zero", Value: 0},
		{Field: FieldPrice, Kind: "negative", Value: -10.00},
		{Field: FieldPrice, Kind: "very-large", Value: 999999999.99, Accepted: true},
		{Field: FieldPrice, Kind: "many-decimals", Value: 10.123456789, Accepted: true},
		{Field: FieldPrice, Kind: "int", Value: 100, Accepted: true},
	}
}

// PriceTypeCases are non-numeric values for price.
func PriceTypeCases() []FieldCase {
	return []FieldCase{
		{Field: FieldPrice, Kind: "string", Value: "10.00"},
		{Field: FieldPrice, Kind: "words", Value: "ten dollars"},
		{Field: FieldPrice, Kind: "null", Value: nil},
		{Field: FieldPrice, Kind: "bool", Value: true},
		{Field: FieldPrice, Kind: "array", Value: []interface{}{10.00}},
	}
}

// QuantityCases covers the inclusive lower bound and large quantities.
func QuantityCases() []FieldCase {
	return []FieldCase{
		{Field: FieldQuantity, Kind: "zero", Value: 0, Accepted: true},
		{Field: FieldQuantity, Kind: "negative", Value: -1},
		{Field: FieldQuantity, Kind: "very-large", Value: 999999999, Accepted: true},
	}
}

// QuantityTypeCases are non-integer values for quantity.
func QuantityTypeCases() []FieldCase {
	return []FieldCase{
		{Field: FieldQuantity, Kind: "float", Value: 5.5},
		{Field: FieldQuantity, Kind: "string", Value: "5"},
		{Field: FieldQuantity, Kind: "words", Value: "five"},
		{Field: FieldQuantity, Kind: "null", Value: nil},
		{Field: FieldQuantity, Kind: "bool", Value: true},
	}
}

// MissingFieldCases omit each required field in turn.
func MissingFieldCases() []FieldCase {
	fields := []string{FieldName, FieldPrice, FieldQuantity}
	cases := make([]FieldCase, 0, len(fields))

	for _, field := range fields {
		cases = append(cases, FieldCase{Field: field, Kind: "missing", Omit: true})
	}

	return cases
}

// Accepted filters cases by expected outcome.
func Accepted(cases []FieldCase, accepted bool) []FieldCase {
	var out []FieldCase

	for _, c := range cases {
		if c.Accepted == accepted {
			out = append(out, c)
		}
	}

	return out
}
