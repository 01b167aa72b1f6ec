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
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

// Component schemas of the items contract.
const (
	SchemaItemWrite       = "ItemWrite"
	SchemaItem            = "Item"
	SchemaItemList        = "ItemList"
	SchemaMessage         = "Message"
	SchemaNotFoundError   = "NotFoundError"
	SchemaValidationError = "ValidationError"
)

var ErrSchemaNotFound = errors.New("schema not found")

//go:embed contract.yaml
var contractDocument []byte

//nolint:gochecknoglobals
var loadContract = sync.OnceValues(func() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(contractDocument)
	if err != nil {
		return nil, fmt.Errorf("loading items contract: %w", err)
	}

	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validating items contract: %w", err)
	}

	return doc, nil
})

// Contract returns the parsed items contract. It is loaded once per process.
func Contract() (*openapi3.T, error) {
	return loadContract()
}

// ContractSchema looks up a component schema by name.
func ContractSchema(name string) (*openapi3.Schema, error) {
	doc, err := loadContract()
	if err != nil {
		return nil, err
	}

	ref, ok := doc.Components.Schemas[name]
	if !ok || ref.Value == nil {
		return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, name)
	}

	return ref.Value, nil
}

// ValidateJSON checks a value against a named schema. The value may be raw
// JSON, a *Response, or anything encoding/json can marshal.
func ValidateJSON(name string, value interface{}) error {
	schema, err := ContractSchema(name)
	if err != nil {
		return err
	}

	generic, err := toJSONValue(value)
	if err != nil {
		return err
	}

	return schema.VisitJSON(generic)
}

// toJSONValue converts value into the generic form encoding/json decodes
// into, which is what schema validation operates on.
func toJSONValue(value interface{}) (interface{}, error) {
	var data []byte

	switch t := value.(type) {
	case *Response:
		if t == nil {
			return nil, ErrNilResponse
		}

		return t.Value()
	case []byte:
		data = t
	case json.RawMessage:
		data = t
	default:
		marshaled, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("marshaling value for validation: %w", err)
		}

		data = marshaled
	}

	var generic interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("decoding value for validation: %w", err)
	}

	return generic, nil
}
