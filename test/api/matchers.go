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
	"net/http"
	"slices"
	"strings"

	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/gcustom"
	"github.com/onsi/gomega/types"
)

const responseTemplate = "{{.Actual.Method}} {{.Actual.Path}} returned {{.Actual.StatusCode}}\nbody: {{.Actual.Text}}\ntrace ID: {{.Actual.TraceID}}"

// HaveStatus succeeds when a *Response carries any of codes. Passing more
// than one code expresses an outcome the service may legitimately choose
// between.
func HaveStatus(codes ...int) types.GomegaMatcher {
	return gcustom.MakeMatcher(func(resp *Response) (bool, error) {
		if resp == nil {
			return false, ErrNilResponse
		}

		return slices.Contains(codes, resp.StatusCode), nil
	}).WithTemplate("Expected response {{.To}} have status in {{.Data}}\n"+responseTemplate, codes)
}

// HaveContentType succeeds when the Content-Type of a *Response contains
// mediaType, parameters such as charset are ignored.
func HaveContentType(mediaType string) types.GomegaMatcher {
	return gcustom.MakeMatcher(func(resp *Response) (bool, error) {
		if resp == nil {
			return false, ErrNilResponse
		}

		return strings.Contains(resp.ContentType(), mediaType), nil
	}).WithTemplate("Expected Content-Type {{.Actual.ContentType}} {{.To}} contain {{.Data}}", mediaType)
}

// HaveValidationErrorFor succeeds when a *Response is a 422 whose detail
// locates an error at field.
func HaveValidationErrorFor(field string) types.GomegaMatcher {
	return gcustom.MakeMatcher(func(resp *Response) (bool, error) {
		if resp == nil {
			return false, ErrNilResponse
		}

		if resp.StatusCode != http.StatusUnprocessableEntity {
			return false, nil
		}

		validation, err := resp.ValidationError()
		if err != nil {
			return false, err
		}

		return slices.Contains(validation.Fields(), field), nil
	}).WithTemplate("Expected response {{.To}} reject field {{.Data}}\n"+responseTemplate, field)
}

// MatchSchema succeeds when a JSON value conforms to the named component
// schema of the items contract. See ValidateJSON for accepted values.
func MatchSchema(name string) types.GomegaMatcher {
	return &schemaMatcher{
		name: name,
	}
}

type schemaMatcher struct {
	name string
	err  error
}

func (m *schemaMatcher) Match(actual interface{}) (bool, error) {
	if _, err := ContractSchema(m.name); err != nil {
		return false, err
	}

	m.err = ValidateJSON(m.name, actual)

	return m.err == nil, nil
}

func (m *schemaMatcher) FailureMessage(actual interface{}) string {
	return format.Message(describe(actual), fmt.Sprintf("to match schema %s, but %v", m.name, m.err))
}

func (m *schemaMatcher) NegatedFailureMessage(actual interface{}) string {
	return format.Message(describe(actual), "not to match schema "+m.name)
}

// describe prints a response by its body rather than its struct fields.
func describe(actual interface{}) interface{} {
	if resp, ok := actual.(*Response); ok && resp != nil {
		return fmt.Sprintf("%s %s (%d): %s", resp.Method, resp.Path, resp.StatusCode, resp.Text())
	}

	if data, ok := actual.([]byte); ok {
		return string(data)
	}

	return actual
}
