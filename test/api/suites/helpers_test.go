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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/api-sut/test/api"
)

// doGet issues a GET and fails the spec on transport errors only.
func doGet(path string) *api.Response {
	GinkgoHelper()

	resp, err := client.Get(ctx, path)
	Expect(err).NotTo(HaveOccurred())

	return resp
}

// doPost creates through the raw call so specs can assert on the response.
// Anything the service creates is still cleaned up.
func doPost(payload interface{}) *api.Response {
	GinkgoHelper()

	return doPostTo(endpoints.CreateItem(), payload)
}

func doPostTo(path string, payload interface{}) *api.Response {
	GinkgoHelper()

	resp, err := client.Post(ctx, path, payload)
	Expect(err).NotTo(HaveOccurred())

	items.TrackResponse(resp)

	return resp
}

func doPut(path string, payload interface{}) *api.Response {
	GinkgoHelper()

	resp, err := client.Put(ctx, path, payload)
	Expect(err).NotTo(HaveOccurred())

	return resp
}

func doPatch(path string, payload interface{}) *api.Response {
	GinkgoHelper()

	resp, err := client.Patch(ctx, path, payload)
	Expect(err).NotTo(HaveOccurred())

	return resp
}

func doDelete(path string) *api.Response {
	GinkgoHelper()

	resp, err := client.Delete(ctx, path)
	Expect(err).NotTo(HaveOccurred())

	return resp
}

// doSend issues a request with a raw body, a POST that creates an item is
// still cleaned up.
func doSend(method, path string, body []byte, contentType string) *api.Response {
	GinkgoHelper()

	resp, err := client.Send(ctx, method, path, body, contentType)
	Expect(err).NotTo(HaveOccurred())

	if method == http.MethodPost {
		items.TrackResponse(resp)
	}

	return resp
}

// createdItem asserts resp is a 201 and decodes the item it carries.
func createdItem(resp *api.Response) *api.Item {
	GinkgoHelper()

	Expect(resp).To(api.HaveStatus(http.StatusCreated))

	item, err := resp.Item()
	Expect(err).NotTo(HaveOccurred())

	return item
}

// okItem asserts resp is a 200 and decodes the item it carries.
func okItem(resp *api.Response) *api.Item {
	GinkgoHelper()

	Expect(resp).To(api.HaveStatus(http.StatusOK))

	item, err := resp.Item()
	Expect(err).NotTo(HaveOccurred())

	return item
}

// fieldEntries turns field cases into table entries named after the field
// and the kind of value.
func fieldEntries(cases []api.FieldCase) []TableEntry {
	entries := make([]TableEntry, 0, len(cases))

	for _, c := range cases {
		entries = append(entries, Entry(c.String(), c))
	}

	return entries
}

// tokenEntries turns raw path tokens into table entries.
func tokenEntries(tokens ...string) []TableEntry {
	entries := make([]TableEntry, 0, len(tokens))

	for _, token := range tokens {
		entries = append(entries, Entry("id="+token, token))
	}

	return entries
}
