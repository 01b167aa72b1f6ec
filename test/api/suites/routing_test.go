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
	"encoding/json"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/api-sut/test/api"
)

var _ = Describe("Routing", Label("routing", "smoke", "negative"), func() {
	Context("When using a method a route does not allow", func() {
		It("should return 405 for PATCH on an item", func() {
			// Given: An existing item
			item := items.Create()

			// When: I patch it, with or without a body
			withBody := doPatch(endpoints.Item(api.ItemID(item.ID)), api.NewItemPayload().Build())
			withoutBody := doPatch(endpoints.Item(api.ItemID(item.ID)), nil)

			// Then: The method should not be allowed
			Expect(withBody).To(api.HaveStatus(http.StatusMethodNotAllowed))
			Expect(withoutBody).To(api.HaveStatus(http.StatusMethodNotAllowed))
		})

		It("should return 405 for PUT on the collection", func() {
			Expect(doPut(endpoints.ListItems(), api.NewItemPayload().Build())).To(api.HaveStatus(http.StatusMethodNotAllowed))
		})

		It("should return 405 for DELETE on the collection", func() {
			Expect(doDelete(endpoints.ListItems())).To(api.HaveStatus(http.StatusMethodNotAllowed))
		})

		It("should return 405 for POST on an item", func() {
			item := items.Create()

			Expect(doPostTo(endpoints.Item(api.ItemID(item.ID)), api.NewItemPayload().Build())).To(api.HaveStatus(http.StatusMethodNotAllowed))
		})
	})

	Context("When requesting a path that does not exist", func() {
		DescribeTable("should return 404",
			func(path string) {
				Expect(doGet(path)).To(api.HaveStatus(http.StatusNotFound))
			},
			Entry("unknown endpoint", "/nonexistent"),
			Entry("misspelled collection", "/item"),
			Entry("nested under an item", "/items/1/details"),
		)
	})

	Context("When the request body is malformed", func() {
		It("should return 422 for invalid JSON", func() {
			resp := doSend(http.MethodPost, endpoints.CreateItem(), []byte("not valid json"), "application/json")

			Expect(resp).To(api.HaveStatus(http.StatusUnprocessableEntity))
		})

		It("should return 422 for the wrong content type", func() {
			// Given: A valid payload
			body, err := json.Marshal(api.NewItemPayload().Build())
			Expect(err).NotTo(HaveOccurred())

			// When: I send it as plain text
			resp := doSend(http.MethodPost, endpoints.CreateItem(), body, "text/plain")

			// Then: The body should not be interpreted as JSON
			Expect(resp).To(api.HaveStatus(http.StatusUnprocessableEntity))
		})
	})
})
