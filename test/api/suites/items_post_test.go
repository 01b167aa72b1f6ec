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
	"k8s.io/utils/ptr"

	"github.com/unikorn-cloud/api-sut/test/api"
)

// expectFieldCase posts a payload differing from a valid one in a single
// field and checks the service either stores the value as sent or rejects
// exactly that field.
func expectFieldCase(c api.FieldCase) {
	GinkgoHelper()

	resp := doPost(c.Payload())

	if !c.Accepted {
		Expect(resp).To(api.HaveStatus(http.StatusUnprocessableEntity))
		Expect(resp).To(api.HaveValidationErrorFor(c.Field))

		return
	}

	item := createdItem(resp)

	switch c.Field {
	case api.FieldName:
		Expect(item.Name).To(Equal(c.Value))
	case api.FieldDescription:
		if c.Omit || c.Value == nil {
			Expect(item.Description).To(BeNil())
		} else {
			Expect(item.Description).To(HaveValue(Equal(c.Value)))
		}
	case api.FieldPrice:
		Expect(item.Price).To(BeNumerically("~", c.Value, 0.01))
	case api.FieldQuantity:
		Expect(item.Quantity).To(BeNumerically("==", c.Value))
	}
}

var _ = Describe("Create Items", Label("items", "post"), func() {
	Context("When creating an item from a valid payload", Label("positive"), func() {
		It("should return 201 and echo the payload", func() {
			// Given: The canonical item payload
			payload := api.NewItemPayload().Build()

			// When: I create the item
			resp := doPost(payload)

			// Then: The stored item should echo the payload with server assigned fields
			item := createdItem(resp)
			Expect(resp).To(api.MatchSchema(api.SchemaItem))
			Expect(item.ID).NotTo(BeZero())
			Expect(item.Name).To(Equal(payload[api.FieldName]))
			Expect(item.Description).To(Equal(ptr.To("A test item for automated testing")))
			Expect(item.Price).To(Equal(19.99))
			Expect(item.Quantity).To(BeEquivalentTo(50))
		})

		It("should generate timestamps", func() {
			item := createdItem(doPost(api.NewItemPayload().Build()))

			Expect(item.CreatedAt).NotTo(BeEmpty())
			Expect(item.UpdatedAt).NotTo(BeEmpty())
		})

		It("should be readable immediately after creation", func() {
			// Given: An item I just created
			created := createdItem(doPost(api.NewItemPayload().WithUniqueName("read-after-create").Build()))

			// When: I fetch it
			fetched, err := client.GetItem(ctx, created.ID)

			// Then: The same item should be returned
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched.ID).To(Equal(created.ID))
			Expect(fetched.Name).To(Equal(created.Name))
			Expect(fetched.Price).To(Equal(created.Price))
		})

		It("should generate a unique ID for each item", func() {
			first := createdItem(doPost(api.NewItemPayload().Build()))
			second := createdItem(doPost(api.NewItemPayload().Build()))

			Expect(first.ID).NotTo(Equal(second.ID))
		})

		It("should accept a payload with only the required fields", func() {
			item := createdItem(doPost(api.NewMinimalItemPayload().Build()))

			Expect(item.Description).To(BeNil())
		})

		It("should default a missing description to null", func() {
			// Given: A single character name and no description
			payload := api.NewEmptyItemPayload().
				WithName("A").
				WithPrice(10.0).
				WithQuantity(5).
				Build()

			// When: I create the item
			resp := doPost(payload)

			// Then: The description should be null
			Expect(resp).To(api.HaveStatus(http.StatusCreated))

			object, err := resp.Object()
			Expect(err).NotTo(HaveOccurred())
			Expect(object).To(HaveKeyWithValue(api.FieldDescription, BeNil()))
		})

		It("should accept an explicit null description", func() {
			payload := api.NewMinimalItemPayload().WithName("Item with null description").WithNullDescription().Build()

			Expect(createdItem(doPost(payload)).Description).To(BeNil())
		})

		It("should accept a quantity of zero", func() {
			payload := api.NewMinimalItemPayload().WithName("Out of stock item").WithPrice(50.00).WithQuantity(0).Build()

			Expect(createdItem(doPost(payload)).Quantity).To(BeZero())
		})

		It("should keep decimal prices", func() {
			payload := api.NewMinimalItemPayload().WithName("Precise price item").WithPrice(19.99).WithQuantity(10).Build()

			Expect(createdItem(doPost(payload)).Price).To(Equal(19.99))
		})

		It("should create every sample item", func() {
			// Given: A batch of distinct payloads
			// When: I create them all
			created := items.CreateMany(api.SampleItemPayloads())

			ids := make([]int64, len(created))
			for i := range created {
				ids[i] = created[i].ID
			}

			// Then: Every one of them should be listed
			listed, err := client.ListItems(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(api.MissingItemIDs(listed, ids...)).To(BeEmpty())
		})
	})

	Context("When creating an item from an invalid request", Label("negative"), func() {
		It("should return 422 without a body", func() {
			Expect(doPost(nil)).To(api.HaveStatus(http.StatusUnprocessableEntity))
		})

		It("should return 422 with detailed errors for an empty body", func() {
			// Given: An empty JSON object
			// When: I try to create an item from it
			resp := doPost(api.NewEmptyItemPayload().Build())

			// Then: A list of validation errors should be returned
			Expect(resp).To(api.HaveStatus(http.StatusUnprocessableEntity))
			Expect(resp).To(api.MatchSchema(api.SchemaValidationError))

			object, err := resp.Object()
			Expect(err).NotTo(HaveOccurred())
			Expect(object).To(HaveKeyWithValue("detail", BeAssignableToTypeOf([]interface{}{})))
		})

		DescribeTable("should return 422 when a required field is missing",
			expectFieldCase,
			fieldEntries(api.MissingFieldCases()),
		)

		It("should reject an empty name", func() {
			// Given: A payload with an empty name
			payload := api.NewMinimalItemPayload().WithName("").WithPrice(10.0).WithQuantity(5).Build()

			// When: I try to create it
			resp := doPost(payload)

			// Then: The name should be rejected
			Expect(resp).To(api.HaveStatus(http.StatusUnprocessableEntity))
			Expect(resp).To(api.HaveValidationErrorFor(api.FieldName))
		})
	})

	Context("When validating the name field", Label("validation"), func() {
		DescribeTable("should enforce length bounds", expectFieldCase, fieldEntries(api.NameLengthCases()))

		DescribeTable("should reject non-string names", expectFieldCase, fieldEntries(api.NameTypeCases()))

		DescribeTable("should store names exactly as sent", expectFieldCase, fieldEntries(api.NameContentCases()))
	})

	Context("When validating the description field", Label("validation"), func() {
		DescribeTable("should accept optional descriptions up to the limit", expectFieldCase, fieldEntries(api.DescriptionCases()))
	})

	Context("When validating the price field", Label("validation"), func() {
		DescribeTable("should only accept positive prices", expectFieldCase, fieldEntries(api.PriceCases()))

		DescribeTable("should reject non-numeric prices", expectFieldCase, fieldEntries(api.PriceTypeCases()))
	})

	Context("When validating the quantity field", Label("validation"), func() {
		DescribeTable("should only accept non-negative quantities", expectFieldCase, fieldEntries(api.QuantityCases()))

		DescribeTable("should reject non-integer quantities", expectFieldCase, fieldEntries(api.QuantityTypeCases()))
	})

	Context("When creating items that share a name", Label("validation"), func() {
		It("should create both", func() {
			// Given: Two identical payloads
			payload := api.NewMinimalItemPayload().WithName("Duplicate Name").WithPrice(10.00).WithQuantity(5).Build()

			// When: I create both, one after the other
			first := createdItem(doPost(payload))
			second := createdItem(doPost(payload))

			// Then: There is no uniqueness constraint on names
			Expect(first.ID).NotTo(Equal(second.ID))
			Expect(first.Name).To(Equal(second.Name))
		})
	})
})
