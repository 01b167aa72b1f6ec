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

// Package api provides black-box test utilities for the API-SUT items service.
//
// The service under test is an external collaborator reachable only over
// HTTP. Nothing in this package knows how it is implemented; everything here
// observes status codes, headers and JSON bodies.
//
// # Hand Written Client
//
// APIClient is deliberately not generated from the service's OpenAPI
// document. The document is one of the things the suites check, and a
// client derived from it would silently follow any change. The client also
// exposes what the suites need and a generated client hides:
//   - W3C trace context headers on every request for log correlation
//   - raw status codes, headers and bodies for every response
//   - request bodies of any shape, including malformed JSON and wrong types
//   - no redirect following, so a 307 is visible to the caller
//
// # Fixtures
//
// ItemFactory creates items through the API and schedules their deletion
// with Ginkgo's DeferCleanup, so a failed or panicking spec still leaves the
// collection as it found it. Delete failures during cleanup are logged and
// never change the spec's result.
package api
