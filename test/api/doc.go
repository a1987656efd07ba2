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

// Package api provides end-to-end test utilities for the PetFriends API.
//
// # Client
//
// APIClient is a thin, hand-written wrapper over the PetFriends HTTP
// endpoints. It returns typed results together with the raw status code
// information (via ResponseError) so that suites can assert on both the
// transport and the payload of every call. Each request carries a W3C
// traceparent header and, when enabled, is logged to the GinkgoWriter.
//
// # Sessions
//
// Browser style sessions are obtained once per ordered Ginkgo container with
// a SessionFixture: Acquire posts the configured credentials to /login from
// BeforeAll and Cookie hands the echoed cookie to each spec from BeforeEach.
// With the container marked ContinueOnFailure, a failed login is reported as
// a setup failure on every dependent spec rather than skipping them.
//
// # Local twin
//
// When PETFRIENDS_LOCAL_TWIN is set the suites run against an in-process
// PetFriends twin (see pkg/twin) instead of the public service, which makes
// the suites hermetic.
package api
