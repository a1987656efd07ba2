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

	"github.com/nscaledev/petfriends-e2e/test/api"
)

var _ = Describe("Authentication", func() {
	Context("When logging in through the web form", Ordered, ContinueOnFailure, func() {
		var (
			session api.SessionFixture
			cookie  string
		)

		BeforeAll(func() {
			session.Acquire(ctx, client, config.Credentials())
		})

		BeforeEach(func() {
			cookie = session.Cookie()
		})

		It("should return an authorization cookie for valid credentials", func() {
			Expect(cookie).NotTo(BeEmpty())
		})

		It("should authorize later requests with the shared cookie", func() {
			pets, err := client.ListAllPets(ctx, cookie)
			Expect(err).NotTo(HaveOccurred(), "Session cookie must authorize the pet list")
			Expect(pets).NotTo(BeNil())
		})
	})

	Context("When logging in with wrong credentials", func() {
		It("should reject the login with 403 and no cookie", func() {
			session, err := client.Login(ctx, api.Credentials{
				Email:    config.Email,
				Password: "wrong-" + api.GenerateTestID(),
			})

			Expect(err).To(HaveOccurred())
			Expect(session).NotTo(BeNil())
			Expect(session.StatusCode).To(Equal(http.StatusForbidden))
			Expect(session.Cookie).To(BeEmpty(), "A rejected login must not yield a cookie")
		})
	})

	Context("When requesting an API key", func() {
		Describe("Given valid credentials", func() {
			It("should return a key", func() {
				key := api.MustGetAPIKey(client, ctx, config)
				Expect(key.Key).NotTo(BeEmpty())
			})
		})

		Describe("Given a wrong email", func() {
			It("should reject the request with 403 and no key", func() {
				key, err := client.GetAPIKey(ctx, api.Credentials{
					Email:    api.GenerateTestID() + "@example.invalid",
					Password: config.Password,
				})

				Expect(err).To(HaveOccurred())
				Expect(api.StatusCode(err)).To(Equal(http.StatusForbidden))
				Expect(key).To(BeNil(), "A rejected request must not yield a key")
			})
		})

		Describe("Given a wrong password", func() {
			It("should reject the request with 403 and no key", func() {
				key, err := client.GetAPIKey(ctx, api.Credentials{
					Email:    config.Email,
					Password: "wrong-" + api.GenerateTestID(),
				})

				Expect(err).To(HaveOccurred())
				Expect(api.StatusCode(err)).To(Equal(http.StatusForbidden))
				Expect(key).To(BeNil(), "A rejected request must not yield a key")
			})
		})
	})
})
