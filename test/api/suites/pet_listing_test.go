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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/petfriends-e2e/test/api"
)

var _ = Describe("Pet Listing", func() {
	Context("When browsing with a session cookie", Ordered, ContinueOnFailure, func() {
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

		It("should list all pets", func() {
			pets, err := client.ListAllPets(ctx, cookie)
			Expect(err).NotTo(HaveOccurred(), "Listing all pets must return 200")
			Expect(pets.Pets).NotTo(BeEmpty(), "The pet list must not be empty")
		})
	})

	Context("When filtering by ownership", func() {
		It("should list only pets owned by the account", func() {
			key := api.MustGetAPIKey(client, ctx, config)

			// Own at least one pet so the ownership check is not vacuous.
			created := api.AddPetWithoutPhotoWithCleanup(client, ctx, key, api.NewPetPayload(config).Build())

			pets := api.ListOwnPets(client, ctx, key)
			api.VerifyPetPresent(pets, created.ID)

			for _, pet := range pets.Pets {
				Expect(pet.UserID).To(Equal(created.UserID), "Pet %s must belong to the account", pet.ID)
			}
		})

		It("should include own pets in the unfiltered list", func() {
			key := api.MustGetAPIKey(client, ctx, config)

			created := api.AddPetWithoutPhotoWithCleanup(client, ctx, key, api.NewPetPayload(config).Build())

			pets, err := client.ListPets(ctx, key, api.FilterAll)
			Expect(err).NotTo(HaveOccurred(), "Listing pets must return 200")
			api.VerifyPetPresent(pets, created.ID)
		})
	})
})
