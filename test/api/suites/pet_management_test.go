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

// Update runs before delete so that a fresh account still owns the pet the
// update needs. A failed update does not stop the delete from running.
var _ = Describe("Pet Management", Ordered, ContinueOnFailure, func() {
	var key *api.APIKey

	BeforeEach(func() {
		key = api.MustGetAPIKey(client, ctx, config)
	})

	Context("When updating an own pet", func() {
		It("should replace the pet details", func() {
			target := api.RequireOwnPet(client, ctx, key)

			pet, err := client.UpdatePetInfo(ctx, key, target.ID, api.NewPetPayload(config).
				WithName("Рон").
				WithAnimalType("Барбос").
				WithAge("5").
				Build())
			Expect(err).NotTo(HaveOccurred(), "Updating pet %s must return 200", target.ID)
			Expect(pet.ID).To(Equal(target.ID))
			Expect(pet.Name).To(Equal("Рон"))
		})
	})

	Context("When deleting an own pet", func() {
		It("should remove the pet from the list", func() {
			target := api.EnsureOwnPet(client, ctx, config, key)

			err := client.DeletePet(ctx, key, target.ID)
			Expect(err).NotTo(HaveOccurred(), "Deleting pet %s must return 200", target.ID)

			api.VerifyPetAbsent(api.ListOwnPets(client, ctx, key), target.ID)
		})
	})
})
