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

var _ = Describe("Pet Creation", func() {
	var key *api.APIKey

	BeforeEach(func() {
		key = api.MustGetAPIKey(client, ctx, config)
	})

	Context("When adding a pet with valid data", func() {
		It("should create the pet with a photo", func() {
			pet := api.AddPetWithCleanup(client, ctx, key, api.NewPetPayload(config).
				WithName("Ронни").
				WithAnimalType("Русская борзая").
				WithAge("3").
				Build())

			Expect(pet.ID).NotTo(BeEmpty())
			Expect(pet.Name).To(Equal("Ронни"))
			Expect(pet.PetPhoto).NotTo(BeEmpty(), "A pet created with a photo must carry it")
		})

		It("should create the pet without a photo", func() {
			pet := api.AddPetWithoutPhotoWithCleanup(client, ctx, key, api.NewPetPayload(config).
				WithName("Кто я").
				WithAnimalType("Жираф").
				WithAge("25").
				Build())

			Expect(pet.ID).NotTo(BeEmpty())
			Expect(pet.Name).To(Equal("Кто я"))
			Expect(pet.AnimalType).To(Equal("Жираф"))
			Expect(pet.Age).To(Equal("25"))
		})
	})

	Context("When adding a photo to an existing pet", func() {
		It("should attach the photo", func() {
			created := api.AddPetWithoutPhotoWithCleanup(client, ctx, key, api.NewPetPayload(config).Build())
			Expect(created.PetPhoto).To(BeEmpty())

			pet, err := client.SetPetPhoto(ctx, key, created.ID, config.PhotoPath)
			Expect(err).NotTo(HaveOccurred(), "Setting a photo must return 200")
			Expect(pet.ID).To(Equal(created.ID))
			Expect(pet.PetPhoto).NotTo(BeEmpty(), "The updated pet must carry the photo")
		})
	})
})
