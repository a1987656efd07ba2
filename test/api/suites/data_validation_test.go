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
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/petfriends-e2e/test/api"
)

const (
	longName  = "Очень длинное имя для нашего питомца"
	longBreed = "Самая лучшая и добрая порода собак"
)

var _ = Describe("Data Validation", func() {
	var key *api.APIKey

	BeforeEach(func() {
		key = api.MustGetAPIKey(client, ctx, config)
	})

	Context("When the age is invalid", func() {
		It("should not store a non-numeric age", func() {
			const age = "abc"

			pet := api.AddPetWithCleanup(client, ctx, key, api.NewPetPayload(config).WithAge(age).Build())

			Expect(pet.Age).NotTo(ContainSubstring(age), "Expected non-numeric age %q to be rejected, got %q", age, pet.Age)
		})

		It("should not store a four digit age", func() {
			pet := api.AddPetWithCleanup(client, ctx, key, api.NewPetPayload(config).WithAge("1234").Build())

			Expect(len(pet.Age)).To(BeNumerically("<", 4), "Expected a four digit age to be rejected, got %q", pet.Age)
		})
	})

	Context("When the name is invalid", func() {
		It("should not store an empty name", func() {
			pet := api.AddPetWithCleanup(client, ctx, key, api.NewPetPayload(config).WithName("").Build())

			Expect(strings.TrimSpace(pet.Name)).NotTo(BeEmpty(), "Expected an empty name to be rejected")
		})

		It("should not store a name of five or more words", func() {
			Expect(api.WordCount(longName)).To(BeNumerically(">=", 5))

			pet := api.AddPetWithCleanup(client, ctx, key, api.NewPetPayload(config).WithName(longName).Build())

			Expect(api.WordCount(pet.Name)).To(BeNumerically("<", 5), "Expected a long name to be rejected, got %q", pet.Name)
		})
	})

	Context("When the breed is invalid", func() {
		It("should not store a numeric breed", func() {
			const breed = "12345"

			pet := api.AddPetWithCleanup(client, ctx, key, api.NewPetPayload(config).WithAnimalType(breed).Build())

			Expect(pet.AnimalType).NotTo(ContainSubstring(breed), "Expected numeric breed %q to be rejected, got %q", breed, pet.AnimalType)
		})

		It("should not store a breed of five or more words", func() {
			Expect(api.WordCount(longBreed)).To(BeNumerically(">=", 5))

			pet := api.AddPetWithCleanup(client, ctx, key, api.NewPetPayload(config).WithAnimalType(longBreed).Build())

			Expect(api.WordCount(pet.AnimalType)).To(BeNumerically("<", 5), "Expected a long breed to be rejected, got %q", pet.AnimalType)
		})
	})
})
