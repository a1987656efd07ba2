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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var (
	// ErrNoSessionCookie is returned when login succeeds but no
	// authorization cookie is echoed back.
	ErrNoSessionCookie = errors.New("no authorization cookie in the echoed request headers")
)

// AcquireSession logs in with the given credentials and returns the
// authorization cookie. Any status other than 200, or a missing cookie, is
// an error.
func AcquireSession(ctx context.Context, provider SessionProvider, credentials Credentials) (string, error) {
	session, err := provider.Login(ctx, credentials)
	if err != nil {
		return "", fmt.Errorf("acquiring session: %w", err)
	}

	if session.StatusCode != http.StatusOK {
		return "", fmt.Errorf("acquiring session: expected status %d, got %d", http.StatusOK, session.StatusCode)
	}

	if session.Cookie == "" {
		return "", fmt.Errorf("acquiring session: %w", ErrNoSessionCookie)
	}

	return session.Cookie, nil
}

// SessionFixture shares one login across the specs of an ordered
// container. Acquire runs in BeforeAll and only records the outcome, Cookie
// runs in BeforeEach and fails every dependent spec while setup is broken.
// Decorate the container with ContinueOnFailure so later specs still run
// and report the setup failure themselves.
type SessionFixture struct {
	cookie   string
	err      error
	acquired bool
}

// Acquire logs in once with the given credentials.
func (f *SessionFixture) Acquire(ctx context.Context, provider SessionProvider, credentials Credentials) {
	f.cookie, f.err = AcquireSession(ctx, provider, credentials)
	f.acquired = true

	if f.err != nil {
		GinkgoWriter.Printf("Session setup failed for %s: %v\n", credentials.Email, f.err)
		return
	}

	GinkgoWriter.Printf("Acquired session cookie for %s\n", credentials.Email)
}

// Cookie returns the shared cookie, failing the current spec as a setup
// error if the login did not succeed.
func (f *SessionFixture) Cookie() string {
	if !Expect(f.acquired).To(BeTrue(), "Session setup failed: the fixture was never acquired") {
		return ""
	}

	if !Expect(f.err).NotTo(HaveOccurred(), "Session setup failed: login must return 200 and an authorization cookie") {
		return ""
	}

	return f.cookie
}

// MustGetAPIKey acquires an API key for the configured account.
func MustGetAPIKey(client *APIClient, ctx context.Context, config *TestConfig) *APIKey {
	key, err := client.GetAPIKey(ctx, config.Credentials())
	Expect(err).NotTo(HaveOccurred(), "API key request with valid credentials must succeed")
	Expect(key.Key).NotTo(BeEmpty(), "API key response must carry a key")

	return key
}

// scheduleDelete removes a pet when the current spec finishes, whether it
// passed or failed.
func scheduleDelete(client *APIClient, ctx context.Context, key *APIKey, petID string) {
	DeferCleanup(func() {
		GinkgoWriter.Printf("Cleaning up pet: %s\n", petID)

		if err := client.DeletePet(ctx, key, petID); err != nil {
			GinkgoWriter.Printf("Warning: Failed to delete pet %s: %v\n", petID, err)
		}
	})
}

// AddPetWithCleanup creates a pet with a photo and schedules its deletion.
func AddPetWithCleanup(client *APIClient, ctx context.Context, key *APIKey, payload PetPayload) *Pet {
	pet, err := client.AddNewPet(ctx, key, payload)
	Expect(err).NotTo(HaveOccurred(), "Creating pet %q must succeed", payload.Name)

	GinkgoWriter.Printf("Created pet with ID: %s\n", pet.ID)
	scheduleDelete(client, ctx, key, pet.ID)

	return pet
}

// AddPetWithoutPhotoWithCleanup creates a pet without a photo and schedules
// its deletion.
func AddPetWithoutPhotoWithCleanup(client *APIClient, ctx context.Context, key *APIKey, payload PetPayload) *Pet {
	pet, err := client.AddNewPetWithoutPhoto(ctx, key, payload)
	Expect(err).NotTo(HaveOccurred(), "Creating pet %q without photo must succeed", payload.Name)

	GinkgoWriter.Printf("Created pet without photo with ID: %s\n", pet.ID)
	scheduleDelete(client, ctx, key, pet.ID)

	return pet
}

// ListOwnPets returns the pets owned by the key's account.
func ListOwnPets(client *APIClient, ctx context.Context, key *APIKey) *PetList {
	pets, err := client.ListPets(ctx, key, FilterMyPets)
	Expect(err).NotTo(HaveOccurred(), "Listing own pets must succeed")

	return pets
}

// EnsureOwnPet returns the first pet owned by the account, creating one if
// the account has none. The created pet is not cleaned up, the caller is
// expected to consume it.
func EnsureOwnPet(client *APIClient, ctx context.Context, config *TestConfig, key *APIKey) Pet {
	pets := ListOwnPets(client, ctx, key)

	if len(pets.Pets) == 0 {
		GinkgoWriter.Printf("Account has no pets, creating one\n")

		_, err := client.AddNewPet(ctx, key, NewPetPayload(config).
			WithName("Боб").
			WithAnimalType("Голубой кот").
			WithAge("4").
			Build())
		Expect(err).NotTo(HaveOccurred(), "Creating a precondition pet must succeed")

		pets = ListOwnPets(client, ctx, key)
	}

	if !Expect(pets.Pets).NotTo(BeEmpty(), "Account must own at least one pet") {
		return Pet{}
	}

	return pets.Pets[0]
}

// RequireOwnPet returns the first pet owned by the account. An account
// without pets is a hard failure, not a skip.
func RequireOwnPet(client *APIClient, ctx context.Context, key *APIKey) Pet {
	pets := ListOwnPets(client, ctx, key)

	if !Expect(pets.Pets).NotTo(BeEmpty(), "No pet to update: the account owns no pets") {
		return Pet{}
	}

	return pets.Pets[0]
}

// VerifyPetAbsent verifies that a pet ID does not appear in the list.
func VerifyPetAbsent(pets *PetList, petID string) {
	Expect(pets.IDs()).NotTo(ContainElement(petID), "Expected pet ID %s to be absent from the list", petID)
}

// VerifyPetPresent verifies that a pet ID appears in the list.
func VerifyPetPresent(pets *PetList, petID string) {
	Expect(pets.IDs()).To(ContainElement(petID), "Expected pet ID %s to be present in the list", petID)
}

// WordCount returns the number of whitespace separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
