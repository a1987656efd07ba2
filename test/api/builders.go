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

package api

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
)

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	_, _ = rand.Read(bytes)

	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

// GenerateTestID returns a short random identifier for naming test data.
func GenerateTestID() string {
	return generateRandomName("test")
}

// PetPayloadBuilder builds pet payloads for testing.
type PetPayloadBuilder struct {
	payload PetPayload
}

// NewPetPayload creates a new pet payload builder with valid defaults and
// the configured photo.
func NewPetPayload(config *TestConfig) *PetPayloadBuilder {
	return &PetPayloadBuilder{
		payload: PetPayload{
			Name:       generateRandomName("pet"),
			AnimalType: "dog",
			Age:        "3",
			PhotoPath:  config.PhotoPath,
		},
	}
}

// WithName sets the pet name.
func (b *PetPayloadBuilder) WithName(name string) *PetPayloadBuilder {
	b.payload.Name = name
	return b
}

// WithAnimalType sets the breed.
func (b *PetPayloadBuilder) WithAnimalType(animalType string) *PetPayloadBuilder {
	b.payload.AnimalType = animalType
	return b
}

// WithAge sets the age verbatim, allowing invalid values to be submitted.
func (b *PetPayloadBuilder) WithAge(age string) *PetPayloadBuilder {
	b.payload.Age = age
	return b
}

// WithAgeYears sets a numeric age.
func (b *PetPayloadBuilder) WithAgeYears(age int) *PetPayloadBuilder {
	b.payload.Age = strconv.Itoa(age)
	return b
}

// WithPhoto sets the photo path (pass empty string to omit).
func (b *PetPayloadBuilder) WithPhoto(path string) *PetPayloadBuilder {
	b.payload.PhotoPath = path
	return b
}

// Build returns the completed pet payload.
func (b *PetPayloadBuilder) Build() PetPayload {
	return b.payload
}
