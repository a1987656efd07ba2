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

package twin

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/nscaledev/petfriends-e2e/pkg/twin/store"
)

// CommunityEmail owns the public pets every listing starts with.
const CommunityEmail = "community@petfriends.test"

var communityPets = []store.PetFields{
	{Name: "Барсик", AnimalType: "кот", Age: "2"},
	{Name: "Шарик", AnimalType: "дворняга", Age: "5"},
	{Name: "Рекс", AnimalType: "овчарка", Age: "4"},
}

// starterPet is owned by the primary account so updates have a target
// on a fresh twin.
var starterPet = store.PetFields{Name: "Мурка", AnimalType: "сиамская", Age: "1"}

func seedDefault(s *store.MemoryStore, email, password string) error {
	secret := make([]byte, 16)
	if _, err := rand.Read(secret); err != nil {
		return fmt.Errorf("generating community password: %w", err)
	}

	community, err := s.AddAccount(CommunityEmail, hex.EncodeToString(secret))
	if err != nil {
		return err
	}

	for _, fields := range communityPets {
		s.CreatePet(community.ID, fields, "")
	}

	primary, err := s.AddAccount(email, password)
	if err != nil {
		return err
	}

	s.CreatePet(primary.ID, starterPet, "")

	return nil
}
