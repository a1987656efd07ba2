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

package store

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a pet does not exist or is owned by
	// another account.
	ErrNotFound = errors.New("pet not found")

	// ErrAccountExists is returned when registering a duplicate email.
	ErrAccountExists = errors.New("account already exists")
)

// MemoryStore holds all PetFriends twin state in memory.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]Account
	// pets are kept in creation order, newest last.
	pets []Pet
	now  func() time.Time
}

// New creates a new MemoryStore with empty state.
func New() *MemoryStore {
	return &MemoryStore{
		accounts: map[string]Account{},
		now:      time.Now,
	}
}

// AddAccount registers an account and returns it.
func (s *MemoryStore) AddAccount(email, password string) (Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range s.accounts {
		if account.Email == email {
			return Account{}, fmt.Errorf("%w: %s", ErrAccountExists, email)
		}
	}

	account := Account{
		ID:       uuid.NewString(),
		Email:    email,
		Password: password,
	}

	s.accounts[account.ID] = account

	return account, nil
}

// Authenticate returns the account matching both email and password.
func (s *MemoryStore) Authenticate(email, password string) (Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, account := range s.accounts {
		if account.Email == email && account.Password == password {
			return account, true
		}
	}

	return Account{}, false
}

// Account looks up an account by ID.
func (s *MemoryStore) Account(id string) (Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]

	return account, ok
}

// CreatePet stores a new pet owned by userID.
func (s *MemoryStore) CreatePet(userID string, fields PetFields, photo string) Pet {
	s.mu.Lock()
	defer s.mu.Unlock()

	pet := Pet{
		ID:         uuid.NewString(),
		Name:       fields.Name,
		AnimalType: fields.AnimalType,
		Age:        fields.Age,
		PetPhoto:   photo,
		UserID:     userID,
		CreatedAt:  strconv.FormatInt(s.now().Unix(), 10),
	}

	s.pets = append(s.pets, pet)

	return pet
}

// ListPets returns all pets newest first, restricted to userID if it is
// not empty.
func (s *MemoryStore) ListPets(userID string) []Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pets := make([]Pet, 0, len(s.pets))

	for i := len(s.pets) - 1; i >= 0; i-- {
		if userID == "" || s.pets[i].UserID == userID {
			pets = append(pets, s.pets[i])
		}
	}

	return pets
}

// CountPets returns the number of stored pets.
func (s *MemoryStore) CountPets() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.pets)
}

// ownedIndex must be called with the lock held.
func (s *MemoryStore) ownedIndex(userID, petID string) (int, error) {
	i := slices.IndexFunc(s.pets, func(pet Pet) bool {
		return pet.ID == petID
	})

	if i < 0 || s.pets[i].UserID != userID {
		return -1, fmt.Errorf("%w: %s", ErrNotFound, petID)
	}

	return i, nil
}

// UpdatePet replaces the mutable fields of a pet owned by userID.
func (s *MemoryStore) UpdatePet(userID, petID string, fields PetFields) (Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.ownedIndex(userID, petID)
	if err != nil {
		return Pet{}, err
	}

	s.pets[i].Name = fields.Name
	s.pets[i].AnimalType = fields.AnimalType
	s.pets[i].Age = fields.Age

	return s.pets[i], nil
}

// SetPhoto replaces the photo of a pet owned by userID.
func (s *MemoryStore) SetPhoto(userID, petID, photo string) (Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.ownedIndex(userID, petID)
	if err != nil {
		return Pet{}, err
	}

	s.pets[i].PetPhoto = photo

	return s.pets[i], nil
}

// DeletePet removes a pet owned by userID.
func (s *MemoryStore) DeletePet(userID, petID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.ownedIndex(userID, petID)
	if err != nil {
		return err
	}

	s.pets = slices.Delete(s.pets, i, i+1)

	return nil
}

// stateSnapshot is the JSON-serializable state for admin endpoints and
// seed files.
type stateSnapshot struct {
	Accounts []Account `json:"accounts"`
	Pets     []Pet     `json:"pets"`
}

// Snapshot returns the full state as a JSON-serializable value.
func (s *MemoryStore) Snapshot() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := stateSnapshot{
		Accounts: make([]Account, 0, len(s.accounts)),
		Pets:     slices.Clone(s.pets),
	}

	for _, account := range s.accounts {
		snap.Accounts = append(snap.Accounts, account)
	}

	slices.SortFunc(snap.Accounts, func(a, b Account) int {
		return cmp.Compare(a.Email, b.Email)
	})

	return snap
}

// LoadState replaces the full state from a JSON body.
func (s *MemoryStore) LoadState(data []byte) error {
	var snap stateSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = make(map[string]Account, len(snap.Accounts))

	for _, account := range snap.Accounts {
		if account.ID == "" {
			account.ID = uuid.NewString()
		}

		s.accounts[account.ID] = account
	}

	s.pets = slices.Clone(snap.Pets)

	return nil
}

// Reset clears all state.
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = map[string]Account{}
	s.pets = nil
}
