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

// Credentials is an email and password pair accepted by the service.
type Credentials struct {
	Email    string
	Password string
}

// Session is the result of a browser style login.
type Session struct {
	// Cookie is the opaque authorization artifact echoed in the
	// request headers after login, empty if none was issued.
	Cookie     string
	StatusCode int
}

// APIKey is returned by the /api/key endpoint.
type APIKey struct {
	Key string `json:"key"`
}

// Pet is a pet record as echoed by the service.
type Pet struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AnimalType string `json:"animal_type"`
	Age        string `json:"age"`
	PetPhoto   string `json:"pet_photo"`
	UserID     string `json:"user_id,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// PetList is the envelope returned by the listing endpoints.
type PetList struct {
	Pets []Pet `json:"pets"`
}

// IDs returns the identifiers of all pets in the list.
func (l *PetList) IDs() []string {
	ids := make([]string, len(l.Pets))

	for i := range l.Pets {
		ids[i] = l.Pets[i].ID
	}

	return ids
}

// PetPayload holds the candidate values submitted when creating or
// updating a pet.
type PetPayload struct {
	Name       string
	AnimalType string
	Age        string
	// PhotoPath is only used by the endpoints that accept an upload.
	PhotoPath string
}

// Pet list filters understood by /api/pets.
const (
	FilterAll    = ""
	FilterMyPets = "my_pets"
)
