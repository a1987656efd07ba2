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
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/nscaledev/petfriends-e2e/pkg/twin/store"
)

const (
	// maxPhotoBytes bounds photo uploads.
	maxPhotoBytes = 10 << 20

	filterMyPets = "my_pets"
)

var (
	errUnsupportedPhoto = errors.New("pet_photo must be a JPEG or PNG image")
	errPhotoTooLarge    = errors.New("pet_photo exceeds 10 MiB")
)

// petFields reads and normalises the pet form fields, the form must already
// be parsed.
func petFields(r *http.Request) store.PetFields {
	return store.PetFields{
		Name:       NormalizeName(r.FormValue("name")),
		AnimalType: NormalizeAnimalType(r.FormValue("animal_type")),
		Age:        NormalizeAge(r.FormValue("age")),
	}
}

// readPhoto reads the pet_photo upload and returns it as a data URI.
func readPhoto(r *http.Request) (string, error) {
	file, _, err := r.FormFile("pet_photo")
	if err != nil {
		return "", fmt.Errorf("reading pet_photo: %w", err)
	}

	defer file.Close()

	// One byte past the limit tells an oversized upload from one that fits.
	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes+1))
	if err != nil {
		return "", fmt.Errorf("reading pet_photo: %w", err)
	}

	if len(data) > maxPhotoBytes {
		return "", errPhotoTooLarge
	}

	contentType := http.DetectContentType(data)
	if contentType != "image/jpeg" && contentType != "image/png" {
		return "", errUnsupportedPhoto
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// petID binds the pet_id path parameter.
func petID(r *http.Request) (string, error) {
	var id string

	err := runtime.BindStyledParameterWithOptions("simple", "pet_id", chi.URLParam(r, "pet_id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return "", fmt.Errorf("invalid format for parameter pet_id: %w", err)
	}

	return id, nil
}

func writePhotoError(w http.ResponseWriter, err error) {
	if errors.Is(err, errPhotoTooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
		return
	}

	writeError(w, http.StatusBadRequest, err.Error())
}

func (h *Handler) writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusBadRequest, "Pet with this id wasn't found!")
		return
	}

	writeError(w, http.StatusInternalServerError, err.Error())
}

// ListPets handles GET /api/pets
func (h *Handler) ListPets(w http.ResponseWriter, r *http.Request) {
	var filter *string

	if err := runtime.BindQueryParameter("form", true, false, "filter", r.URL.Query(), &filter); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid format for parameter filter: "+err.Error())
		return
	}

	var owner string

	switch {
	case filter == nil, *filter == "":
	case *filter == filterMyPets:
		owner = accountFromContext(r.Context())
	default:
		writeError(w, http.StatusBadRequest, "Filter value is incorrect")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"pets": h.store.ListPets(owner),
	})
}

// CreatePet handles POST /api/pets
func (h *Handler) CreatePet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	photo, err := readPhoto(r)
	if err != nil {
		writePhotoError(w, err)
		return
	}

	pet := h.store.CreatePet(accountFromContext(r.Context()), petFields(r), photo)

	h.logger.V(1).Info("created pet", "id", pet.ID, "name", pet.Name)

	writeJSON(w, http.StatusOK, pet)
}

// CreatePetSimple handles POST /api/create_pet_simple
func (h *Handler) CreatePetSimple(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form: "+err.Error())
		return
	}

	pet := h.store.CreatePet(accountFromContext(r.Context()), petFields(r), "")

	h.logger.V(1).Info("created pet without photo", "id", pet.ID, "name", pet.Name)

	writeJSON(w, http.StatusOK, pet)
}

// UpdatePet handles PUT /api/pets/{pet_id}
func (h *Handler) UpdatePet(w http.ResponseWriter, r *http.Request) {
	id, err := petID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form: "+err.Error())
		return
	}

	pet, err := h.store.UpdatePet(accountFromContext(r.Context()), id, petFields(r))
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pet)
}

// DeletePet handles DELETE /api/pets/{pet_id}
func (h *Handler) DeletePet(w http.ResponseWriter, r *http.Request) {
	id, err := petID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.DeletePet(accountFromContext(r.Context()), id); err != nil {
		h.writeStoreError(w, err)
		return
	}

	h.logger.V(1).Info("deleted pet", "id", id)

	w.WriteHeader(http.StatusOK)
}

// SetPetPhoto handles POST /api/pets/set_photo/{pet_id}
func (h *Handler) SetPetPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := petID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	photo, err := readPhoto(r)
	if err != nil {
		writePhotoError(w, err)
		return
	}

	pet, err := h.store.SetPhoto(accountFromContext(r.Context()), id, photo)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pet)
}
