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

// Package api implements the PetFriends-compatible HTTP API handlers for the
// twin.
package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-logr/logr"

	"github.com/nscaledev/petfriends-e2e/pkg/openapi"
	"github.com/nscaledev/petfriends-e2e/pkg/twin/store"
)

// SessionCookie is the name of the cookie set by /login.
const SessionCookie = "user_id"

// Handler holds all API handler state.
type Handler struct {
	store     *store.MemoryStore
	keys      *KeyIssuer
	validator *openapi.Validator
	reset     func() error
	logger    logr.Logger
}

// Options configure a Handler.
type Options struct {
	// Validator, if set, checks /api requests against the OpenAPI document.
	Validator *openapi.Validator
	// Reset restores the initial state for POST /admin/reset.
	Reset  func() error
	Logger logr.Logger
}

// NewHandler creates a new API handler.
func NewHandler(s *store.MemoryStore, keys *KeyIssuer, options Options) *Handler {
	return &Handler{
		store:     s,
		keys:      keys,
		validator: options.Validator,
		reset:     options.Reset,
		logger:    options.Logger,
	}
}

// Routes mounts the PetFriends routes and admin extras.
func (h *Handler) Routes(r chi.Router) {
	// Browser session routes.
	r.Post("/login", h.Login)
	r.Get("/all_pets", h.AllPets)

	r.Route("/api", func(r chi.Router) {
		r.Get("/key", h.GetAPIKey)

		r.Group(func(r chi.Router) {
			r.Use(h.authKeyMiddleware)
			r.Use(h.validationMiddleware)

			r.Get("/pets", h.ListPets)
			r.Post("/pets", h.CreatePet)
			r.Post("/create_pet_simple", h.CreatePetSimple)
			r.Put("/pets/{pet_id}", h.UpdatePet)
			r.Delete("/pets/{pet_id}", h.DeletePet)
			r.Post("/pets/set_photo/{pet_id}", h.SetPetPhoto)
		})
	})

	r.Get("/openapi.yaml", h.OpenAPIDocument)

	// Admin extras (no auth required)
	r.Get("/admin/state", h.AdminState)
	r.Post("/admin/reset", h.AdminReset)
}

type accountKey struct{}

func withAccount(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, accountKey{}, accountID)
}

// accountFromContext returns the account resolved by authKeyMiddleware.
func accountFromContext(ctx context.Context) string {
	accountID, _ := ctx.Value(accountKey{}).(string)
	return accountID
}

// authenticate resolves an issued key or cookie to an existing account.
func (h *Handler) authenticate(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}

	accountID, err := h.keys.Verify(raw)
	if err != nil {
		h.logger.V(1).Info("rejected key", "error", err.Error())
		return "", false
	}

	if _, ok := h.store.Account(accountID); !ok {
		return "", false
	}

	return accountID, true
}

// authKeyMiddleware validates the auth_key header.
func (h *Handler) authKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := h.authenticate(r.Header.Get("auth_key"))
		if !ok {
			writeError(w, http.StatusForbidden, "Please provide 'auth_key' Header")
			return
		}

		next.ServeHTTP(w, r.WithContext(withAccount(r.Context(), accountID)))
	})
}

// validationMiddleware rejects requests that do not match the OpenAPI
// document.
func (h *Handler) validationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.validator == nil {
			next.ServeHTTP(w, r)
			return
		}

		if err := h.validator.ValidateRequest(r); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}

// OpenAPIDocument handles GET /openapi.yaml
func (h *Handler) OpenAPIDocument(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)

	_, _ = w.Write(openapi.Document())
}
