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
	"net/http"
)

// Login handles POST /login
// The form carries email and pass, a successful login sets the session
// cookie and redirects to the pet list like the real site does.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form: "+err.Error())
		return
	}

	account, ok := h.store.Authenticate(r.PostFormValue("email"), r.PostFormValue("pass"))
	if !ok {
		writeError(w, http.StatusForbidden, "This user wasn't found in database")
		return
	}

	token, err := h.keys.Issue(account.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})

	http.Redirect(w, r, "/all_pets", http.StatusFound)
}

// AllPets handles GET /all_pets
func (h *Handler) AllPets(w http.ResponseWriter, r *http.Request) {
	var raw string
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		raw = cookie.Value
	}

	if _, ok := h.authenticate(raw); !ok {
		writeError(w, http.StatusForbidden, "Please log in")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"pets": h.store.ListPets(""),
	})
}

// GetAPIKey handles GET /api/key
func (h *Handler) GetAPIKey(w http.ResponseWriter, r *http.Request) {
	account, ok := h.store.Authenticate(r.Header.Get("email"), r.Header.Get("password"))
	if !ok {
		writeError(w, http.StatusForbidden, "This user wasn't found in database")
		return
	}

	key, err := h.keys.Issue(account.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"key": key,
	})
}
