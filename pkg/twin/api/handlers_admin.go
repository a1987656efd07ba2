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

// AdminState handles GET /admin/state
func (h *Handler) AdminState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Snapshot())
}

// AdminReset handles POST /admin/reset
func (h *Handler) AdminReset(w http.ResponseWriter, _ *http.Request) {
	if h.reset == nil {
		h.store.Reset()
	} else if err := h.reset(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.logger.Info("state reset")

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "reset",
	})
}
