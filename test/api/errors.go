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
	"errors"
	"fmt"
)

// ResponseError is returned when the service answers with a status code
// other than the one the operation expects.
type ResponseError struct {
	Method         string
	Path           string
	ExpectedStatus int
	StatusCode     int
	Body           string
	TraceID        string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status code: expected %d, got %d, body: %s (trace ID: %s)", e.Method, e.Path, e.ExpectedStatus, e.StatusCode, e.Body, e.TraceID)
}

// StatusCode returns the HTTP status code carried by err, or zero if the
// error did not come from a completed HTTP exchange.
func StatusCode(err error) int {
	var responseErr *ResponseError
	if errors.As(err, &responseErr) {
		return responseErr.StatusCode
	}

	return 0
}
