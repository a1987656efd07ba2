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

package openapi_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nscaledev/petfriends-e2e/pkg/openapi"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	doc, err := openapi.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, doc.Paths.Find("/api/pets/{pet_id}"))
	require.NotNil(t, doc.Paths.Find("/api/create_pet_simple"))
}

func newValidator(t *testing.T) *openapi.Validator {
	t.Helper()

	validator, err := openapi.NewValidator(context.Background())
	require.NoError(t, err)

	return validator
}

func formRequest(method, target string, form url.Values) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.Header.Set("auth_key", "key")

	return r
}

func TestValidateRequestSimplePet(t *testing.T) {
	t.Parallel()

	validator := newValidator(t)

	form := url.Values{}
	form.Set("name", "Кто я")
	form.Set("animal_type", "Жираф")
	form.Set("age", "вот это чушь")

	require.NoError(t, validator.ValidateRequest(formRequest(http.MethodPost, "/api/create_pet_simple", form)))
}

func TestValidateRequestMissingField(t *testing.T) {
	t.Parallel()

	validator := newValidator(t)

	form := url.Values{}
	form.Set("name", "Рон")

	require.Error(t, validator.ValidateRequest(formRequest(http.MethodPut, "/api/pets/abc", form)))
}

func TestValidateRequestMissingAuthKey(t *testing.T) {
	t.Parallel()

	validator := newValidator(t)

	r := httptest.NewRequest(http.MethodGet, "/api/pets?filter=my_pets", nil)
	require.Error(t, validator.ValidateRequest(r))
}

func TestValidateRequestUnknownFilter(t *testing.T) {
	t.Parallel()

	validator := newValidator(t)

	r := httptest.NewRequest(http.MethodGet, "/api/pets?filter=their_pets", nil)
	r.Header.Set("auth_key", "key")
	require.Error(t, validator.ValidateRequest(r))
}

func TestValidateRequestPhotoUpload(t *testing.T) {
	t.Parallel()

	validator := newValidator(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("name", "Ронни"))
	require.NoError(t, writer.WriteField("animal_type", "Русская борзая"))
	require.NoError(t, writer.WriteField("age", "3"))

	part, err := writer.CreateFormFile("pet_photo", "dog1.jpg")
	require.NoError(t, err)

	_, err = part.Write([]byte{0xff, 0xd8, 0xff, 0xe0})
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	r := httptest.NewRequest(http.MethodPost, "/api/pets", body)
	r.Header.Set("Content-Type", writer.FormDataContentType())
	r.Header.Set("auth_key", "key")

	require.NoError(t, validator.ValidateRequest(r))
}

func TestValidateRequestUnknownPath(t *testing.T) {
	t.Parallel()

	validator := newValidator(t)

	r := httptest.NewRequest(http.MethodGet, "/api/owners", nil)
	require.Error(t, validator.ValidateRequest(r))
}
