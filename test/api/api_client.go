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

//nolint:err113,revive // dynamic errors and naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"
)

//go:generate mockgen -destination=mock/session.go -package=mock github.com/nscaledev/petfriends-e2e/test/api SessionProvider

// SessionProvider performs a browser style login.
type SessionProvider interface {
	Login(ctx context.Context, credentials Credentials) (*Session, error)
}

type APIClient struct {
	baseURL   string
	client    *http.Client
	config    *TestConfig
	endpoints *Endpoints
}

var _ SessionProvider = &APIClient{}

func NewAPIClient(baseURL string) (*APIClient, error) {
	config, err := LoadTestConfig()
	if err != nil {
		return nil, err
	}

	if baseURL == "" {
		baseURL = config.BaseURL
	}

	return newAPIClientWithConfig(config, baseURL), nil
}

func NewAPIClientWithConfig(config *TestConfig) *APIClient {
	return newAPIClientWithConfig(config, config.BaseURL)
}

// common constructor logic.
func newAPIClientWithConfig(config *TestConfig, baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		config:    config,
		endpoints: NewEndpoints(),
	}
}

// BaseURL returns the service root the client talks to.
func (c *APIClient) BaseURL() string {
	return c.baseURL
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logErrorWithStatus logs an error with HTTP status code.
func (c *APIClient) logErrorWithStatus(method, path string, duration time.Duration, statusCode int, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s status=%d traceparent=%s error=%v\n", method, path, context, duration, statusCode, traceParent, err)
	c.logTraceContext(traceParent)
}

// logUnexpectedStatus logs an unexpected HTTP status code.
func (c *APIClient) logUnexpectedStatus(method, path string, expectedStatus, actualStatus int, body, traceParent string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] UNEXPECTED STATUS expected=%d got=%d body=%s traceparent=%s\n", method, path, expectedStatus, actualStatus, body, traceParent)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceParent string) {
	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

type requestOptions struct {
	client      *http.Client
	contentType string
	// header values are set verbatim, PetFriends expects lower case
	// names such as auth_key.
	header map[string]string
}

type requestOption func(*requestOptions)

func withContentType(contentType string) requestOption {
	return func(o *requestOptions) {
		o.contentType = contentType
	}
}

func withHeader(key, value string) requestOption {
	return func(o *requestOptions) {
		if o.header == nil {
			o.header = map[string]string{}
		}

		o.header[key] = value
	}
}

func withAuthKey(key string) requestOption {
	return withHeader("auth_key", key)
}

func withCookie(cookie string) requestOption {
	return withHeader("Cookie", cookie)
}

func withHTTPClient(client *http.Client) requestOption {
	return func(o *requestOptions) {
		o.client = client
	}
}

//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) doRequest(ctx context.Context, method, path string, body io.Reader, expectedStatus int, opts ...requestOption) (*http.Response, []byte, error) {
	options := &requestOptions{
		client: c.client,
	}

	for _, opt := range opts {
		opt(options)
	}

	fullURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")
	req.Header.Set("Accept", "application/json")

	if options.contentType != "" {
		req.Header.Set("Content-Type", options.contentType)
	}

	for key, value := range options.header {
		req.Header[key] = []string{value}
	}

	start := time.Now()
	resp, err := options.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, "http request failed")
		return nil, nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logErrorWithStatus(method, path, duration, resp.StatusCode, traceParent, err, "reading response body")
		return resp, nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(respBody))
	}

	if expectedStatus > 0 && resp.StatusCode != expectedStatus {
		c.logUnexpectedStatus(method, path, expectedStatus, resp.StatusCode, string(respBody), traceParent)

		return resp, respBody, &ResponseError{
			Method:         method,
			Path:           path,
			ExpectedStatus: expectedStatus,
			StatusCode:     resp.StatusCode,
			Body:           string(respBody),
			TraceID:        extractTraceID(traceParent),
		}
	}

	return resp, respBody, nil
}

func decodePet(respBody []byte) (*Pet, error) {
	var pet Pet
	if err := json.Unmarshal(respBody, &pet); err != nil {
		return nil, fmt.Errorf("unmarshaling pet response: %w", err)
	}

	return &pet, nil
}

func petForm(payload PetPayload) url.Values {
	form := url.Values{}
	form.Set("name", payload.Name)
	form.Set("animal_type", payload.AnimalType)
	form.Set("age", payload.Age)

	return form
}

// multipartBody encodes the given fields followed by an optional photo
// upload under the pet_photo field.
func multipartBody(fields [][2]string, photoPath string) (*bytes.Buffer, string, error) {
	buffer := &bytes.Buffer{}
	writer := multipart.NewWriter(buffer)

	for _, field := range fields {
		if err := writer.WriteField(field[0], field[1]); err != nil {
			return nil, "", fmt.Errorf("writing field %s: %w", field[0], err)
		}
	}

	if photoPath != "" {
		photo, err := os.ReadFile(photoPath)
		if err != nil {
			return nil, "", fmt.Errorf("reading pet photo: %w", err)
		}

		contentType := mime.TypeByExtension(filepath.Ext(photoPath))
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="pet_photo"; filename="%s"`, filepath.Base(photoPath)))
		header.Set("Content-Type", contentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("creating photo part: %w", err)
		}

		if _, err := part.Write(photo); err != nil {
			return nil, "", fmt.Errorf("writing photo part: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart writer: %w", err)
	}

	return buffer, writer.FormDataContentType(), nil
}

// Login posts the credentials to the login form and returns the
// authorization cookie echoed in the headers of the final request.
func (c *APIClient) Login(ctx context.Context, credentials Credentials) (*Session, error) {
	path := c.endpoints.Login()

	// A fresh jar per login so sessions never leak between callers.
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	client := &http.Client{
		Timeout: c.client.Timeout,
		Jar:     jar,
	}

	form := url.Values{}
	form.Set("email", credentials.Email)
	form.Set("pass", credentials.Password)

	//nolint:bodyclose // response body is closed in doRequest
	resp, _, err := c.doRequest(ctx, http.MethodPost, path, strings.NewReader(form.Encode()), http.StatusOK,
		withContentType("application/x-www-form-urlencoded"),
		withHTTPClient(client))
	if resp == nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}

	session := &Session{
		StatusCode: resp.StatusCode,
	}

	if err != nil {
		return session, fmt.Errorf("logging in: %w", err)
	}

	if resp.Request != nil {
		session.Cookie = resp.Request.Header.Get("Cookie")
	}

	if session.Cookie == "" {
		session.Cookie = cookieHeader(jar, c.baseURL)
	}

	return session, nil
}

// cookieHeader renders the jar's cookies for rawURL as a Cookie header value.
func cookieHeader(jar http.CookieJar, rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	cookies := jar.Cookies(u)
	parts := make([]string, len(cookies))

	for i, cookie := range cookies {
		parts[i] = cookie.Name + "=" + cookie.Value
	}

	return strings.Join(parts, "; ")
}

// ListAllPets lists every pet visible to a browser session.
func (c *APIClient) ListAllPets(ctx context.Context, cookie string) (*PetList, error) {
	path := c.endpoints.AllPets()

	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodGet, path, nil, http.StatusOK, withCookie(cookie))
	if err != nil {
		return nil, fmt.Errorf("listing all pets: %w", err)
	}

	var pets PetList
	if err := json.Unmarshal(respBody, &pets); err != nil {
		return nil, fmt.Errorf("unmarshaling pets response: %w", err)
	}

	return &pets, nil
}

// GetAPIKey exchanges credentials for an API key.
func (c *APIClient) GetAPIKey(ctx context.Context, credentials Credentials) (*APIKey, error) {
	path := c.endpoints.APIKey()

	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodGet, path, nil, http.StatusOK,
		withHeader("email", credentials.Email),
		withHeader("password", credentials.Password))
	if err != nil {
		return nil, fmt.Errorf("getting api key: %w", err)
	}

	var key APIKey
	if err := json.Unmarshal(respBody, &key); err != nil {
		return nil, fmt.Errorf("unmarshaling api key response: %w", err)
	}

	return &key, nil
}

// ListPets lists pets, filter is either FilterAll or FilterMyPets.
func (c *APIClient) ListPets(ctx context.Context, key *APIKey, filter string) (*PetList, error) {
	path := c.endpoints.ListPets(filter)

	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodGet, path, nil, http.StatusOK, withAuthKey(key.Key))
	if err != nil {
		return nil, fmt.Errorf("listing pets: %w", err)
	}

	var pets PetList
	if err := json.Unmarshal(respBody, &pets); err != nil {
		return nil, fmt.Errorf("unmarshaling pets response: %w", err)
	}

	return &pets, nil
}

// AddNewPet creates a pet with a photo.
func (c *APIClient) AddNewPet(ctx context.Context, key *APIKey, payload PetPayload) (*Pet, error) {
	path := c.endpoints.CreatePet()

	body, contentType, err := multipartBody([][2]string{
		{"name", payload.Name},
		{"animal_type", payload.AnimalType},
		{"age", payload.Age},
	}, payload.PhotoPath)
	if err != nil {
		return nil, fmt.Errorf("encoding pet body: %w", err)
	}

	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodPost, path, body, http.StatusOK,
		withContentType(contentType),
		withAuthKey(key.Key))
	if err != nil {
		return nil, fmt.Errorf("creating pet: %w", err)
	}

	return decodePet(respBody)
}

// AddNewPetWithoutPhoto creates a pet without a photo.
func (c *APIClient) AddNewPetWithoutPhoto(ctx context.Context, key *APIKey, payload PetPayload) (*Pet, error) {
	path := c.endpoints.CreatePetSimple()

	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodPost, path, strings.NewReader(petForm(payload).Encode()), http.StatusOK,
		withContentType("application/x-www-form-urlencoded"),
		withAuthKey(key.Key))
	if err != nil {
		return nil, fmt.Errorf("creating pet without photo: %w", err)
	}

	return decodePet(respBody)
}

// SetPetPhoto replaces the photo of an existing pet.
func (c *APIClient) SetPetPhoto(ctx context.Context, key *APIKey, petID, photoPath string) (*Pet, error) {
	path := c.endpoints.SetPetPhoto(petID)

	body, contentType, err := multipartBody(nil, photoPath)
	if err != nil {
		return nil, fmt.Errorf("encoding photo body: %w", err)
	}

	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodPost, path, body, http.StatusOK,
		withContentType(contentType),
		withAuthKey(key.Key))
	if err != nil {
		return nil, fmt.Errorf("setting pet photo: %w", err)
	}

	return decodePet(respBody)
}

// UpdatePetInfo replaces the name, animal type and age of an existing pet.
func (c *APIClient) UpdatePetInfo(ctx context.Context, key *APIKey, petID string, payload PetPayload) (*Pet, error) {
	path := c.endpoints.UpdatePet(petID)

	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodPut, path, strings.NewReader(petForm(payload).Encode()), http.StatusOK,
		withContentType("application/x-www-form-urlencoded"),
		withAuthKey(key.Key))
	if err != nil {
		return nil, fmt.Errorf("updating pet: %w", err)
	}

	return decodePet(respBody)
}

func (c *APIClient) DeletePet(ctx context.Context, key *APIKey, petID string) error {
	path := c.endpoints.DeletePet(petID)

	//nolint:bodyclose // response body is closed in doRequest
	_, _, err := c.doRequest(ctx, http.MethodDelete, path, nil, http.StatusOK, withAuthKey(key.Key))
	if err != nil {
		return fmt.Errorf("deleting pet: %w", err)
	}

	return nil
}
