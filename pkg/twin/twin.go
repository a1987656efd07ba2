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

// Package twin provides an in-memory behavioural clone of the PetFriends
// API, used to run the end-to-end suites without the public service.
package twin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"

	"github.com/nscaledev/petfriends-e2e/pkg/openapi"
	"github.com/nscaledev/petfriends-e2e/pkg/twin/api"
	"github.com/nscaledev/petfriends-e2e/pkg/twin/store"
)

const shutdownTimeout = 10 * time.Second

// Options configure a Twin.
type Options struct {
	// Email and Password register the primary account, which starts
	// with one pet. Ignored when SeedFile is set.
	Email    string
	Password string
	// SeedFile is a JSON state snapshot loaded instead of the default
	// seed data.
	SeedFile string
	Logger   logr.Logger
}

// Twin wraps a chi router serving the PetFriends API over an in-memory
// store.
type Twin struct {
	Router  *chi.Mux
	Store   *store.MemoryStore
	Logger  logr.Logger
	metrics *Metrics
	// seed is the initial state snapshot, captured once so that resets
	// restore identical account and pet IDs.
	seed []byte
}

// New creates a seeded twin.
func New(ctx context.Context, options Options) (*Twin, error) {
	if options.SeedFile == "" && (options.Email == "" || options.Password == "") {
		return nil, errors.New("twin requires either a seed file or primary account credentials")
	}

	validator, err := openapi.NewValidator(ctx)
	if err != nil {
		return nil, err
	}

	keys, err := api.NewKeyIssuer()
	if err != nil {
		return nil, err
	}

	seed, err := initialState(options)
	if err != nil {
		return nil, err
	}

	t := &Twin{
		Router: chi.NewRouter(),
		Store:  store.New(),
		Logger: options.Logger,
		seed:   seed,
	}

	if err := t.Seed(); err != nil {
		return nil, err
	}

	t.metrics = NewMetrics(t.Store)

	t.Router.Use(chimw.RequestID)
	t.Router.Use(chimw.RealIP)
	t.Router.Use(chimw.Recoverer)
	t.Router.Use(t.requestLog)
	t.Router.Use(t.metrics.Middleware)

	handler := api.NewHandler(t.Store, keys, api.Options{
		Validator: validator,
		Reset:     t.Seed,
		Logger:    t.Logger.WithName("api"),
	})
	handler.Routes(t.Router)

	t.Router.Method(http.MethodGet, "/metrics", t.metrics.Handler())

	return t, nil
}

// Handler returns the twin's HTTP handler.
func (t *Twin) Handler() http.Handler {
	return t.Router
}

// Seed replaces the store contents with the initial state in one step.
// Keys and cookies issued before a reset stay valid.
func (t *Twin) Seed() error {
	return t.Store.LoadState(t.seed)
}

// initialState builds the seed snapshot from the seed file or the default
// accounts. The seed file is read once, at startup.
func initialState(options Options) ([]byte, error) {
	s := store.New()

	if options.SeedFile != "" {
		data, err := os.ReadFile(options.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("reading seed file: %w", err)
		}

		if err := s.LoadState(data); err != nil {
			return nil, fmt.Errorf("loading seed file: %w", err)
		}
	} else if err := seedDefault(s, options.Email, options.Password); err != nil {
		return nil, err
	}

	// Snapshot again so accounts without IDs in the seed file get fixed ones.
	seed, err := json.Marshal(s.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("encoding seed state: %w", err)
	}

	return seed, nil
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func (t *Twin) Serve(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           t.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)

	go func() {
		errs <- server.ListenAndServe()
	}()

	t.Logger.Info("twin listening", "addr", addr)

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	t.Logger.Info("twin shutting down")

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// requestLog logs each request at V(1).
func (t *Twin) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		t.Logger.V(1).Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", statusOf(ww),
			"duration", time.Since(start).String(),
			"requestID", chimw.GetReqID(r.Context()),
			"traceparent", r.Header.Get("Traceparent"),
		)
	})
}

// statusOf reports the written status, handlers that write nothing
// implicitly answer 200.
func statusOf(ww chimw.WrapResponseWriter) int {
	if ww.Status() == 0 {
		return http.StatusOK
	}

	return ww.Status()
}
