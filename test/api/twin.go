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
	"context"
	"fmt"
	"net/http/httptest"

	"github.com/go-logr/logr"
	"github.com/onsi/ginkgo/v2"

	"github.com/nscaledev/petfriends-e2e/pkg/twin"
)

// StartLocalTwin serves an in-process twin seeded with the configured
// credentials and points config.BaseURL at it. The returned function stops
// the server.
func StartLocalTwin(ctx context.Context, config *TestConfig) (func(), error) {
	logger := logr.Discard()
	if config.DebugLogging {
		logger = ginkgo.GinkgoLogr
	}

	t, err := twin.New(ctx, twin.Options{
		Email:    config.Email,
		Password: config.Password,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("starting local twin: %w", err)
	}

	server := httptest.NewServer(t.Handler())

	config.BaseURL = server.URL

	return server.Close, nil
}
