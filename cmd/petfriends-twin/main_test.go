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

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRunBadFlag ensures unknown flags are a usage error.
func TestRunBadFlag(t *testing.T) {
	t.Parallel()

	require.Equal(t, 2, run([]string{"--no-such-flag"}))
}

// TestRunSetupFailure ensures setup errors return an exit code instead of
// exiting, so deferred cleanup runs.
func TestRunSetupFailure(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.json")

	require.Equal(t, 1, run([]string{"--seed-file", missing, "--port", "0"}))
}
