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

package log_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nscaledev/petfriends-e2e/pkg/log"
)

func TestNew(t *testing.T) {
	t.Parallel()

	logger, sync, err := log.New(false)
	require.NoError(t, err)
	require.NotNil(t, sync)
	require.True(t, logger.Enabled())
	require.False(t, logger.V(1).Enabled())
}

func TestNewVerbose(t *testing.T) {
	t.Parallel()

	logger, _, err := log.New(true)
	require.NoError(t, err)
	require.True(t, logger.V(1).Enabled())
}
