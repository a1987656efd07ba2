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

package api_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nscaledev/petfriends-e2e/pkg/twin/api"
)

// TestKeyRoundTrip ensures an issued key resolves to its account.
func TestKeyRoundTrip(t *testing.T) {
	t.Parallel()

	keys, err := api.NewKeyIssuer()
	require.NoError(t, err)

	key, err := keys.Issue("account-1")
	require.NoError(t, err)

	accountID, err := keys.Verify(key)
	require.NoError(t, err)
	require.Equal(t, "account-1", accountID)
}

// TestKeyFromAnotherIssuer ensures keys are bound to the twin that issued
// them.
func TestKeyFromAnotherIssuer(t *testing.T) {
	t.Parallel()

	a, err := api.NewKeyIssuer()
	require.NoError(t, err)

	b, err := api.NewKeyIssuer()
	require.NoError(t, err)

	key, err := a.Issue("account-1")
	require.NoError(t, err)

	_, err = b.Verify(key)
	require.ErrorIs(t, err, api.ErrInvalidKey)

	_, err = a.Verify("not-a-key")
	require.ErrorIs(t, err, api.ErrInvalidKey)

	_, err = a.Verify("")
	require.ErrorIs(t, err, api.ErrInvalidKey)
}
