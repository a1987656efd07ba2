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
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const keyIssuer = "petfriends-twin"

// ErrInvalidKey is returned for keys and cookies the twin did not issue.
var ErrInvalidKey = errors.New("invalid key")

// KeyIssuer signs and verifies the opaque keys handed out by /api/key and
// the /login session cookie.
type KeyIssuer struct {
	secret []byte
	now    func() time.Time
}

// NewKeyIssuer creates an issuer with a random signing secret, keys do not
// survive a twin restart.
func NewKeyIssuer() (*KeyIssuer, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generating key secret: %w", err)
	}

	return &KeyIssuer{
		secret: secret,
		now:    time.Now,
	}, nil
}

// Issue returns a key bound to accountID.
func (k *KeyIssuer) Issue(accountID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:   keyIssuer,
		Subject:  accountID,
		IssuedAt: jwt.NewNumericDate(k.now()),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(k.secret)
	if err != nil {
		return "", fmt.Errorf("signing key: %w", err)
	}

	return signed, nil
}

// Verify returns the account ID a key was issued for.
func (k *KeyIssuer) Verify(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return k.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(keyIssuer))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidKey)
	}

	return claims.Subject, nil
}
