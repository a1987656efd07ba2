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
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

// Credentials used when the suites run against the in-process twin and no
// explicit credentials are configured.
const (
	LocalTwinEmail    = "qa@petfriends.test"
	LocalTwinPassword = "petfriends-qa"
)

type TestConfig struct {
	BaseURL         string        `env:"PETFRIENDS_BASE_URL,default=https://petfriends.skillfactory.ru"`
	Email           string        `env:"PETFRIENDS_EMAIL"`
	Password        string        `env:"PETFRIENDS_PASSWORD"`
	PhotoPath       string        `env:"TEST_PET_PHOTO"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT,default=30s"`
	TestTimeout     time.Duration `env:"TEST_TIMEOUT,default=5m"`
	LocalTwin       bool          `env:"PETFRIENDS_LOCAL_TWIN,default=false"`
	SkipIntegration bool          `env:"SKIP_INTEGRATION,default=false"`
	DebugLogging    bool          `env:"DEBUG_LOGGING,default=false"`
	LogRequests     bool          `env:"LOG_REQUESTS,default=false"`
	LogResponses    bool          `env:"LOG_RESPONSES,default=false"`
}

// Credentials returns the configured credential pair.
func (c *TestConfig) Credentials() Credentials {
	return Credentials{
		Email:    c.Email,
		Password: c.Password,
	}
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{}

	if _, err := env.UnmarshalFromEnviron(config); err != nil {
		return nil, fmt.Errorf("unmarshaling environment: %w", err)
	}

	applyDefaults(config)

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultPhotoPath returns the absolute path of the bundled pet photo.
func DefaultPhotoPath() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return filepath.Join("testdata", "images", "dog1.jpg")
	}

	return filepath.Join(filepath.Dir(file), "testdata", "images", "dog1.jpg")
}

func applyDefaults(config *TestConfig) {
	config.BaseURL = strings.TrimSuffix(config.BaseURL, "/")

	if config.PhotoPath == "" {
		config.PhotoPath = DefaultPhotoPath()
	}

	if config.LocalTwin {
		if config.Email == "" {
			config.Email = LocalTwinEmail
		}

		if config.Password == "" {
			config.Password = LocalTwinPassword
		}
	}

	// Debug logging implies full request and response logging.
	if config.DebugLogging {
		config.LogRequests = true
		config.LogResponses = true
	}
}

func loadEnvFile() {
	envPaths := []string{
		"../../.env", // From test/api/suites directory
		"../.env",    // From test/api directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// godotenv.Load never overrides variables that are already set.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	var missing []string

	required := []struct {
		envVar string
		value  string
	}{
		{"PETFRIENDS_BASE_URL", config.BaseURL},
		{"PETFRIENDS_EMAIL", config.Email},
		{"PETFRIENDS_PASSWORD", config.Password},
	}

	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s. Please set these environment variables, add them to a .env file, or set PETFRIENDS_LOCAL_TWIN=true", strings.Join(missing, ", "))
	}

	if config.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", config.RequestTimeout)
	}

	return nil
}
