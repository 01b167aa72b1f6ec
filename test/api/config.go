/*
Copyright 2024-2025 the Unikorn Authors.
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
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultBaseURL is where a locally started API-SUT listens.
	DefaultBaseURL = "http://127.0.0.1:8081"

	DefaultRequestTimeout     = 30 * time.Second
	DefaultResponseTimeBudget = 2 * time.Second
	DefaultAPITitle           = "API-SUT"
	DefaultDemoItemName       = "Wireless Mouse"
)

var (
	ErrInvalidBaseURL = errors.New("invalid base URL")
	ErrInvalidTimeout = errors.New("invalid request timeout")
)

type TestConfig struct {
	BaseURL            string
	RequestTimeout     time.Duration
	ResponseTimeBudget time.Duration
	APITitle           string
	DemoItemName       string
	SkipIntegration    bool
	DebugLogging       bool
	LogRequests        bool
	LogResponses       bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if the resulting configuration cannot reach a service.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{
		BaseURL:            getStringWithDefault("API_BASE_URL", DefaultBaseURL),
		RequestTimeout:     getDurationWithDefault("REQUEST_TIMEOUT", DefaultRequestTimeout),
		ResponseTimeBudget: getDurationWithDefault("RESPONSE_TIME_BUDGET", DefaultResponseTimeBudget),
		APITitle:           getStringWithDefault("TEST_API_TITLE", DefaultAPITitle),
		DemoItemName:       getStringWithDefault("TEST_DEMO_ITEM_NAME", DefaultDemoItemName),
		SkipIntegration:    getBoolWithDefault("SKIP_INTEGRATION", false),
		DebugLogging:       getBoolWithDefault("DEBUG_LOGGING", false),
		LogRequests:        getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:       getBoolWithDefault("LOG_RESPONSES", false),
	}

	if config.DebugLogging {
		config.LogRequests = true
		config.LogResponses = true
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration describes a reachable HTTP service.
func (c *TestConfig) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidBaseURL, c.BaseURL, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q must be an absolute http(s) URL, set API_BASE_URL or add it to a .env file", ErrInvalidBaseURL, c.BaseURL)
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidTimeout, c.RequestTimeout)
	}

	return nil
}

func getStringWithDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}

	return value
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../../../test/.env", // From test/api/suites directory
		"../../test/.env",    // From test/contracts/consumer directory
	}

	if explicit := os.Getenv("API_SUT_ENV_FILE"); explicit != "" {
		envPaths = []string{explicit}
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

	// Variables already present in the environment win over the file.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}
