// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 luke396

// Package config handles lmo environment configuration.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
)

var (
	// ErrNoEnvFile indicates no .env file was found.
	ErrNoEnvFile = errors.New("no .env file found; create one with the required environment variables")

	// ErrMissingEnv indicates one or more required environment variables are unset or empty.
	ErrMissingEnv = errors.New("missing environment variables")
)

// Environment variable names read by Load.
const (
	EnvAPIKey  = "GLM_API"
	EnvBaseURL = "API_URL"
)

// Model is the chat model every request is issued against.
const Model = "glm4"

// Config holds the resolved API credentials and model. It is built once
// at startup and passed into the transform client; nothing reads the
// environment after Load returns.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Load reads the .env file (or the given filenames) into the process
// environment and resolves the required variables through getenv.
// Every missing variable is reported, not just the first.
func Load(getenv func(string) string, filenames ...string) (*Config, error) {
	if err := godotenv.Load(filenames...); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoEnvFile, err)
	}

	var missing []string
	for _, name := range []string{EnvAPIKey, EnvBaseURL} {
		if getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingEnv, strings.Join(missing, ", "))
	}

	return &Config{
		APIKey:  getenv(EnvAPIKey),
		BaseURL: getenv(EnvBaseURL),
		Model:   Model,
	}, nil
}
