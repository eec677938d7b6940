//
// Date: 2026-01-12
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Credential resolution for the Spotify OAuth flow.
//

package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	// EnvFileName is the well-known credentials file in the user's home
	// directory, consulted when no ./.env file is present.
	EnvFileName = ".spotify-cli.env"

	envClientID     = "SPOTIFY_CLIENT_ID"
	envClientSecret = "SPOTIFY_CLIENT_SECRET"
	envRedirectURI  = "SPOTIFY_REDIRECT_URI"
)

// Credentials holds the three values needed to start an OAuth flow.
// They are immutable once loaded.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// ConfigurationError reports every missing and malformed configuration
// field at once, so the user can fix the whole file in one pass.
type ConfigurationError struct {
	Missing   []string
	Malformed map[string]string
}

// Error renders the problem list as a single human-readable message.
func (e *ConfigurationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(e.Missing, ", "))
	}

	keys := make([]string, 0, len(e.Malformed))
	for k := range e.Malformed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s is invalid: %s", k, e.Malformed[k]))
	}

	return "configuration: " + strings.Join(parts, "; ")
}

// Resolve loads credentials from environment variables, falling back to a
// key=value credentials file for any variable that is not set. When path is
// empty the file is looked up at ./.env and then ~/.spotify-cli.env.
//
// All three fields are validated eagerly. Either a fully populated
// Credentials is returned or a *ConfigurationError naming every problem;
// there are no defaults for missing fields.
func Resolve(path string) (*Credentials, error) {
	fileVals, err := readEnvFile(path)
	if err != nil {
		return nil, err
	}

	get := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fileVals[key]
	}

	creds := &Credentials{
		ClientID:     get(envClientID),
		ClientSecret: get(envClientSecret),
		RedirectURI:  get(envRedirectURI),
	}

	cerr := &ConfigurationError{Malformed: map[string]string{}}
	if creds.ClientID == "" {
		cerr.Missing = append(cerr.Missing, envClientID)
	}
	if creds.ClientSecret == "" {
		cerr.Missing = append(cerr.Missing, envClientSecret)
	}
	if creds.RedirectURI == "" {
		cerr.Missing = append(cerr.Missing, envRedirectURI)
	} else if reason := validateRedirectURI(creds.RedirectURI); reason != "" {
		cerr.Malformed[envRedirectURI] = reason
	}

	if len(cerr.Missing) > 0 || len(cerr.Malformed) > 0 {
		return nil, cerr
	}

	return creds, nil
}

// validateRedirectURI checks that the redirect address is a well-formed URL
// with an explicit scheme and port. It returns an empty string when the
// value is acceptable.
func validateRedirectURI(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Sprintf("not a valid URL: %v", err)
	}
	if u.Scheme == "" {
		return "scheme is required (e.g. http://127.0.0.1:8888/callback)"
	}
	if u.Host == "" || u.Port() == "" {
		return "an explicit port is required (e.g. http://127.0.0.1:8888/callback)"
	}
	return ""
}

// readEnvFile reads the first credentials file that exists. The file is
// parsed with godotenv.Read so the process environment is never mutated and
// environment variables keep precedence. A file the user asked for by path
// must be readable; the well-known locations are optional.
func readEnvFile(path string) (map[string]string, error) {
	if path != "" {
		vals, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("read credentials file %s: %w", path, err)
		}
		log.Debugf("loaded credentials from %s", path)
		return vals, nil
	}

	candidates := []string{".env"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, EnvFileName))
	}

	for _, p := range candidates {
		vals, err := godotenv.Read(p)
		if err != nil {
			log.Debugf("skipping credentials file %s: %v", p, err)
			continue
		}
		log.Debugf("loaded credentials from %s", p)
		return vals, nil
	}

	return nil, nil
}
