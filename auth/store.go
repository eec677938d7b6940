//
// Date: 2026-01-14
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Token cache storage backends.
//

package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zalando/go-keyring"
	"golang.org/x/oauth2"
)

const (
	// CacheFileName is the default token cache file in the user's home
	// directory. Deleting it resets authentication to a clean state.
	CacheFileName = ".spotify-cli-cache"

	keyringService = "sptfy"
	keyringUser    = "oauth-token"
)

// Store persists the OAuth token between invocations. Load returns
// (nil, nil) when no token is cached; a non-nil error means the cache exists
// but could not be read, which callers treat the same as no token.
type Store interface {
	Load() (*oauth2.Token, error)
	Save(token *oauth2.Token) error
	Clear() error
}

// FileStore caches the token as a JSON file.
type FileStore struct {
	Path string
}

// NewFileStore returns a FileStore at the given path, defaulting to
// CacheFileName in the user's home directory.
func NewFileStore(path string) *FileStore {
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, CacheFileName)
		} else {
			path = CacheFileName
		}
	}
	return &FileStore{Path: path}
}

// Load reads the cached token from disk.
func (s *FileStore) Load() (*oauth2.Token, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read token cache: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("parse token cache: %w", err)
	}

	return &token, nil
}

// Save writes the token to disk, replacing any previous one. The file is
// created with mode 0600 since it holds bearer credentials.
func (s *FileStore) Save(token *oauth2.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0600); err != nil {
		return fmt.Errorf("write token cache: %w", err)
	}
	return nil
}

// Clear removes the cache file. A missing file is not an error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token cache: %w", err)
	}
	return nil
}

// KeyringStore caches the token in the operating system keyring instead of a
// file on disk.
type KeyringStore struct {
	Service string
}

// NewKeyringStore returns a store backed by the OS keyring.
func NewKeyringStore() *KeyringStore {
	return &KeyringStore{Service: keyringService}
}

// Load reads the cached token from the keyring.
func (s *KeyringStore) Load() (*oauth2.Token, error) {
	secret, err := keyring.Get(s.Service, keyringUser)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read token from keyring: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal([]byte(secret), &token); err != nil {
		return nil, fmt.Errorf("parse token from keyring: %w", err)
	}

	return &token, nil
}

// Save writes the token to the keyring.
func (s *KeyringStore) Save(token *oauth2.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	if err := keyring.Set(s.Service, keyringUser, string(data)); err != nil {
		return fmt.Errorf("write token to keyring: %w", err)
	}
	return nil
}

// Clear removes the token from the keyring. A missing entry is not an error.
func (s *KeyringStore) Clear() error {
	if err := keyring.Delete(s.Service, keyringUser); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("remove token from keyring: %w", err)
	}
	return nil
}
