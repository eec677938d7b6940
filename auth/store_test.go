//
// Date: 2026-01-14
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Unit tests for the token cache backends.
//

package auth

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
	"golang.org/x/oauth2"
)

// TestFileStoreRoundTrip checks that a saved token reloads with all fields
// intact.
func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "token.json"))

	saved := &oauth2.Token{
		AccessToken:  "access-123",
		TokenType:    "Bearer",
		RefreshToken: "refresh-456",
		Expiry:       time.Now().Add(time.Hour).Truncate(time.Second),
	}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved.AccessToken, loaded.AccessToken)
	assert.Equal(t, saved.RefreshToken, loaded.RefreshToken)
	assert.True(t, saved.Expiry.Equal(loaded.Expiry))
}

// TestFileStoreMissing checks that a missing cache file loads as no token.
func TestFileStoreMissing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))

	token, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, token)
}

// TestFileStoreCorrupt checks that unparsable contents load as an error.
func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte("�garbage"), 0600))

	store := NewFileStore(path)
	_, err := store.Load()
	assert.Error(t, err)
}

// TestFileStorePermissions checks that the cache file is only readable by
// its owner.
func TestFileStorePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	store := NewFileStore(filepath.Join(t.TempDir(), "token.json"))
	require.NoError(t, store.Save(&oauth2.Token{AccessToken: "a"}))

	info, err := os.Stat(store.Path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

// TestFileStoreClear checks that clearing removes the file and is a no-op
// when already gone.
func TestFileStoreClear(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "token.json"))
	require.NoError(t, store.Save(&oauth2.Token{AccessToken: "a"}))

	require.NoError(t, store.Clear())
	token, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, token)

	assert.NoError(t, store.Clear())
}

// TestKeyringStoreRoundTrip exercises the keyring backend against the mock
// keyring shipped with the library.
func TestKeyringStoreRoundTrip(t *testing.T) {
	keyring.MockInit()

	store := NewKeyringStore()
	require.NoError(t, store.Clear())

	token, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, token)

	saved := &oauth2.Token{AccessToken: "access-123", RefreshToken: "refresh-456"}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved.AccessToken, loaded.AccessToken)
	assert.Equal(t, saved.RefreshToken, loaded.RefreshToken)

	require.NoError(t, store.Clear())
	token, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, token)
}
