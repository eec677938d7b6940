//
// Date: 2026-01-17
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Unit tests for command wiring and token store selection.
//

package main

import (
	"strings"
	"testing"

	"github.com/cloudmanic/sptfy/auth"
)

// TestCommandsRegistered tests that every user-facing command is wired in.
func TestCommandsRegistered(t *testing.T) {
	expected := []string{
		"login", "logout",
		"now", "play", "pause", "next", "prev", "volume", "shuffle",
		"search", "playlists", "playlist", "devices", "top",
	}

	registered := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range expected {
		if !registered[name] {
			t.Errorf("command %q is not registered", name)
		}
	}
}

// TestNewTokenStore tests store selection via SPOTIFY_TOKEN_STORE.
func TestNewTokenStore(t *testing.T) {
	t.Setenv("SPOTIFY_TOKEN_STORE", "")
	if _, ok := newTokenStore().(*auth.FileStore); !ok {
		t.Error("expected a file store by default")
	}

	t.Setenv("SPOTIFY_TOKEN_STORE", "keyring")
	if _, ok := newTokenStore().(*auth.KeyringStore); !ok {
		t.Error("expected a keyring store when SPOTIFY_TOKEN_STORE=keyring")
	}
}

// TestCredentialsHelp tests that setup guidance names the env vars.
func TestCredentialsHelp(t *testing.T) {
	help := credentialsHelp()
	for _, want := range []string{
		"developer.spotify.com/dashboard",
		"SPOTIFY_CLIENT_ID",
		"SPOTIFY_CLIENT_SECRET",
		"SPOTIFY_REDIRECT_URI",
	} {
		if !strings.Contains(help, want) {
			t.Errorf("help text missing %q", want)
		}
	}
}
