//
// Date: 2026-01-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Unit tests for the authorization code providers.
//

package auth

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseCallbackURL checks extraction of the code and state from pasted
// redirect URLs.
func TestParseCallbackURL(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantCode  string
		wantState string
		wantErr   bool
	}{
		{
			name:      "full redirect URL",
			input:     "http://127.0.0.1:8888/callback?code=abc123&state=nonce-1",
			wantCode:  "abc123",
			wantState: "nonce-1",
		},
		{
			name:     "missing state still parses",
			input:    "http://127.0.0.1:8888/callback?code=abc123",
			wantCode: "abc123",
		},
		{
			name:    "bare authorization code rejected",
			input:   "abc123",
			wantErr: true,
		},
		{
			name:    "missing code",
			input:   "http://127.0.0.1:8888/callback?state=nonce-1",
			wantErr: true,
		},
		{
			name:    "user denied authorization",
			input:   "http://127.0.0.1:8888/callback?error=access_denied",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, state, err := parseCallbackURL(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantState, state)
		})
	}
}

// TestPromptProvider checks the paste-the-URL flow end to end.
func TestPromptProvider(t *testing.T) {
	in := strings.NewReader("http://127.0.0.1:8888/callback?code=abc123&state=nonce-1\n")
	p := NewPromptProvider(in, io.Discard)

	code, state, err := p.Code(context.Background(), "https://accounts.example/authorize")
	require.NoError(t, err)
	assert.Equal(t, "abc123", code)
	assert.Equal(t, "nonce-1", state)
}

// TestPromptProviderClosedInput checks that exhausted input surfaces an
// error rather than hanging.
func TestPromptProviderClosedInput(t *testing.T) {
	p := NewPromptProvider(strings.NewReader(""), io.Discard)

	_, _, err := p.Code(context.Background(), "https://accounts.example/authorize")
	assert.Error(t, err)
}

// freePort grabs an available loopback port for the callback server test.
func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())
	return port
}

// TestCallbackServer checks the local callback flow by simulating the
// browser redirect.
func TestCallbackServer(t *testing.T) {
	port := freePort(t)
	callback := fmt.Sprintf("http://127.0.0.1:%d/callback", port)

	p := NewCallbackServer(callback)
	p.Out = io.Discard
	p.OpenBrowser = func(string) error {
		go func() {
			resp, err := http.Get(callback + "?code=abc123&state=nonce-1")
			if err == nil {
				resp.Body.Close()
			}
		}()
		return nil
	}

	code, state, err := p.Code(context.Background(), "https://accounts.example/authorize")
	require.NoError(t, err)
	assert.Equal(t, "abc123", code)
	assert.Equal(t, "nonce-1", state)
}

// TestCallbackServerDenied checks that an error callback is reported.
func TestCallbackServerDenied(t *testing.T) {
	port := freePort(t)
	callback := fmt.Sprintf("http://127.0.0.1:%d/callback", port)

	p := NewCallbackServer(callback)
	p.Out = io.Discard
	p.OpenBrowser = func(string) error {
		go func() {
			resp, err := http.Get(callback + "?error=access_denied")
			if err == nil {
				resp.Body.Close()
			}
		}()
		return nil
	}

	_, _, err := p.Code(context.Background(), "https://accounts.example/authorize")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access_denied")
}

// TestCallbackServerContextCanceled checks that the wait honors context
// cancellation when no callback ever arrives.
func TestCallbackServerContextCanceled(t *testing.T) {
	port := freePort(t)
	callback := fmt.Sprintf("http://127.0.0.1:%d/callback", port)

	p := NewCallbackServer(callback)
	p.Out = io.Discard
	p.OpenBrowser = func(string) error { return nil }

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, _, err := p.Code(ctx, "https://accounts.example/authorize")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
