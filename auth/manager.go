//
// Date: 2026-01-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: OAuth token lifecycle management. The Manager produces a
// valid bearer token on demand: cached tokens are reused, expired ones are
// silently refreshed, and the interactive authorization-code flow runs only
// when nothing else works.
//

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	spotifyLib "github.com/zmb3/spotify/v2"
	"golang.org/x/oauth2"

	spotifyauth "github.com/zmb3/spotify/v2/auth"

	"github.com/cloudmanic/sptfy/config"
)

// Scopes requested during authorization. They cover playback control,
// playlist browsing, library access, and listening history.
var Scopes = []string{
	spotifyauth.ScopeUserReadPlaybackState,
	spotifyauth.ScopeUserModifyPlaybackState,
	spotifyauth.ScopeUserReadCurrentlyPlaying,
	spotifyauth.ScopePlaylistReadPrivate,
	spotifyauth.ScopePlaylistReadCollaborative,
	spotifyauth.ScopeUserLibraryRead,
	spotifyauth.ScopeUserLibraryModify,
	spotifyauth.ScopeUserTopRead,
}

// expiryMargin is how close to expiry a token may get before it is treated
// as already expired, so a token cannot expire between the check and the API
// call that uses it.
const expiryMargin = 30 * time.Second

// Manager owns the OAuth token lifecycle. It is the only component that
// reads or writes the cached token.
type Manager struct {
	conf     *oauth2.Config
	store    Store
	provider CodeProvider
	margin   time.Duration
	now      func() time.Time
	newState func() string
}

// NewManager wires the token manager to a credential set, a token store,
// and an authorization code provider.
func NewManager(creds *config.Credentials, store Store, provider CodeProvider) *Manager {
	return &Manager{
		conf: &oauth2.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			RedirectURL:  creds.RedirectURI,
			Scopes:       Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  spotifyauth.AuthURL,
				TokenURL: spotifyauth.TokenURL,
			},
		},
		store:    store,
		provider: provider,
		margin:   expiryMargin,
		now:      time.Now,
		newState: uuid.NewString,
	}
}

// Token returns a valid access token, walking the cached token through the
// lifecycle as needed. Interactive authorization runs only when there is no
// usable cached token and the refresh grant fails or is absent.
func (m *Manager) Token(ctx context.Context) (*oauth2.Token, error) {
	token, err := m.store.Load()
	if err != nil {
		log.Debugf("token cache unreadable, treating as absent: %v", err)
		token = nil
	}
	if token != nil && token.AccessToken == "" && token.RefreshToken == "" {
		token = nil
	}
	if token == nil {
		return m.authorize(ctx)
	}

	if m.usable(token) {
		log.Debug("using cached access token")
		return token, nil
	}

	if token.RefreshToken != "" {
		fresh, err := m.refresh(ctx, token)
		if err == nil {
			return fresh, nil
		}
		var aerr *AuthError
		if errors.As(err, &aerr) {
			// Persisting the refreshed token failed; re-authorizing
			// would hit the same broken store.
			return nil, err
		}
		log.Debugf("token refresh failed, starting authorization: %v", err)
	}

	return m.authorize(ctx)
}

// Client returns a Spotify API client authorized with a valid token.
func (m *Manager) Client(ctx context.Context) (*spotifyLib.Client, error) {
	token, err := m.Token(ctx)
	if err != nil {
		return nil, err
	}
	return spotifyLib.New(m.conf.Client(ctx, token)), nil
}

// Clear drops the cached token, forcing the next Token call through the
// interactive flow.
func (m *Manager) Clear() error {
	return m.store.Clear()
}

// usable reports whether the token can still authorize calls. A token
// expiring within the safety margin counts as expired; a zero expiry means
// the token never expires.
func (m *Manager) usable(token *oauth2.Token) bool {
	if token.AccessToken == "" {
		return false
	}
	if token.Expiry.IsZero() {
		return true
	}
	return m.now().Add(m.margin).Before(token.Expiry)
}

// refresh exchanges the refresh token for a new access token. Spotify may
// or may not rotate the refresh token; when it does not, the previous one is
// carried forward so the next refresh still works. The new token is
// persisted before it is returned.
func (m *Manager) refresh(ctx context.Context, token *oauth2.Token) (*oauth2.Token, error) {
	log.Debug("refreshing expired access token")

	// The token source only refreshes tokens it considers expired, and its
	// expiry delta is smaller than ours. Handing it the refresh token alone
	// guarantees the refresh grant actually runs.
	fresh, err := m.conf.TokenSource(ctx, &oauth2.Token{RefreshToken: token.RefreshToken}).Token()
	if err != nil {
		return nil, fmt.Errorf("refresh exchange: %w", err)
	}
	if fresh.RefreshToken == "" {
		fresh.RefreshToken = token.RefreshToken
	}

	if err := m.store.Save(fresh); err != nil {
		return nil, authErr("persist", err)
	}

	return fresh, nil
}

// authorize runs the interactive authorization-code flow: fresh state nonce,
// authorization URL, code from the provider, state check, code exchange,
// synchronous persist.
func (m *Manager) authorize(ctx context.Context) (*oauth2.Token, error) {
	state := m.newState()
	authURL := m.conf.AuthCodeURL(state)

	code, echoed, err := m.provider.Code(ctx, authURL)
	if err != nil {
		return nil, authErr("callback", err)
	}
	if echoed != state {
		return nil, authErr("callback", ErrStateMismatch)
	}

	token, err := m.conf.Exchange(ctx, code)
	if err != nil {
		return nil, authErr("exchange", err)
	}

	if err := m.store.Save(token); err != nil {
		return nil, authErr("persist", err)
	}

	log.Debug("authorization complete, token cached")
	return token, nil
}
