//
// Date: 2026-01-16
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: The subset of the Spotify Web API used by the commands.
//

package spotify

import (
	"context"

	spotifyLib "github.com/zmb3/spotify/v2"
)

// Client defines the Spotify API operations the commands use. The zmb3
// client satisfies it directly; tests substitute a mock.
type Client interface {
	CurrentUser(ctx context.Context) (*spotifyLib.PrivateUser, error)
	PlayerState(ctx context.Context, opts ...spotifyLib.RequestOption) (*spotifyLib.PlayerState, error)
	PlayerDevices(ctx context.Context) ([]spotifyLib.PlayerDevice, error)
	PlayOpt(ctx context.Context, opts *spotifyLib.PlayOptions) error
	Pause(ctx context.Context) error
	Next(ctx context.Context) error
	Previous(ctx context.Context) error
	Volume(ctx context.Context, percent int) error
	Shuffle(ctx context.Context, shuffle bool) error
	Search(ctx context.Context, query string, t spotifyLib.SearchType, opts ...spotifyLib.RequestOption) (*spotifyLib.SearchResult, error)
	CurrentUsersPlaylists(ctx context.Context, opts ...spotifyLib.RequestOption) (*spotifyLib.SimplePlaylistPage, error)
	GetPlaylist(ctx context.Context, playlistID spotifyLib.ID, opts ...spotifyLib.RequestOption) (*spotifyLib.FullPlaylist, error)
	CurrentUsersTopTracks(ctx context.Context, opts ...spotifyLib.RequestOption) (*spotifyLib.FullTrackPage, error)
}

// Compile-time check that the real client implements the interface.
var _ Client = (*spotifyLib.Client)(nil)
