//
// Date: 2026-01-17
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Catalog and library commands: search, playlists, playlist,
// devices, and top.
//

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/cloudmanic/sptfy/spotify"
)

// newSearchCmd searches the Spotify catalog.
func newSearchCmd() *cobra.Command {
	var (
		kind  string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search for tracks, artists, or albums",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			return spotify.Search(cmd.Context(), client, strings.Join(args, " "), kind, limit)
		},
	}

	cmd.Flags().StringVar(&kind, "type", "track", "What to search for: track, artist, or album")
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of results")
	return cmd
}

// newPlaylistsCmd lists the user's playlists.
func newPlaylistsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "playlists",
		Short: "List your playlists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			return spotify.MyPlaylists(cmd.Context(), client, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of playlists (0 for all)")
	return cmd
}

// newPlaylistCmd shows the tracks of one playlist.
func newPlaylistCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "playlist <name|id|url>",
		Short: "Show the tracks of a playlist",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			return spotify.PlaylistTracks(cmd.Context(), client, strings.Join(args, " "))
		},
	}
}

// newDevicesCmd lists available Spotify Connect devices.
func newDevicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List available Spotify Connect devices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			return spotify.Devices(cmd.Context(), client)
		},
	}
}

// newTopCmd shows the user's most played tracks.
func newTopCmd() *cobra.Command {
	var (
		limit     int
		rangeName string
	)
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show your most played tracks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rng, err := spotify.TimeRange(rangeName)
			if err != nil {
				return err
			}

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			return spotify.TopTracks(cmd.Context(), client, limit, rng)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of tracks")
	cmd.Flags().StringVar(&rangeName, "range", "medium", "Time range: short (4 weeks), medium (6 months), or long (all time)")
	return cmd
}
