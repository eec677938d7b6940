//
// Date: 2026-01-16
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Playlist listing, resolution, and display.
//

package spotify

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	spotifyLib "github.com/zmb3/spotify/v2"
)

// playlistPageSize is the API maximum page size for playlist listing.
const playlistPageSize = 50

// FetchPlaylists returns the user's playlists, paging through the API until
// limit playlists are collected. A limit of zero or less fetches them all.
func FetchPlaylists(ctx context.Context, client Client, limit int) ([]spotifyLib.SimplePlaylist, error) {
	var all []spotifyLib.SimplePlaylist
	offset := 0

	for {
		playlists, err := client.CurrentUsersPlaylists(ctx, spotifyLib.Limit(playlistPageSize), spotifyLib.Offset(offset))
		if err != nil {
			return nil, fmt.Errorf("failed to get playlists: %w", err)
		}

		all = append(all, playlists.Playlists...)
		if limit > 0 && len(all) >= limit {
			return all[:limit], nil
		}

		if len(playlists.Playlists) < playlistPageSize {
			return all, nil
		}
		offset += playlistPageSize
	}
}

// MyPlaylists prints the user's playlists as a table.
func MyPlaylists(ctx context.Context, client Client, limit int) error {
	playlists, err := FetchPlaylists(ctx, client, limit)
	if err != nil {
		return err
	}
	PrintPlaylistsTable(playlists)
	return nil
}

// ExtractPlaylistID extracts the playlist ID from a Spotify URL or returns
// the input as-is if it's already just an ID.
func ExtractPlaylistID(input string) string {
	if strings.Contains(input, "spotify.com/playlist/") {
		parts := strings.Split(input, "/playlist/")
		if len(parts) > 1 {
			// Drop any query parameters
			return strings.Split(parts[1], "?")[0]
		}
	}
	return input
}

// ResolvePlaylistID resolves a playlist input (URL, ID, or name) to a
// playlist ID. URLs and 22-character IDs are taken directly; anything else
// is matched case-insensitively against the names of the user's playlists.
func ResolvePlaylistID(ctx context.Context, client Client, input string) (string, error) {
	if strings.Contains(input, "spotify.com/playlist/") {
		return ExtractPlaylistID(input), nil
	}

	// Spotify IDs are 22 base62 characters
	if len(input) == 22 && !strings.Contains(input, " ") {
		return input, nil
	}

	playlists, err := FetchPlaylists(ctx, client, 0)
	if err != nil {
		return "", err
	}

	for _, playlist := range playlists {
		if strings.EqualFold(playlist.Name, input) || string(playlist.ID) == input {
			return string(playlist.ID), nil
		}
	}

	return "", fmt.Errorf("no playlist found matching %q", input)
}

// PlaylistTracks prints the tracks of a playlist identified by URL, ID, or
// name. Only the first page of tracks is shown.
func PlaylistTracks(ctx context.Context, client Client, input string) error {
	id, err := ResolvePlaylistID(ctx, client, input)
	if err != nil {
		return err
	}

	playlist, err := client.GetPlaylist(ctx, spotifyLib.ID(id))
	if err != nil {
		return fmt.Errorf("failed to get playlist (ID: %s): %w", id, err)
	}

	printPlaylistTracksTable(playlist)
	return nil
}

// printPlaylistTracksTable displays a playlist's tracks in a formatted
// table.
func printPlaylistTracksTable(playlist *spotifyLib.FullPlaylist) {
	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen, color.Bold)

	fmt.Println()
	cyan.Printf("🎵 %s\n", playlist.Name)
	fmt.Println()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Track", "Artist", "Album"})

	for i, item := range playlist.Tracks.Tracks {
		t.AppendRow(table.Row{
			i + 1,
			color.New(color.Bold).Sprint(item.Track.Name),
			joinArtists(item.Track.Artists),
			item.Track.Album.Name,
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()

	fmt.Println()
	green.Printf("Total tracks: %d\n", playlist.Tracks.Total)
}

// PrintPlaylistsTable displays the user's Spotify playlists in a formatted
// table.
func PrintPlaylistsTable(playlists []spotifyLib.SimplePlaylist) {
	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan)

	fmt.Println()
	cyan.Println("🎵 Your Spotify Playlists")
	fmt.Println()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Name", "Tracks", "Owner", "Playlist ID"})

	for i, playlist := range playlists {
		t.AppendRow(table.Row{
			i + 1,
			color.New(color.Bold).Sprint(playlist.Name),
			playlist.Tracks.Total,
			playlist.Owner.DisplayName,
			color.HiBlackString(string(playlist.ID)),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()

	fmt.Println()
	green.Printf("Total playlists: %d\n", len(playlists))
}
