//
// Date: 2026-01-17
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Catalog search and result display.
//

package spotify

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	spotifyLib "github.com/zmb3/spotify/v2"
)

// SearchType converts a command-line search type to the API search type.
func SearchType(kind string) (spotifyLib.SearchType, error) {
	switch kind {
	case "track":
		return spotifyLib.SearchTypeTrack, nil
	case "artist":
		return spotifyLib.SearchTypeArtist, nil
	case "album":
		return spotifyLib.SearchTypeAlbum, nil
	}
	return 0, fmt.Errorf("unsupported search type %q (use track, artist, or album)", kind)
}

// Search runs a catalog search and prints the results as a table.
func Search(ctx context.Context, client Client, query, kind string, limit int) error {
	st, err := SearchType(kind)
	if err != nil {
		return err
	}

	results, err := client.Search(ctx, query, st, spotifyLib.Limit(limit))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	switch kind {
	case "track":
		printTrackResults(query, results.Tracks)
	case "artist":
		printArtistResults(query, results.Artists)
	case "album":
		printAlbumResults(query, results.Albums)
	}

	return nil
}

// printTrackResults displays track search results in a formatted table.
func printTrackResults(query string, page *spotifyLib.FullTrackPage) {
	if page == nil || len(page.Tracks) == 0 {
		fmt.Println("No tracks found")
		return
	}

	printSearchHeader(query)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Track", "Artist", "URI"})

	for i, track := range page.Tracks {
		t.AppendRow(table.Row{
			i + 1,
			color.New(color.Bold).Sprint(track.Name),
			joinArtists(track.Artists),
			color.HiBlackString(string(track.URI)),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

// printArtistResults displays artist search results in a formatted table.
func printArtistResults(query string, page *spotifyLib.FullArtistPage) {
	if page == nil || len(page.Artists) == 0 {
		fmt.Println("No artists found")
		return
	}

	printSearchHeader(query)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Artist", "Followers", "URI"})

	for i, artist := range page.Artists {
		t.AppendRow(table.Row{
			i + 1,
			color.New(color.Bold).Sprint(artist.Name),
			artist.Followers.Count,
			color.HiBlackString(string(artist.URI)),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

// printAlbumResults displays album search results in a formatted table.
func printAlbumResults(query string, page *spotifyLib.SimpleAlbumPage) {
	if page == nil || len(page.Albums) == 0 {
		fmt.Println("No albums found")
		return
	}

	printSearchHeader(query)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Album", "Artist", "Release", "URI"})

	for i, album := range page.Albums {
		t.AppendRow(table.Row{
			i + 1,
			color.New(color.Bold).Sprint(album.Name),
			joinArtists(album.Artists),
			album.ReleaseDate,
			color.HiBlackString(string(album.URI)),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

// printSearchHeader prints the heading above a search result table.
func printSearchHeader(query string) {
	cyan := color.New(color.FgCyan)

	fmt.Println()
	cyan.Printf("🔍 Search results for %q\n", query)
	fmt.Println()
}
