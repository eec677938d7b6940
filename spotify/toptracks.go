//
// Date: 2026-01-17
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Listening history (top tracks) display.
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

// timeRangeNames maps API time ranges to human-readable labels.
var timeRangeNames = map[spotifyLib.Range]string{
	spotifyLib.ShortTermRange:  "Last 4 Weeks",
	spotifyLib.MediumTermRange: "Last 6 Months",
	spotifyLib.LongTermRange:   "All Time",
}

// TimeRange converts the command-line range flag to an API time range.
func TimeRange(name string) (spotifyLib.Range, error) {
	switch name {
	case "short":
		return spotifyLib.ShortTermRange, nil
	case "medium":
		return spotifyLib.MediumTermRange, nil
	case "long":
		return spotifyLib.LongTermRange, nil
	}
	return "", fmt.Errorf("unsupported time range %q (use short, medium, or long)", name)
}

// TopTracks prints the user's most played tracks for the given time range.
func TopTracks(ctx context.Context, client Client, limit int, rng spotifyLib.Range) error {
	page, err := client.CurrentUsersTopTracks(ctx, spotifyLib.Limit(limit), spotifyLib.Timerange(rng))
	if err != nil {
		return fmt.Errorf("failed to get top tracks: %w", err)
	}

	if page == nil || len(page.Tracks) == 0 {
		fmt.Println("No listening history yet")
		return nil
	}

	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan)

	fmt.Println()
	cyan.Printf("🌟 Your Top Tracks (%s)\n", timeRangeNames[rng])
	fmt.Println()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Track", "Artist", "Album"})

	for i, track := range page.Tracks {
		t.AppendRow(table.Row{
			i + 1,
			color.New(color.Bold).Sprint(track.Name),
			joinArtists(track.Artists),
			track.Album.Name,
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()

	fmt.Println()
	green.Printf("Total tracks: %d\n", len(page.Tracks))
	return nil
}
