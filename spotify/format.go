//
// Date: 2026-01-16
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Shared formatting helpers for command output.
//

package spotify

import (
	"fmt"
	"strings"
	"time"

	spotifyLib "github.com/zmb3/spotify/v2"
)

// joinArtists renders a track's artist list the way Spotify displays it.
func joinArtists(artists []spotifyLib.SimpleArtist) string {
	names := make([]string, len(artists))
	for i, artist := range artists {
		names[i] = artist.Name
	}
	return strings.Join(names, ", ")
}

// formatDuration renders a track position as m:ss.
func formatDuration(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
