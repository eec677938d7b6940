//
// Date: 2026-01-16
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Playback control operations.
//

package spotify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/browser"

	spotifyLib "github.com/zmb3/spotify/v2"
)

// webPlayerURL is where users without an active device can start one.
const webPlayerURL = "https://open.spotify.com"

// ErrNoDevices is returned when no Spotify Connect device is available to
// receive a playback command.
var ErrNoDevices = errors.New("no Spotify Connect devices found")

// NowPlaying returns a description of the current playback state.
func NowPlaying(ctx context.Context, client Client) (string, error) {
	state, err := client.PlayerState(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get playback state: %w", err)
	}
	if state == nil || state.Item == nil {
		return "Nothing is currently playing", nil
	}

	track := state.Item
	verb := "Paused"
	if state.Playing {
		verb = "Playing"
	}

	progress := time.Duration(state.Progress) * time.Millisecond
	duration := time.Duration(track.Duration) * time.Millisecond

	var b strings.Builder
	fmt.Fprintf(&b, "Now %s:\n", verb)
	fmt.Fprintf(&b, "  Track:    %s\n", track.Name)
	fmt.Fprintf(&b, "  Artist:   %s\n", joinArtists(track.Artists))
	fmt.Fprintf(&b, "  Album:    %s\n", track.Album.Name)
	fmt.Fprintf(&b, "  Progress: %s / %s", formatDuration(progress), formatDuration(duration))
	if state.Device.Name != "" {
		fmt.Fprintf(&b, "\n  Device:   %s", state.Device.Name)
	}

	return b.String(), nil
}

// ResolveDevice picks the playback target: the named device (by name or ID)
// when one is given, otherwise the first active device, otherwise the first
// device found.
func ResolveDevice(ctx context.Context, client Client, name string) (*spotifyLib.PlayerDevice, error) {
	devices, err := client.PlayerDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get devices: %w", err)
	}
	if len(devices) == 0 {
		return nil, ErrNoDevices
	}

	if name != "" {
		for i, device := range devices {
			if device.Name == name || string(device.ID) == name {
				return &devices[i], nil
			}
		}
	}

	for i, device := range devices {
		if device.Active {
			return &devices[i], nil
		}
	}

	return &devices[0], nil
}

// Play resumes playback, or plays a specific track URI when one is given.
// The device check runs first so the user gets actionable guidance instead
// of a raw API error when nothing can play.
func Play(ctx context.Context, client Client, uri, deviceName string) (string, error) {
	device, err := ResolveDevice(ctx, client, deviceName)
	if err != nil {
		return "", err
	}

	opts := &spotifyLib.PlayOptions{DeviceID: &device.ID}
	if uri != "" {
		opts.URIs = []spotifyLib.URI{spotifyLib.URI(uri)}
	}

	if err := client.PlayOpt(ctx, opts); err != nil {
		return "", fmt.Errorf("failed to start playback: %w", err)
	}

	if uri != "" {
		return fmt.Sprintf("Playing %s on %s", uri, device.Name), nil
	}
	return fmt.Sprintf("Playback resumed on %s", device.Name), nil
}

// PausePlayback pauses the current playback.
func PausePlayback(ctx context.Context, client Client) (string, error) {
	if err := client.Pause(ctx); err != nil {
		return "", fmt.Errorf("failed to pause playback: %w", err)
	}
	return "Playback paused", nil
}

// NextTrack skips to the next track.
func NextTrack(ctx context.Context, client Client) (string, error) {
	if err := client.Next(ctx); err != nil {
		return "", fmt.Errorf("failed to skip track: %w", err)
	}
	return "Skipped to next track", nil
}

// PreviousTrack goes back to the previous track.
func PreviousTrack(ctx context.Context, client Client) (string, error) {
	if err := client.Previous(ctx); err != nil {
		return "", fmt.Errorf("failed to go back a track: %w", err)
	}
	return "Back to previous track", nil
}

// SetVolume sets the playback volume, clamping the level to 0-100.
func SetVolume(ctx context.Context, client Client, level int) (string, error) {
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}

	if err := client.Volume(ctx, level); err != nil {
		return "", fmt.Errorf("failed to set volume: %w", err)
	}
	return fmt.Sprintf("Volume set to %d%%", level), nil
}

// SetShuffle turns shuffle mode on or off.
func SetShuffle(ctx context.Context, client Client, on bool) (string, error) {
	if err := client.Shuffle(ctx, on); err != nil {
		return "", fmt.Errorf("failed to set shuffle: %w", err)
	}
	if on {
		return "Shuffle enabled", nil
	}
	return "Shuffle disabled", nil
}

// NoDeviceHelp is printed when a playback command finds no devices.
func NoDeviceHelp() string {
	return strings.Join([]string{
		"No Spotify devices found. To control playback you need to:",
		"  1. Open the Spotify desktop app, or",
		"  2. Open Spotify on your phone, or",
		"  3. Open the Spotify web player",
	}, "\n")
}

// OpenWebPlayer launches the Spotify web player in the default browser so
// the user gets a device to play on.
func OpenWebPlayer() error {
	return browser.OpenURL(webPlayerURL)
}
