//
// Date: 2026-01-17
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Playback control commands: now, play, pause, next, prev,
// volume, and shuffle.
//

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cloudmanic/sptfy/spotify"
)

// newNowCmd shows what is currently playing.
func newNowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Show the currently playing track",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			msg, err := spotify.NowPlaying(cmd.Context(), client)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
}

// newPlayCmd resumes playback or plays a specific URI.
func newPlayCmd() *cobra.Command {
	var (
		deviceName  string
		openBrowser bool
	)
	cmd := &cobra.Command{
		Use:   "play [uri]",
		Short: "Resume playback, or play a track/album/playlist URI",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			uri := ""
			if len(args) > 0 {
				uri = args[0]
			}

			msg, err := spotify.Play(cmd.Context(), client, uri, deviceName)
			if errors.Is(err, spotify.ErrNoDevices) {
				fmt.Println(spotify.NoDeviceHelp())
				if openBrowser {
					fmt.Println("\nOpening the web player...")
					return spotify.OpenWebPlayer()
				}
				return err
			}
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&deviceName, "device", "", "Device name or ID to play on")
	cmd.Flags().BoolVar(&openBrowser, "open", false, "Open the web player if no device is available")
	return cmd
}

// newPauseCmd pauses playback.
func newPauseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Pause playback",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			msg, err := spotify.PausePlayback(cmd.Context(), client)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
}

// newNextCmd skips to the next track.
func newNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Skip to the next track",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			msg, err := spotify.NextTrack(cmd.Context(), client)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
}

// newPrevCmd goes back to the previous track.
func newPrevCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prev",
		Short: "Go back to the previous track",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			msg, err := spotify.PreviousTrack(cmd.Context(), client)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
}

// newVolumeCmd sets the playback volume.
func newVolumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "volume <0-100>",
		Short: "Set the playback volume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("volume must be a number: %q", args[0])
			}

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			msg, err := spotify.SetVolume(cmd.Context(), client, level)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
}

// newShuffleCmd turns shuffle mode on or off.
func newShuffleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shuffle <on|off>",
		Short: "Turn shuffle mode on or off",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var on bool
			switch args[0] {
			case "on":
				on = true
			case "off":
				on = false
			default:
				return fmt.Errorf("shuffle takes on or off, got %q", args[0])
			}

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			msg, err := spotify.SetShuffle(cmd.Context(), client, on)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
}
