//
// Date: 2026-01-17
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: sptfy is a command line Spotify controller. It handles
// OAuth authentication against the Spotify Web API and exposes playback,
// search, and library commands on top of it.
//

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	spotifyLib "github.com/zmb3/spotify/v2"

	"github.com/cloudmanic/sptfy/auth"
	"github.com/cloudmanic/sptfy/config"
)

var (
	// debug enables debug-level logging for all commands.
	debug bool

	// manualAuth skips the local callback server and asks the user to
	// paste the redirect URL instead. Needed on headless machines.
	manualAuth bool

	// configPath overrides the credential file search order.
	configPath string
)

// rootCmd is the base command every subcommand hangs off of.
var rootCmd = &cobra.Command{
	Use:   "sptfy",
	Short: "Control Spotify from the command line",
	Long: `sptfy controls Spotify playback from the command line. It talks to the
Spotify Web API with your own application credentials and plays on any
Spotify Connect device (desktop app, phone, web player).

Set SPOTIFY_CLIENT_ID, SPOTIFY_CLIENT_SECRET, and SPOTIFY_REDIRECT_URI in
the environment, in ./.env, or in ~/` + config.EnvFileName + `.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var confErr *config.ConfigurationError
		if errors.As(err, &confErr) {
			fmt.Fprintln(os.Stderr, credentialsHelp())
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug-level logging")
	rootCmd.PersistentFlags().BoolVar(&manualAuth, "manual", false, "Authenticate by pasting the redirect URL instead of running a local server")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a credentials env file")

	rootCmd.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newNowCmd(),
		newPlayCmd(),
		newPauseCmd(),
		newNextCmd(),
		newPrevCmd(),
		newVolumeCmd(),
		newShuffleCmd(),
		newSearchCmd(),
		newPlaylistsCmd(),
		newPlaylistCmd(),
		newDevicesCmd(),
		newTopCmd(),
	)
}

// newManager wires credentials, token storage, and the authorization code
// provider into a token manager.
func newManager() (*auth.Manager, error) {
	creds, err := config.Resolve(configPath)
	if err != nil {
		return nil, err
	}

	store := newTokenStore()

	var provider auth.CodeProvider
	if manualAuth {
		provider = auth.NewPromptProvider(os.Stdin, os.Stdout)
	} else {
		provider = auth.NewCallbackServer(creds.RedirectURI)
	}

	return auth.NewManager(creds, store, provider), nil
}

// newTokenStore picks where tokens are cached. The OS keyring is opt-in
// since not every environment has one (SSH sessions, containers).
func newTokenStore() auth.Store {
	if os.Getenv("SPOTIFY_TOKEN_STORE") == "keyring" {
		log.Debug("using OS keyring for token storage")
		return auth.NewKeyringStore()
	}
	return auth.NewFileStore("")
}

// newClient returns an authenticated Spotify API client, running the OAuth
// flow if there is no usable cached token.
func newClient(ctx context.Context) (*spotifyLib.Client, error) {
	manager, err := newManager()
	if err != nil {
		return nil, err
	}
	return manager.Client(ctx)
}

// credentialsHelp explains how to set up API credentials. Printed when
// credential resolution fails so new users are not stuck on a raw error.
func credentialsHelp() string {
	return `
To use sptfy you need Spotify API credentials:

  1. Go to https://developer.spotify.com/dashboard and create an app
  2. Add your redirect URI (e.g. http://127.0.0.1:8888/callback) to the app
  3. Export the credentials, or put them in ./.env or ~/` + config.EnvFileName + `:

     SPOTIFY_CLIENT_ID=your-client-id
     SPOTIFY_CLIENT_SECRET=your-client-secret
     SPOTIFY_REDIRECT_URI=http://127.0.0.1:8888/callback`
}
