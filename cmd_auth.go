//
// Date: 2026-01-17
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Login and logout commands for the OAuth session.
//

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// newLoginCmd forces a fresh OAuth authorization, replacing any cached token.
func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authorize sptfy with your Spotify account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := newManager()
			if err != nil {
				return err
			}

			// Drop the cached token so the browser flow always runs.
			if err := manager.Clear(); err != nil {
				return err
			}

			client, err := manager.Client(cmd.Context())
			if err != nil {
				return err
			}

			user, err := client.CurrentUser(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get user profile: %w", err)
			}

			name := user.DisplayName
			if name == "" {
				name = user.ID
			}
			color.Green("Authenticated as %s", name)
			return nil
		},
	}
}

// newLogoutCmd deletes the cached token.
func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the cached Spotify token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newTokenStore().Clear(); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}
