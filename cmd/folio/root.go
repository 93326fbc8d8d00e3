// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/folio/pkg/client"
)

var (
	// flags
	serverURL string
	token     string

	api *client.Client
)

func init() {
	RootCmd.PersistentFlags().StringVar(&serverURL, "server", envOr("FOLIO_SERVER", "http://localhost:8080"), "API base URL")
	RootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("FOLIO_TOKEN"), "access token (or FOLIO_TOKEN)")
}

var RootCmd = cobra.Command{
	Use:           "folio",
	Short:         "Manage your Folio library from the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		api = client.New(serverURL)
	},
}

var errNoToken = errors.New("no token: pass --token or set FOLIO_TOKEN (see `folio login`)")

// requireToken is a PreRunE for commands that act as a user.
func requireToken(cmd *cobra.Command, args []string) error {
	if token == "" {
		return errNoToken
	}
	return nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// printJSON writes v indented to stdout.
func printJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
