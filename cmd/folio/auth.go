// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var registerName string

func init() {
	RegisterCommand.Flags().StringVar(&registerName, "name", "", "display name")
	_ = RegisterCommand.MarkFlagRequired("name")

	RootCmd.AddCommand(&RegisterCommand)
	RootCmd.AddCommand(&LoginCommand)
	RootCmd.AddCommand(&MeCommand)
}

var RegisterCommand = cobra.Command{
	Use:   "register <email> <password>",
	Short: "Create an account and print its token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := api.Register(cmd.Context(), args[0], args[1], registerName)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), session.AccessToken)
		return nil
	},
}

var LoginCommand = cobra.Command{
	Use:   "login <email> <password>",
	Short: "Print an access token, e.g. export FOLIO_TOKEN=$(folio login ...)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := api.Login(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), session.AccessToken)
		return nil
	},
}

var MeCommand = cobra.Command{
	Use:     "me",
	Short:   "Show the account the token belongs to",
	Args:    cobra.NoArgs,
	PreRunE: requireToken,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := api.Me(cmd.Context(), token)
		if err != nil {
			return err
		}
		return printJSON(cmd, user)
	},
}
