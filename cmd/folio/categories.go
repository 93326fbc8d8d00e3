// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"github.com/spf13/cobra"
)

var categoryColor string

func init() {
	CategoriesCreateCommand.Flags().StringVar(&categoryColor, "color", "", "hex color such as #10B981")

	for _, command := range []*cobra.Command{
		&CategoriesListCommand, &CategoriesCreateCommand, &CategoriesDeleteCommand,
	} {
		command.PreRunE = requireToken
		CategoriesCommand.AddCommand(command)
	}

	StatsCommand.PreRunE = requireToken

	RootCmd.AddCommand(&CategoriesCommand)
	RootCmd.AddCommand(&StatsCommand)
}

var CategoriesCommand = cobra.Command{
	Use:   "categories",
	Short: "Manage categories",
}

var CategoriesListCommand = cobra.Command{
	Use:   "list",
	Short: "List categories with book counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		categories, err := api.ListCategories(cmd.Context(), token)
		if err != nil {
			return err
		}
		return printJSON(cmd, categories)
	},
}

var CategoriesCreateCommand = cobra.Command{
	Use:   "create <name>",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := api.CreateCategory(cmd.Context(), token, args[0], categoryColor)
		if err != nil {
			return err
		}
		return printJSON(cmd, category)
	},
}

var CategoriesDeleteCommand = cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category (books keep the name)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return api.DeleteCategory(cmd.Context(), token, args[0])
	},
}

var StatsCommand = cobra.Command{
	Use:   "stats",
	Short: "Show reading statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := api.Stats(cmd.Context(), token)
		if err != nil {
			return err
		}
		return printJSON(cmd, stats)
	},
}
