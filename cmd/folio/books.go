// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taibuivan/folio/pkg/client"
)

var (
	listSearch   string
	listCategory string
	listTags     []string

	uploadTitle    string
	uploadAuthor   string
	uploadCategory string
	uploadTags     []string

	downloadOutput string
	progressTime   int
)

func init() {
	BooksListCommand.Flags().StringVar(&listSearch, "search", "", "substring of title, author or filename")
	BooksListCommand.Flags().StringVar(&listCategory, "category", "", "exact category")
	BooksListCommand.Flags().StringSliceVar(&listTags, "tags", nil, "match any of these tags")

	BooksUploadCommand.Flags().StringVar(&uploadTitle, "title", "", "book title (defaults to the file name)")
	BooksUploadCommand.Flags().StringVar(&uploadAuthor, "author", "", "author")
	BooksUploadCommand.Flags().StringVar(&uploadCategory, "category", "", "category, created if missing")
	BooksUploadCommand.Flags().StringSliceVar(&uploadTags, "tags", nil, "tags")

	BooksDownloadCommand.Flags().StringVarP(&downloadOutput, "output", "o", "", "destination path (defaults to the original file name)")
	BooksProgressCommand.Flags().IntVar(&progressTime, "minutes", 0, "minutes read in this session")

	for _, command := range []*cobra.Command{
		&BooksListCommand, &BooksGetCommand, &BooksUploadCommand, &BooksDownloadCommand,
		&BooksDeleteCommand, &BooksProgressCommand, &BooksBookmarkCommand,
	} {
		command.PreRunE = requireToken
		BooksCommand.AddCommand(command)
	}

	RootCmd.AddCommand(&BooksCommand)
}

var BooksCommand = cobra.Command{
	Use:   "books",
	Short: "List, upload and read books",
}

var BooksListCommand = cobra.Command{
	Use:   "list",
	Short: "List books, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		books, err := api.ListBooks(cmd.Context(), token, client.BookQuery{
			Search:   listSearch,
			Category: listCategory,
			Tags:     listTags,
		})
		if err != nil {
			return err
		}
		return printJSON(cmd, books)
	},
}

var BooksGetCommand = cobra.Command{
	Use:   "get <id>",
	Short: "Show one book",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		book, err := api.GetBook(cmd.Context(), token, args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd, book)
	},
}

var BooksUploadCommand = cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a PDF or EPUB",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()

		filename := filepath.Base(args[0])
		title := uploadTitle
		if title == "" {
			title = filename[:len(filename)-len(filepath.Ext(filename))]
		}

		book, err := api.UploadBook(cmd.Context(), token, client.Upload{
			Filename: filename,
			Body:     file,
			Title:    title,
			Author:   uploadAuthor,
			Category: uploadCategory,
			Tags:     uploadTags,
		})
		if err != nil {
			return err
		}
		return printJSON(cmd, book)
	},
}

var BooksDownloadCommand = cobra.Command{
	Use:   "download <id>",
	Short: "Save a book's file locally",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		download, err := api.DownloadBook(cmd.Context(), token, args[0])
		if err != nil {
			return err
		}
		defer download.Close()

		output := downloadOutput
		if output == "" {
			output = filepath.Base(download.Filename)
		}
		if output == "" || output == "." {
			output = args[0]
		}

		file, err := os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			return err
		}

		written, err := io.Copy(file, download)
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			_ = os.Remove(output)
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes)\n", output, written)
		return nil
	},
}

var BooksDeleteCommand = cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a book and its file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return api.DeleteBook(cmd.Context(), token, args[0])
	},
}

var BooksProgressCommand = cobra.Command{
	Use:   "progress <id> <fraction>",
	Short: "Report reading progress between 0 and 1",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		progress, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("progress must be a number: %w", err)
		}

		book, err := api.UpdateProgress(cmd.Context(), token, args[0], progress, progressTime)
		if err != nil {
			return err
		}
		return printJSON(cmd, book)
	},
}

var BooksBookmarkCommand = cobra.Command{
	Use:   "bookmark <id> <page>",
	Short: "Toggle a bookmark on a page",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("page must be an integer: %w", err)
		}

		book, err := api.ToggleBookmark(cmd.Context(), token, args[0], page)
		if err != nil {
			return err
		}
		return printJSON(cmd, book.Bookmarks)
	},
}
