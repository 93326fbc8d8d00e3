// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package filestore persists uploaded book files as opaque blobs.

Files are written under a generated key of the form "<nanoid><ext>" inside a
single root directory. The key is the only handle the rest of the system
keeps; original filenames never touch the disk.

The store is built on an [afero.Fs] so that production runs against the OS
filesystem while tests run against memory.
*/
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/spf13/afero"
)

// ErrNotFound is returned when a key has no file behind it.
var ErrNotFound = errors.New("filestore: file not found")

// ErrTooLarge is returned when a write exceeds the configured byte limit.
var ErrTooLarge = errors.New("filestore: file exceeds size limit")

// Store writes, opens and removes blobs under a root directory.
type Store struct {
	fs       afero.Fs
	maxBytes int64
}

// New returns a Store rooted at dir on the given filesystem. The directory is
// created if missing. maxBytes <= 0 disables the size limit.
func New(filesystem afero.Fs, dir string, maxBytes int64) (*Store, error) {
	if err := filesystem.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create root %q: %w", dir, err)
	}
	return &Store{
		fs:       afero.NewBasePathFs(filesystem, dir),
		maxBytes: maxBytes,
	}, nil
}

// NewOS returns a Store on the host filesystem.
func NewOS(dir string, maxBytes int64) (*Store, error) {
	return New(afero.NewOsFs(), dir, maxBytes)
}

// Save copies body to a new file and returns its key and the number of bytes
// written. The extension of filename is kept on the key. A partial file is
// removed when the copy fails.
func (store *Store) Save(ctx context.Context, filename string, body io.Reader) (string, int64, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", 0, fmt.Errorf("filestore: generate key: %w", err)
	}
	key := id + strings.ToLower(filepath.Ext(filename))

	file, err := store.fs.OpenFile(key, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", 0, fmt.Errorf("filestore: create %s: %w", key, err)
	}

	reader := io.Reader(&contextReader{ctx: ctx, reader: body})
	if store.maxBytes > 0 {
		reader = io.LimitReader(reader, store.maxBytes+1)
	}

	written, copyErr := io.Copy(file, reader)
	closeErr := file.Close()

	switch {
	case copyErr != nil:
		_ = store.fs.Remove(key)
		return "", 0, fmt.Errorf("filestore: write %s: %w", key, copyErr)
	case store.maxBytes > 0 && written > store.maxBytes:
		_ = store.fs.Remove(key)
		return "", 0, ErrTooLarge
	case closeErr != nil:
		_ = store.fs.Remove(key)
		return "", 0, fmt.Errorf("filestore: close %s: %w", key, closeErr)
	}

	return key, written, nil
}

// Open returns a reader over the file stored under key and its size.
func (store *Store) Open(key string) (io.ReadCloser, int64, error) {
	if !validKey(key) {
		return nil, 0, ErrNotFound
	}

	file, err := store.fs.Open(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, fmt.Errorf("filestore: open %s: %w", key, err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, 0, fmt.Errorf("filestore: stat %s: %w", key, err)
	}

	return file, info.Size(), nil
}

// Remove deletes the file stored under key. A missing file is not an error.
func (store *Store) Remove(key string) error {
	if !validKey(key) {
		return nil
	}
	if err := store.fs.Remove(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("filestore: remove %s: %w", key, err)
	}
	return nil
}

// Keys are flat names; anything resembling a path is rejected.
func validKey(key string) bool {
	return key != "" && key != "." && key != ".." && !strings.ContainsAny(key, `/\`)
}

// contextReader stops a long copy once the request is cancelled.
type contextReader struct {
	ctx    context.Context
	reader io.Reader
}

func (r *contextReader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.reader.Read(p)
}
