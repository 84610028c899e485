// This file is part of go-getopts.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package tail - prints the last lines of a file or stream and optionally follows a file as it grows.
package tail

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// BufSize - Size of the chunks read while scanning a file backwards.
const BufSize = 1024

// Tailer - Writes tailed content to an output writer.
type Tailer struct {
	out    io.Writer
	logger *log.Logger
}

// New - Returns a Tailer that writes to out.
// A nil logger discards all log messages.
func New(out io.Writer, logger *log.Logger) *Tailer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Tailer{out: out, logger: logger}
}

// Offset - Returns the offset where the last n lines of r start.
//
// size is the number of bytes in r.
// A newline at the very end doesn't start a new line.
// When r has n lines or fewer, the offset is 0.
func Offset(r io.ReaderAt, size int64, n int) (int64, error) {
	if n <= 0 {
		return size, nil
	}
	buf := make([]byte, BufSize)
	end := size
	for end > 0 {
		start := max(end-BufSize, 0)
		chunk := buf[:end-start]
		read, err := r.ReadAt(chunk, start)
		if read < len(chunk) {
			return 0, fmt.Errorf("tail: read at %d: %w", start, err)
		}
		for i := len(chunk) - 1; i >= 0; i-- {
			if chunk[i] != '\n' || start+int64(i) == size-1 {
				continue
			}
			n--
			if n == 0 {
				return start + int64(i) + 1, nil
			}
		}
		end = start
	}
	return 0, nil
}

// File - Writes the last n lines of the file at path.
// It returns the size of the file at the time it was read, which is where Follow should start.
func (t *Tailer) File(path string, n int) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("tail: open: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("tail: stat: %w", err)
	}
	size := info.Size()

	off, err := Offset(f, size, n)
	if err != nil {
		return 0, err
	}
	t.logger.Debug("file", "path", path, "size", size, "offset", off)

	_, err = io.Copy(t.out, io.NewSectionReader(f, off, size-off))
	if err != nil {
		return 0, fmt.Errorf("tail: write: %w", err)
	}
	return size, nil
}

// Reader - Writes the last n lines read from r.
// Lines are kept in a ring so memory is bound by n, not by the size of the stream.
// Lines end in "\n" or "\r\n", they are written back ending in "\n".
func (t *Tailer) Reader(r io.Reader, n int) error {
	ring := make([]string, 0, max(n, 0))
	next := 0
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 && n > 0 {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if len(ring) < n {
				ring = append(ring, line)
			} else {
				ring[next] = line
				next = (next + 1) % n
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("tail: read: %w", err)
		}
	}

	w := bufio.NewWriter(t.out)
	for i := range ring {
		w.WriteString(ring[(next+i)%len(ring)])
		w.WriteByte('\n')
	}
	err := w.Flush()
	if err != nil {
		return fmt.Errorf("tail: write: %w", err)
	}
	return nil
}

// Follow - Writes data appended to the file at path after offset until ctx is done.
//
// When the file shrinks below the offset it is considered truncated and it is
// written again from the start.
// It returns nil when ctx is done or when the file is removed or renamed.
func (t *Tailer) Follow(ctx context.Context, path string, offset int64) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("tail: open: %w", err)
	}
	defer f.Close()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("tail: create fsnotify watcher: %w", err)
	}
	defer func() {
		if closeErr := fsw.Close(); closeErr != nil {
			t.logger.Warn("close fsnotify", "err", closeErr)
		}
	}()

	err = fsw.Add(path)
	if err != nil {
		return fmt.Errorf("tail: watch %s: %w", path, err)
	}

	// Catch up with anything written before the watch was in place.
	offset, err = t.copyFrom(f, offset)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-fsw.Events:
			if !ok {
				return fmt.Errorf("tail: fsnotify event channel closed unexpectedly")
			}
			t.logger.Debug("event", "op", evt.Op, "name", evt.Name)
			if evt.Has(fsnotify.Remove) || evt.Has(fsnotify.Rename) || (evt.Has(fsnotify.Chmod) && gone(path)) {
				t.logger.Warn("file is gone, stop following", "path", path)
				return nil
			}
			if !evt.Has(fsnotify.Write) {
				continue
			}
			offset, err = t.copyFrom(f, offset)
			if err != nil {
				return err
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return fmt.Errorf("tail: fsnotify error channel closed unexpectedly")
			}
			t.logger.Warn("fsnotify", "err", err)
		}
	}
}

// gone - Linux reports an unlink as Chmod while the file is still open.
func gone(path string) bool {
	_, err := os.Stat(path)
	return errors.Is(err, fs.ErrNotExist)
}

// copyFrom - Writes the content of f after offset and returns the new offset.
func (t *Tailer) copyFrom(f *os.File, offset int64) (int64, error) {
	info, err := f.Stat()
	if err != nil {
		return offset, fmt.Errorf("tail: stat: %w", err)
	}
	size := info.Size()
	if size < offset {
		t.logger.Info("file truncated", "path", f.Name(), "size", size)
		offset = 0
	}
	if size == offset {
		return offset, nil
	}
	written, err := io.Copy(t.out, io.NewSectionReader(f, offset, size-offset))
	if err != nil {
		return offset + written, fmt.Errorf("tail: write: %w", err)
	}
	return offset + written, nil
}
