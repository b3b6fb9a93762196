// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// FileReadError reports text that could not be decoded. It is
// recoverable: the accompanying lines hold a single empty line.
type FileReadError struct {
	Path string
	Err  error
}

// FileWriteError reports a failure to save a document.
type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("read: %v", e.Err)
	}
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error { return e.Err }

// Load reads newline delimited text from r. Line endings, "\n" or
// "\r\n", are stripped; a final line ending does not start a new
// line. At least one line is returned.
//
// Invalid UTF-8 discards every line read and results in a single
// empty line and a *FileReadError. Other errors are returned as is,
// with nil lines.
func Load(r io.Reader) ([]string, error) {
	br := bufio.NewReader(transform.NewReader(r, encoding.UTF8Validator))
	var lines []string
	for {
		s, err := br.ReadString('\n')
		if s != "" {
			s = strings.TrimSuffix(s, "\n")
			s = strings.TrimSuffix(s, "\r")
			lines = append(lines, s)
		}
		if err == io.EOF {
			break
		}
		if errors.Is(err, encoding.ErrInvalidUTF8) {
			return []string{""}, &FileReadError{Err: err}
		}
		if err != nil {
			return nil, err
		}
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines, nil
}

// LoadFile is like Load for the file at path. A missing file is not an
// error; it results in a single empty line.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{""}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	lines, err := Load(f)
	var rerr *FileReadError
	if errors.As(err, &rerr) {
		rerr.Path = path
	}
	return lines, err
}

// Save writes lines joined by "\n" to w, without a trailing newline.
func Save(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for i, l := range lines {
		if i > 0 {
			bw.WriteByte('\n')
		}
		bw.WriteString(l)
	}
	return bw.Flush()
}

// SaveFile creates or truncates the file at path and saves lines to
// it. Errors are reported as *FileWriteError.
func SaveFile(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return &FileWriteError{Path: path, Err: err}
	}
	if err := Save(f, lines); err != nil {
		f.Close()
		return &FileWriteError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &FileWriteError{Path: path, Err: err}
	}
	return nil
}
