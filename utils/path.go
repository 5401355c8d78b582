package utils

import (
	"io"
	"os"
	"os/user"
	"path"
	"strings"
)

// Stdio is the path that selects standard input or output.
const Stdio = "-"

var homeDir string

func init() {
	usr, err := user.Current()
	if err == nil {
		homeDir = usr.HomeDir
	}
}

func ExpandPath(p string) string {
	if strings.HasPrefix(p, "~") {
		return path.Join(homeDir, strings.TrimLeft(p, "~"))
	}

	return p
}

// TryCreate truncates the file at p, creating it and its parent directories
// when missing.
func TryCreate(p string) (fi *os.File, err error) {
	d := path.Dir(p)

	if err := os.MkdirAll(d, os.ModePerm); err != nil && !os.IsExist(err) {
		return nil, err
	}

	if fi, err = os.Create(p); err != nil && !os.IsExist(err) {
		return nil, err
	}

	return
}

// OpenInput opens p for reading, or returns stdin for Stdio.
func OpenInput(p string, stdin io.Reader) (io.ReadCloser, error) {
	if p == Stdio {
		return io.NopCloser(stdin), nil
	}

	return os.Open(ExpandPath(p))
}

// OpenOutput creates p for writing, or returns stdout for Stdio.
func OpenOutput(p string, stdout io.Writer) (io.WriteCloser, error) {
	if p == Stdio {
		return nopWriteCloser{stdout}, nil
	}

	return TryCreate(ExpandPath(p))
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
