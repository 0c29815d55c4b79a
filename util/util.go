// Package util reads and writes yaml layouts and opens the log file.
package util

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// OpenLog opens path for appending. When it cannot, it warns on stderr and
// returns a writer that discards.
func OpenLog(path string, mode os.FileMode) io.WriteCloser {

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %s\n", err.Error())
		return discard{}
	}
	return file
}

// LoadConfig decodes the yaml at path into cfg.
// Fields cfg does not know are an error, so a misspelled layout key is
// reported rather than ignored.
func LoadConfig(cfg any, path string) (err error) {

	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read from %s", path)
		return
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	err = decoder.Decode(cfg)
	if errors.Is(err, io.EOF) {
		return nil // empty file, defaults stand
	}
	err = errors.Wrapf(err, "failed to unmarshal %s", path)
	return
}

// WriteConfig encodes cfg as yaml at path with two space indents.
func WriteConfig(cfg any, path string, mode os.FileMode) (err error) {

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	err = encoder.Encode(cfg)
	if err != nil {
		err = errors.Wrapf(err, "failed to marshal")
		return
	}
	encoder.Close()

	err = os.WriteFile(path, buf.Bytes(), mode)
	err = errors.Wrapf(err, "failed to write to %s", path)
	return
}

// SampleConfig creates path holding data, leaving an existing file alone.
// It reports whether it wrote.
func SampleConfig(data []byte, path string, mode os.FileMode) (wrote bool, err error) {

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to create %s", path)
		return
	}
	defer file.Close()

	_, err = file.Write(data)
	if err != nil {
		err = errors.Wrapf(err, "failed to write to %s", path)
		return
	}

	wrote = true
	return
}

// unexported

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func (discard) Close() error { return nil }
