// Package export writes the aggregated portfolio as a data file for the static site build.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kuxall/portfolio-data/model"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var ErrInvalidFormat = errors.New("INVALID_FORMAT")

// Supported tells whether Write accepts the format
func Supported(format string) bool {
	switch strings.ToLower(format) {
	case FormatJSON, FormatYAML, "yml":
		return true
	default:
		return false
	}
}

// Write encodes the portfolio to w, as indented json or yaml
func Write(w io.Writer, p model.Portfolio, format string) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(p); err != nil {
			return fmt.Errorf("failed to encode portfolio as json: %w", err)
		}

		return nil

	case FormatYAML, "yml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(p); err != nil {
			return fmt.Errorf("failed to encode portfolio as yaml: %w", err)
		}

		return encoder.Close()

	default:
		return ErrInvalidFormat
	}
}

// WriteFile writes the portfolio to path through a temporary file,
// an existing file is only replaced once the new content is complete
func WriteFile(path string, p model.Portfolio, format string) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	tmpFile := path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return fmt.Errorf("failed to create temp file %s: %w", tmpFile, err)
	}

	defer func() {
		if err != nil {
			_ = file.Close()
			_ = os.Remove(tmpFile)
		}
	}()

	if err = Write(file, p, format); err != nil {
		return err
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close file %s: %w", tmpFile, err)
	}

	if err = os.Rename(tmpFile, path); err != nil {
		return fmt.Errorf("failed to rename %s to %s: %w", tmpFile, path, err)
	}

	return nil
}
