package kml

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// DefaultName returns the document name used when none is given.
func DefaultName(now time.Time) string {
	return "SITAC_" + now.Format("20060102_150405")
}

// OutputPath returns dir/name_<timestamp>.kml.
func OutputPath(dir, name string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.kml", name, now.Format("20060102150405")))
}

// EnsureParentDir creates the parent directory of path when it is missing.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("output parent %s is not a directory", dir)
		}
		return nil
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("checking output directory: %w", err)
	}
}

// WriteFile writes content to path, creating a missing parent directory first.
func WriteFile(path string, content []byte) (err error) {
	if err := EnsureParentDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating KML file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing KML file: %w", cerr)
		}
	}()

	if _, err := f.Write(content); err != nil {
		return fmt.Errorf("writing KML file: %w", err)
	}
	return nil
}
