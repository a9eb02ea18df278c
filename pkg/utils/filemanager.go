// =============================================================================
// Work History Formatter - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for the formatter:
//   - Output path resolution
//   - Atomic output writes
//   - Small file inspection helpers
//
// WRITE STRATEGY:
//   The report is written to a uniquely named temporary file next to the
//   destination and renamed into place. A failed run never leaves a
//   half-written report, and an existing report is only replaced once the
//   new one is complete.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// =============================================================================
// OUTPUT PATHS
// =============================================================================

// ResolveOutputPath returns explicit if set, otherwise defaultPath.
func ResolveOutputPath(explicit, defaultPath string) string {
	if explicit != "" {
		return explicit
	}
	return defaultPath
}

// TempFileName generates the temporary file name used while writing path.
//
// EXAMPLE:
//   path:   "out/report.txt"
//   output: "out/.report.txt.a1b2c3d4-e5f6-7890-abcd-ef1234567890.tmp"
func TempFileName(path string) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	return filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, uuid.New().String()))
}

// =============================================================================
// ATOMIC WRITES
// =============================================================================

// WriteFileAtomic writes data to path via a temporary file and rename.
// An existing file at path is replaced.
//
// RETURNS:
//   - An error if the temporary file cannot be created, written or renamed.
//     The temporary file is removed on every failure path.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	tmpPath := TempFileName(path)

	file, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	defer func() {
		if err != nil {
			_ = file.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = file.Write(data); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err = file.Sync(); err != nil {
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move file into place: %w", err)
	}

	return nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a regular file exists at path.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// GetFileSize returns the size of a file in bytes.
func GetFileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
