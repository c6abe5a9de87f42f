// Copyright 2026 The VProfile Authors
// SPDX-License-Identifier: Apache-2.0

package history

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExportFileName returns the export file name for an entry:
// profile_<provider>_<HHMMSS>.txt, where HHMMSS is the entry's
// generation time of day.
func ExportFileName(entry Entry) string {
	return fmt.Sprintf("profile_%s_%s.txt", entry.Provider, entry.Timestamp.Format("150405"))
}

// Export writes an entry's raw profile string to a plain-text file in
// dir, creating the directory if needed. The file content is exactly
// the profile string. Returns the written path.
func Export(dir string, entry Entry) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating export directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, ExportFileName(entry))
	if err := os.WriteFile(path, []byte(entry.Profile.String()), 0644); err != nil {
		return "", fmt.Errorf("writing export %s: %w", path, err)
	}
	return path, nil
}
