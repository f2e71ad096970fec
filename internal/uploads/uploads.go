// Package uploads validates attachment filenames and derives the URLs under
// which uploaded objects are served. Only metadata is stored; file bodies are
// handled by an external object store.
package uploads

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const MaxFilenameLength = 255

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

// ValidateFilename rejects names that are empty, too long, or carry an
// extension outside the allowlist.
func ValidateFilename(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename is empty")
	}
	if len(filename) > MaxFilenameLength {
		return fmt.Errorf("filename exceeds %d characters", MaxFilenameLength)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return fmt.Errorf("file %s has an unsupported format, allowed: JPG, PNG, PDF", filename)
	}

	return nil
}

// ObjectURL returns the URL an uploaded file is served under. The stored
// object name is a fresh UUID so uploads never collide or leak the original
// filename.
func ObjectURL(baseURL, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%s%s", strings.TrimRight(baseURL, "/"), uuid.NewString(), ext)
}
