package utils

import (
	"lms/config"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateStorageName builds a collision-safe storage filename preserving
// the original extension. The client-supplied name is never used in paths.
func GenerateStorageName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return time.Now().Format("20060102150405") + "_" + uuid.NewString()[:8] + ext
}

// CommitFiles persists every buffered file of a parsed form under its
// kind subdirectory. Called only after the primary entity write has
// succeeded, so a failed request leaves nothing on disk.
func CommitFiles(form *MultipartForm) error {
	for i := range form.Files {
		if err := commitFile(&form.Files[i]); err != nil {
			return err
		}
	}
	return nil
}

func commitFile(f *FormFile) error {
	destDir := filepath.Join(config.AppConfig.UploadDir, f.Kind)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return err
	}

	storedName := GenerateStorageName(f.OriginalName)
	if err := os.WriteFile(filepath.Join(destDir, storedName), f.Data, 0644); err != nil {
		return err
	}

	f.StoredName = storedName
	f.Path = filepath.Join(f.Kind, storedName)
	f.Data = nil
	return nil
}

// DiscardFiles drops the in-memory buffers of a parsed form after the
// primary write failed. Uncommitted files never touched disk.
func DiscardFiles(form *MultipartForm) {
	if form == nil {
		return
	}
	for i := range form.Files {
		form.Files[i].Data = nil
	}
}

func GetFileURL(filePath string) string {
	if filePath == "" {
		return ""
	}
	return "/uploads/" + filePath
}
