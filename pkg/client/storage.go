package client

import (
	"os"
	"strings"
)

// LocaleStorage persists the active locale across process restarts.
type LocaleStorage interface {
	Load() (string, error)
	Save(locale string) error
}

// FileLocaleStorage keeps the locale in a plain text file.
type FileLocaleStorage struct {
	Path string
}

func NewFileLocaleStorage(path string) *FileLocaleStorage {
	return &FileLocaleStorage{Path: path}
}

func (s *FileLocaleStorage) Load() (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileLocaleStorage) Save(locale string) error {
	return os.WriteFile(s.Path, []byte(locale+"\n"), 0o644)
}
