// Package filestore keeps the plugin parameters in a local file.
package filestore

import (
	"context"
	"fmt"
	json "github.com/goccy/go-json"
	"iconpicker/internal/models"
	"os"
	"sync"
)

type Store struct {
	path       string
	compressor Compressor
	mu         sync.Mutex
}

// New returns a store at path. A nil compressor stores plain JSON.
func New(path string, compressor Compressor) *Store {
	if compressor == nil {
		compressor = identity{}
	}
	return &Store{path: path, compressor: compressor}
}

// Load returns empty parameters when the file does not exist yet.
func (s *Store) Load(_ context.Context) (models.Parameters, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var params models.Parameters
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return params, nil
		}
		return params, err
	}

	raw, err := s.compressor.Decompress(data)
	if err != nil {
		return params, fmt.Errorf("decompress %s: %w", s.path, err)
	}
	if err = json.Unmarshal(raw, &params); err != nil {
		return params, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return params, nil
}

// Replace writes to a temp file and renames it over the old record, so a
// reader sees either the old or the new parameters.
func (s *Store) Replace(_ context.Context, params models.Parameters) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	jsonData, err := json.Marshal(params)
	if err != nil {
		return err
	}
	data, err := s.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := s.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, s.path)
}
