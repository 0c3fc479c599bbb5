package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/studyflow/studyflow/internal/logger"
	"github.com/studyflow/studyflow/internal/models"
)

type jsonFile struct {
	Version      int                   `json:"version"`
	SampleLoaded bool                  `json:"sample_loaded"`
	Sessions     []models.StudySession `json:"sessions"`
}

type JSONStore struct {
	path string
	file *jsonFile
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.file = &jsonFile{
		Version:  1,
		Sessions: []models.StudySession{},
	}

	return s.save()
}

// Load reads the full session collection. A missing or unreadable file is
// treated as an empty collection so the planner always starts.
func (s *JSONStore) Load() ([]models.StudySession, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Storage unreadable, starting empty", "path", s.path, "error", err)
		}
		s.file = &jsonFile{Version: 1, Sessions: []models.StudySession{}}
		return nil, nil
	}

	s.file = &jsonFile{}
	if err := json.Unmarshal(data, s.file); err != nil {
		logger.Warn("Storage corrupt, starting empty", "path", s.path, "error", err)
		s.file = &jsonFile{Version: 1, Sessions: []models.StudySession{}}
		return nil, nil
	}

	if s.file.Sessions == nil {
		s.file.Sessions = []models.StudySession{}
	}

	return s.file.Sessions, nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(s.file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Save(sessions []models.StudySession) error {
	if s.file == nil {
		s.file = &jsonFile{Version: 1}
	}
	s.file.Sessions = sessions
	return s.save()
}

func (s *JSONStore) SampleLoaded() bool {
	return s.file != nil && s.file.SampleLoaded
}

func (s *JSONStore) SetSampleLoaded(loaded bool) error {
	if s.file == nil {
		s.file = &jsonFile{Version: 1, Sessions: []models.StudySession{}}
	}
	s.file.SampleLoaded = loaded
	return s.save()
}

func (s *JSONStore) Path() string {
	return s.path
}
