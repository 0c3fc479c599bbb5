package storage

import "github.com/studyflow/studyflow/internal/models"

// Provider is the durable persistence collaborator. The planner reads the
// full session collection once at startup and writes it back whole after
// every mutation; there is no partial persistence.
type Provider interface {
	// Lifecycle
	Init() error
	Load() ([]models.StudySession, error)
	Close() error

	// Sessions
	Save(sessions []models.StudySession) error

	// Sample-data flag
	SampleLoaded() bool
	SetSampleLoaded(loaded bool) error

	// Utils
	Path() string
}
