package planner

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/studyflow/studyflow/internal/logger"
	"github.com/studyflow/studyflow/internal/models"
	"github.com/studyflow/studyflow/internal/storage"
	"github.com/studyflow/studyflow/internal/timeutil"
)

var (
	// ErrNotFound is returned by Update when the id does not exist.
	ErrNotFound = errors.New("session not found")

	// ErrInvalidRange is returned when a session's start time is not strictly
	// before its end time.
	ErrInvalidRange = errors.New("start time must be before end time")
)

// SessionInput carries the caller-supplied fields of a new session. The
// planner assigns identity and timestamps.
type SessionInput struct {
	CourseName string
	Day        models.Day
	StartTime  string
	EndTime    string
	Type       models.SessionType
	Intensity  models.Intensity
	Notes      string
}

// SessionPatch holds optional replacements for Update. Nil fields are left
// untouched.
type SessionPatch struct {
	CourseName *string
	Day        *models.Day
	StartTime  *string
	EndTime    *string
	Type       *models.SessionType
	Intensity  *models.Intensity
	Notes      *string
}

// Planner owns the canonical session collection. All mutation goes through
// it, and every successful mutation persists the full collection before
// returning. Not safe for concurrent use; the application is single-turn
// event driven.
type Planner struct {
	store    storage.Provider
	clock    timeutil.Clock
	sessions []models.StudySession
}

// New loads the session collection from the provider. A missing or corrupt
// store yields an empty collection rather than an error.
func New(store storage.Provider, clock timeutil.Clock) (*Planner, error) {
	sessions, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}
	if clock == nil {
		clock = timeutil.SystemClock{}
	}
	return &Planner{
		store:    store,
		clock:    clock,
		sessions: sessions,
	}, nil
}

func (p *Planner) persist() error {
	if err := p.store.Save(p.sessions); err != nil {
		return fmt.Errorf("failed to persist sessions: %w", err)
	}
	return nil
}

// validateRange rejects zero- and negative-duration sessions. The form layer
// checks this too, but the collection invariant should not depend on it.
func validateRange(startTime, endTime string) error {
	start, err := timeutil.TimeToMinutes(startTime)
	if err != nil {
		return err
	}
	end, err := timeutil.TimeToMinutes(endTime)
	if err != nil {
		return err
	}
	if start >= end {
		return ErrInvalidRange
	}
	return nil
}

// Add runs conflict detection against the candidate's day and, when clear,
// appends the new session with a fresh id and timestamps. Conflicts are a
// normal negative result: (nil, conflicts, nil) with no mutation.
func (p *Planner) Add(input SessionInput) (*models.StudySession, []models.TimeConflict, error) {
	if err := validateRange(input.StartTime, input.EndTime); err != nil {
		return nil, nil, err
	}

	candidate := models.StudySession{
		CourseName: input.CourseName,
		Day:        input.Day,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		Type:       input.Type,
		Intensity:  input.Intensity,
		Notes:      input.Notes,
	}

	conflicts := FindConflicts(candidate, p.sessionsOn(input.Day), "")
	if len(conflicts) > 0 {
		return nil, conflicts, nil
	}

	now := time.Now().UnixMilli()
	candidate.ID = uuid.New().String()
	candidate.CreatedAt = now
	candidate.UpdatedAt = now

	p.sessions = append(p.sessions, candidate)
	if err := p.persist(); err != nil {
		return nil, nil, err
	}

	logger.Debug("Session added", "id", candidate.ID, "course", candidate.CourseName, "day", candidate.Day)
	return &candidate, nil, nil
}

// Update merges the patch onto the stored session and re-runs conflict
// detection excluding the session itself, so it may keep its own slot. The
// collection is untouched on conflict or not-found.
func (p *Planner) Update(id string, patch SessionPatch) (*models.StudySession, []models.TimeConflict, error) {
	idx := -1
	for i := range p.sessions {
		if p.sessions[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	merged := p.sessions[idx]
	if patch.CourseName != nil {
		merged.CourseName = *patch.CourseName
	}
	if patch.Day != nil {
		merged.Day = *patch.Day
	}
	if patch.StartTime != nil {
		merged.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		merged.EndTime = *patch.EndTime
	}
	if patch.Type != nil {
		merged.Type = *patch.Type
	}
	if patch.Intensity != nil {
		merged.Intensity = *patch.Intensity
	}
	if patch.Notes != nil {
		merged.Notes = *patch.Notes
	}

	if err := validateRange(merged.StartTime, merged.EndTime); err != nil {
		return nil, nil, err
	}

	conflicts := FindConflicts(merged, p.sessionsOn(merged.Day), id)
	if len(conflicts) > 0 {
		return nil, conflicts, nil
	}

	merged.UpdatedAt = time.Now().UnixMilli()
	p.sessions[idx] = merged
	if err := p.persist(); err != nil {
		return nil, nil, err
	}

	logger.Debug("Session updated", "id", id)
	return &merged, nil, nil
}

// Delete removes the session if present. Deleting an unknown id is a benign
// no-op reported as false, not an error.
func (p *Planner) Delete(id string) (bool, error) {
	for i := range p.sessions {
		if p.sessions[i].ID == id {
			p.sessions = append(p.sessions[:i], p.sessions[i+1:]...)
			if err := p.persist(); err != nil {
				return false, err
			}
			logger.Debug("Session deleted", "id", id)
			return true, nil
		}
	}
	return false, nil
}

// Clear empties the whole collection unconditionally and resets the
// sample-data flag so the store can be reseeded.
func (p *Planner) Clear() error {
	p.sessions = nil
	if err := p.persist(); err != nil {
		return err
	}
	if err := p.store.SetSampleLoaded(false); err != nil {
		return err
	}
	logger.Debug("All sessions cleared")
	return nil
}

// sessionsOn returns the day's sessions in insertion order, unsorted.
func (p *Planner) sessionsOn(day models.Day) []models.StudySession {
	var out []models.StudySession
	for _, sess := range p.sessions {
		if sess.Day == day {
			out = append(out, sess)
		}
	}
	return out
}

// SessionsByDay returns the day's sessions sorted ascending by start time.
// Equal start times keep their original relative order.
func (p *Planner) SessionsByDay(day models.Day) []models.StudySession {
	out := p.sessionsOn(day)
	sort.SliceStable(out, func(i, j int) bool {
		si, _ := timeutil.TimeToMinutes(out[i].StartTime)
		sj, _ := timeutil.TimeToMinutes(out[j].StartTime)
		return si < sj
	})
	return out
}

// Sessions returns a copy of the full collection.
func (p *Planner) Sessions() []models.StudySession {
	out := make([]models.StudySession, len(p.sessions))
	copy(out, p.sessions)
	return out
}

// Get returns the session with the given id, or ErrNotFound.
func (p *Planner) Get(id string) (models.StudySession, error) {
	for _, sess := range p.sessions {
		if sess.ID == id {
			return sess, nil
		}
	}
	return models.StudySession{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// CheckConflicts exposes conflict detection as a read path so the form layer
// can pre-check a candidate before attempting the write.
func (p *Planner) CheckConflicts(input SessionInput, excludeID string) []models.TimeConflict {
	candidate := models.StudySession{
		CourseName: input.CourseName,
		Day:        input.Day,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		Type:       input.Type,
		Intensity:  input.Intensity,
		Notes:      input.Notes,
	}
	return FindConflicts(candidate, p.sessionsOn(input.Day), excludeID)
}

// CourseNames returns the distinct course names across all sessions,
// alphabetically sorted.
func (p *Planner) CourseNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, sess := range p.sessions {
		if !seen[sess.CourseName] {
			seen[sess.CourseName] = true
			names = append(names, sess.CourseName)
		}
	}
	sort.Strings(names)
	return names
}

// CurrentDay reports the weekday from the injected clock.
func (p *Planner) CurrentDay() models.Day {
	day, _ := p.clock.Now()
	return day
}

// TodaysSessions returns the sorted sessions for the clock's current weekday.
func (p *Planner) TodaysSessions() []models.StudySession {
	return p.SessionsByDay(p.CurrentDay())
}

// LoadSample seeds the demonstration week into an empty store. Reports
// whether seeding happened.
func (p *Planner) LoadSample() (bool, error) {
	if len(p.sessions) > 0 || p.store.SampleLoaded() {
		return false, nil
	}
	p.sessions = storage.SampleSessions()
	if err := p.persist(); err != nil {
		return false, err
	}
	if err := p.store.SetSampleLoaded(true); err != nil {
		return false, err
	}
	logger.Info("Sample data loaded", "sessions", len(p.sessions))
	return true, nil
}
