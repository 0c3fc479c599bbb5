package planner

import (
	"errors"
	"reflect"
	"testing"

	"github.com/studyflow/studyflow/internal/models"
	"github.com/studyflow/studyflow/internal/timeutil"
)

// memStore is an in-memory storage.Provider for planner tests. It records
// how often Save runs so persistence-per-mutation can be asserted.
type memStore struct {
	sessions     []models.StudySession
	sampleLoaded bool
	saveCount    int
}

func (s *memStore) Init() error { return nil }

func (s *memStore) Load() ([]models.StudySession, error) {
	out := make([]models.StudySession, len(s.sessions))
	copy(out, s.sessions)
	return out, nil
}

func (s *memStore) Save(sessions []models.StudySession) error {
	s.sessions = make([]models.StudySession, len(sessions))
	copy(s.sessions, sessions)
	s.saveCount++
	return nil
}

func (s *memStore) SampleLoaded() bool { return s.sampleLoaded }

func (s *memStore) SetSampleLoaded(loaded bool) error {
	s.sampleLoaded = loaded
	return nil
}

func (s *memStore) Close() error { return nil }
func (s *memStore) Path() string { return "memory" }

func newTestPlanner(t *testing.T) (*Planner, *memStore) {
	t.Helper()
	store := &memStore{}
	p, err := New(store, timeutil.FixedClock{Day: models.Monday, Time: "12:00"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return p, store
}

func input(course string, day models.Day, start, end string) SessionInput {
	return SessionInput{
		CourseName: course,
		Day:        day,
		StartTime:  start,
		EndTime:    end,
		Type:       models.TypeLecture,
		Intensity:  models.IntensityMedium,
	}
}

func mustAdd(t *testing.T, p *Planner, in SessionInput) models.StudySession {
	t.Helper()
	sess, conflicts, err := p.Add(in)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if len(conflicts) > 0 {
		t.Fatalf("Add reported unexpected conflicts: %+v", conflicts)
	}
	return *sess
}

func TestAdd_AssignsIdentityAndTimestamps(t *testing.T) {
	p, store := newTestPlanner(t)

	sess := mustAdd(t, p, input("Linear Algebra", models.Monday, "09:00", "10:30"))

	if sess.ID == "" {
		t.Error("expected assigned ID")
	}
	if sess.CreatedAt == 0 || sess.UpdatedAt != sess.CreatedAt {
		t.Errorf("expected CreatedAt == UpdatedAt != 0, got %d / %d", sess.CreatedAt, sess.UpdatedAt)
	}
	if store.saveCount != 1 {
		t.Errorf("expected 1 persist, got %d", store.saveCount)
	}
}

func TestAdd_RejectsInvalidRange(t *testing.T) {
	p, store := newTestPlanner(t)

	for _, times := range [][2]string{{"10:00", "10:00"}, {"11:00", "10:00"}} {
		_, _, err := p.Add(input("X", models.Monday, times[0], times[1]))
		if !errors.Is(err, ErrInvalidRange) {
			t.Errorf("Add(%s, %s): expected ErrInvalidRange, got %v", times[0], times[1], err)
		}
	}
	if store.saveCount != 0 {
		t.Errorf("invalid adds must not persist, got %d saves", store.saveCount)
	}
}

func TestAdd_ConflictLeavesStoreUnchanged(t *testing.T) {
	p, store := newTestPlanner(t)
	mustAdd(t, p, input("A", models.Monday, "09:00", "10:00"))
	before := p.Sessions()
	savesBefore := store.saveCount

	sess, conflicts, err := p.Add(input("B", models.Monday, "09:30", "10:30"))
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if sess != nil {
		t.Error("conflicting Add returned a session")
	}
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(conflicts))
	}
	if !reflect.DeepEqual(before, p.Sessions()) {
		t.Error("collection mutated by failed Add")
	}
	if store.saveCount != savesBefore {
		t.Error("failed Add persisted")
	}
}

func TestSessionsByDay_SortedByStartTime(t *testing.T) {
	p, _ := newTestPlanner(t)
	mustAdd(t, p, input("Late", models.Tuesday, "14:00", "15:00"))
	mustAdd(t, p, input("Early", models.Tuesday, "08:00", "09:00"))
	mustAdd(t, p, input("Middle", models.Tuesday, "10:00", "11:00"))
	mustAdd(t, p, input("Other day", models.Wednesday, "07:00", "08:00"))

	got := p.SessionsByDay(models.Tuesday)
	if len(got) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(got))
	}
	want := []string{"Early", "Middle", "Late"}
	for i, name := range want {
		if got[i].CourseName != name {
			t.Errorf("position %d: got %q, want %q", i, got[i].CourseName, name)
		}
	}
}

func TestUpdate_NotFound(t *testing.T) {
	p, _ := newTestPlanner(t)
	_, _, err := p.Update("missing", SessionPatch{})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdate_ConflictLeavesCollectionUnchanged(t *testing.T) {
	p, _ := newTestPlanner(t)
	mustAdd(t, p, input("A", models.Monday, "09:00", "10:00"))
	b := mustAdd(t, p, input("B", models.Monday, "10:00", "11:00"))
	before := p.Sessions()

	newStart := "09:30"
	sess, conflicts, err := p.Update(b.ID, SessionPatch{StartTime: &newStart})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if sess != nil {
		t.Error("conflicting Update returned a session")
	}
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(conflicts))
	}
	if !reflect.DeepEqual(before, p.Sessions()) {
		t.Error("collection mutated by failed Update")
	}
}

func TestUpdate_KeepsOwnSlot(t *testing.T) {
	p, _ := newTestPlanner(t)
	a := mustAdd(t, p, input("A", models.Monday, "09:00", "10:00"))

	// Changing only the course must not conflict with the session itself
	course := "A renamed"
	sess, conflicts, err := p.Update(a.ID, SessionPatch{CourseName: &course})
	if err != nil || len(conflicts) > 0 {
		t.Fatalf("Update failed: err=%v conflicts=%+v", err, conflicts)
	}
	if sess.CourseName != "A renamed" {
		t.Errorf("course = %q", sess.CourseName)
	}
	if sess.ID != a.ID || sess.CreatedAt != a.CreatedAt {
		t.Error("Update must preserve ID and CreatedAt")
	}
	if sess.UpdatedAt < a.UpdatedAt {
		t.Error("Update must refresh UpdatedAt")
	}
}

func TestUpdate_MergesPartialFields(t *testing.T) {
	p, _ := newTestPlanner(t)
	a := mustAdd(t, p, SessionInput{
		CourseName: "Physics",
		Day:        models.Friday,
		StartTime:  "10:00",
		EndTime:    "11:30",
		Type:       models.TypeLecture,
		Intensity:  models.IntensityMedium,
		Notes:      "bring calculator",
	})

	day := models.Saturday
	sess, conflicts, err := p.Update(a.ID, SessionPatch{Day: &day})
	if err != nil || len(conflicts) > 0 {
		t.Fatalf("Update failed: err=%v conflicts=%+v", err, conflicts)
	}
	if sess.Day != models.Saturday {
		t.Errorf("day = %s", sess.Day)
	}
	// Untouched fields survive the merge
	if sess.CourseName != "Physics" || sess.StartTime != "10:00" || sess.Notes != "bring calculator" {
		t.Errorf("unpatched fields changed: %+v", sess)
	}
}

func TestDelete_IdempotentNoOp(t *testing.T) {
	p, _ := newTestPlanner(t)
	a := mustAdd(t, p, input("A", models.Monday, "09:00", "10:00"))

	removed, err := p.Delete(a.ID)
	if err != nil || !removed {
		t.Fatalf("first Delete = (%v, %v), want (true, nil)", removed, err)
	}

	removed, err = p.Delete(a.ID)
	if err != nil {
		t.Fatalf("second Delete errored: %v", err)
	}
	if removed {
		t.Error("second Delete reported removal")
	}
	if len(p.Sessions()) != 0 {
		t.Errorf("collection size = %d after double delete", len(p.Sessions()))
	}
}

func TestClear_EmptiesAndResetsSampleFlag(t *testing.T) {
	p, store := newTestPlanner(t)
	mustAdd(t, p, input("A", models.Monday, "09:00", "10:00"))
	store.sampleLoaded = true

	if err := p.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if len(p.Sessions()) != 0 {
		t.Error("Clear left sessions behind")
	}
	if store.sampleLoaded {
		t.Error("Clear must reset the sample-loaded flag")
	}
}

func TestCourseNames_DistinctSorted(t *testing.T) {
	p, _ := newTestPlanner(t)
	mustAdd(t, p, input("Zoology", models.Monday, "09:00", "10:00"))
	mustAdd(t, p, input("Algebra", models.Tuesday, "09:00", "10:00"))
	mustAdd(t, p, input("Zoology", models.Wednesday, "09:00", "10:00"))

	got := p.CourseNames()
	want := []string{"Algebra", "Zoology"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CourseNames = %v, want %v", got, want)
	}
}

func TestTodaysSessions_UsesInjectedClock(t *testing.T) {
	store := &memStore{}
	p, err := New(store, timeutil.FixedClock{Day: models.Thursday, Time: "09:00"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	mustAdd(t, p, input("Thursday thing", models.Thursday, "10:00", "11:00"))
	mustAdd(t, p, input("Friday thing", models.Friday, "10:00", "11:00"))

	if p.CurrentDay() != models.Thursday {
		t.Errorf("CurrentDay = %s", p.CurrentDay())
	}
	today := p.TodaysSessions()
	if len(today) != 1 || today[0].CourseName != "Thursday thing" {
		t.Errorf("TodaysSessions = %+v", today)
	}
}

func TestLoadSample_SeedsOnlyEmptyStore(t *testing.T) {
	p, store := newTestPlanner(t)

	seeded, err := p.LoadSample()
	if err != nil {
		t.Fatalf("LoadSample failed: %v", err)
	}
	if !seeded {
		t.Fatal("expected seeding on empty store")
	}
	if len(p.Sessions()) != 13 {
		t.Errorf("expected 13 sample sessions, got %d", len(p.Sessions()))
	}
	if !store.sampleLoaded {
		t.Error("sample flag not set")
	}

	// Second call is a no-op
	seeded, err = p.LoadSample()
	if err != nil {
		t.Fatalf("LoadSample failed: %v", err)
	}
	if seeded {
		t.Error("LoadSample reseeded a populated store")
	}
}

// End-to-end scenario: light Monday grows to balanced, then a third write
// fails against the second session with a 90-minute overlap.
func TestScenario_MondayWorkloadAndConflict(t *testing.T) {
	p, _ := newTestPlanner(t)

	mustAdd(t, p, input("First", models.Monday, "09:00", "10:30")) // 90 min
	if status := p.DayStats(models.Monday).Status; status != models.DayLight {
		t.Fatalf("after first session: status = %s, want light", status)
	}

	// Touching boundary, no conflict
	second := mustAdd(t, p, input("Second", models.Monday, "10:30", "12:30")) // 120 min

	stats := p.DayStats(models.Monday)
	if stats.TotalMinutes != 210 {
		t.Errorf("total = %d, want 210", stats.TotalMinutes)
	}
	if stats.Status != models.DayBalanced {
		t.Errorf("status = %s, want balanced", stats.Status)
	}

	sess, conflicts, err := p.Add(input("Third", models.Monday, "10:00", "11:00"))
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if sess != nil {
		t.Error("conflicting Add succeeded")
	}
	if len(conflicts) != 1 {
		t.Fatalf("expected exactly 1 conflict, got %d", len(conflicts))
	}
	if conflicts[0].Existing.ID != second.ID {
		t.Errorf("conflict against %s, want second session", conflicts[0].Existing.CourseName)
	}
	if conflicts[0].OverlapMinutes != 90 {
		t.Errorf("overlap = %d, want 90", conflicts[0].OverlapMinutes)
	}
}
