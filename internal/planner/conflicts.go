package planner

import (
	"github.com/studyflow/studyflow/internal/models"
	"github.com/studyflow/studyflow/internal/timeutil"
)

// overlapMinutes returns the length of the intersection of two half-open
// minute intervals, clamped at zero.
func overlapMinutes(start1, end1, start2, end2 int) int {
	overlapStart := start1
	if start2 > overlapStart {
		overlapStart = start2
	}
	overlapEnd := end1
	if end2 < overlapEnd {
		overlapEnd = end2
	}
	if overlapEnd <= overlapStart {
		return 0
	}
	return overlapEnd - overlapStart
}

// FindConflicts compares the candidate's [start, end) interval against every
// session in existing, skipping the one matching excludeID (used when a
// session is updated against itself). Intervals are half-open: a session
// ending exactly when another starts is not a conflict. Every conflicting
// session is reported, in input order, so callers can surface all of them.
//
// Pure function of its inputs; the caller supplies the day-filtered set.
func FindConflicts(candidate models.StudySession, existing []models.StudySession, excludeID string) []models.TimeConflict {
	candStart, err := timeutil.TimeToMinutes(candidate.StartTime)
	if err != nil {
		return nil
	}
	candEnd, err := timeutil.TimeToMinutes(candidate.EndTime)
	if err != nil {
		return nil
	}

	var conflicts []models.TimeConflict
	for _, sess := range existing {
		if excludeID != "" && sess.ID == excludeID {
			continue
		}
		start, err := timeutil.TimeToMinutes(sess.StartTime)
		if err != nil {
			continue
		}
		end, err := timeutil.TimeToMinutes(sess.EndTime)
		if err != nil {
			continue
		}

		if overlap := overlapMinutes(candStart, candEnd, start, end); overlap > 0 {
			conflicts = append(conflicts, models.TimeConflict{
				Existing:       sess,
				Candidate:      candidate,
				OverlapMinutes: overlap,
			})
		}
	}

	return conflicts
}
