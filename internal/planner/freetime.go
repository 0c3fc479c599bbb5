package planner

import (
	"sort"

	"github.com/studyflow/studyflow/internal/constants"
	"github.com/studyflow/studyflow/internal/models"
	"github.com/studyflow/studyflow/internal/timeutil"
)

// FreeSlots scans each day's sorted sessions for unscheduled gaps inside the
// daily window: before the first session, between sessions, and after the
// last. A day with no sessions contributes the whole window. Gaps below the
// minimum are discarded, and the pooled result across the week is sorted
// descending by duration and truncated to the top slots.
func (p *Planner) FreeSlots() []models.FreeTimeSlot {
	dayStart, _ := timeutil.TimeToMinutes(constants.FreeTimeDayStart)
	dayEnd, _ := timeutil.TimeToMinutes(constants.FreeTimeDayEnd)

	var slots []models.FreeTimeSlot

	for _, day := range models.DaysOfWeek {
		sessions := p.SessionsByDay(day)

		if len(sessions) == 0 {
			slots = append(slots, models.FreeTimeSlot{
				Day:       day,
				StartTime: constants.FreeTimeDayStart,
				EndTime:   constants.FreeTimeDayEnd,
				Duration:  dayEnd - dayStart,
			})
			continue
		}

		// Gap before the first session
		firstStart, err := timeutil.TimeToMinutes(sessions[0].StartTime)
		if err == nil && firstStart-dayStart >= constants.MinFreeSlotMinutes {
			slots = append(slots, models.FreeTimeSlot{
				Day:       day,
				StartTime: constants.FreeTimeDayStart,
				EndTime:   sessions[0].StartTime,
				Duration:  firstStart - dayStart,
			})
		}

		// Gaps between sessions
		for i := 0; i < len(sessions)-1; i++ {
			currentEnd, err1 := timeutil.TimeToMinutes(sessions[i].EndTime)
			nextStart, err2 := timeutil.TimeToMinutes(sessions[i+1].StartTime)
			if err1 != nil || err2 != nil {
				continue
			}
			if gap := nextStart - currentEnd; gap >= constants.MinFreeSlotMinutes {
				slots = append(slots, models.FreeTimeSlot{
					Day:       day,
					StartTime: sessions[i].EndTime,
					EndTime:   sessions[i+1].StartTime,
					Duration:  gap,
				})
			}
		}

		// Gap after the last session
		lastEnd, err := timeutil.TimeToMinutes(sessions[len(sessions)-1].EndTime)
		if err == nil && dayEnd-lastEnd >= constants.MinFreeSlotMinutes {
			slots = append(slots, models.FreeTimeSlot{
				Day:       day,
				StartTime: sessions[len(sessions)-1].EndTime,
				EndTime:   constants.FreeTimeDayEnd,
				Duration:  dayEnd - lastEnd,
			})
		}
	}

	// Largest gaps first; ties keep Monday-to-Sunday scan order.
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Duration > slots[j].Duration
	})

	if len(slots) > constants.MaxFreeSlots {
		slots = slots[:constants.MaxFreeSlots]
	}
	return slots
}
