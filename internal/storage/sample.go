package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/studyflow/studyflow/internal/models"
)

// SampleSessions returns a fixed demonstration week spanning all seven days.
// Timestamps are synthetic and sequential so created-at ordering matches list
// order.
func SampleSessions() []models.StudySession {
	samples := []models.StudySession{
		// Monday
		{
			CourseName: "Linear Algebra",
			Day:        models.Monday,
			StartTime:  "09:00",
			EndTime:    "10:30",
			Type:       models.TypeLecture,
			Intensity:  models.IntensityMedium,
			Notes:      "Chapter 5: Eigenvalues and Eigenvectors",
		},
		{
			CourseName: "Data Structures",
			Day:        models.Monday,
			StartTime:  "14:00",
			EndTime:    "15:30",
			Type:       models.TypeLecture,
			Intensity:  models.IntensityHeavy,
			Notes:      "Binary trees and graph algorithms",
		},

		// Tuesday
		{
			CourseName: "Physics 201",
			Day:        models.Tuesday,
			StartTime:  "08:00",
			EndTime:    "09:30",
			Type:       models.TypeLecture,
			Intensity:  models.IntensityMedium,
		},
		{
			CourseName: "Linear Algebra",
			Day:        models.Tuesday,
			StartTime:  "11:00",
			EndTime:    "12:30",
			Type:       models.TypePersonal,
			Intensity:  models.IntensityLight,
			Notes:      "Practice problems from homework set 4",
		},

		// Wednesday
		{
			CourseName: "Data Structures",
			Day:        models.Wednesday,
			StartTime:  "10:00",
			EndTime:    "12:00",
			Type:       models.TypeRevision,
			Intensity:  models.IntensityHeavy,
			Notes:      "Prepare for upcoming quiz",
		},
		{
			CourseName: "Technical Writing",
			Day:        models.Wednesday,
			StartTime:  "14:00",
			EndTime:    "15:00",
			Type:       models.TypeLecture,
			Intensity:  models.IntensityLight,
		},

		// Thursday
		{
			CourseName: "Linear Algebra",
			Day:        models.Thursday,
			StartTime:  "09:00",
			EndTime:    "10:30",
			Type:       models.TypeLecture,
			Intensity:  models.IntensityMedium,
		},
		{
			CourseName: "Physics 201",
			Day:        models.Thursday,
			StartTime:  "13:00",
			EndTime:    "14:30",
			Type:       models.TypePersonal,
			Intensity:  models.IntensityMedium,
			Notes:      "Lab report preparation",
		},
		{
			CourseName: "Data Structures",
			Day:        models.Thursday,
			StartTime:  "16:00",
			EndTime:    "17:30",
			Type:       models.TypePersonal,
			Intensity:  models.IntensityHeavy,
			Notes:      "Implement binary search tree project",
		},

		// Friday
		{
			CourseName: "Physics 201",
			Day:        models.Friday,
			StartTime:  "10:00",
			EndTime:    "11:30",
			Type:       models.TypeLecture,
			Intensity:  models.IntensityMedium,
		},
		{
			CourseName: "Technical Writing",
			Day:        models.Friday,
			StartTime:  "14:00",
			EndTime:    "15:30",
			Type:       models.TypeRevision,
			Intensity:  models.IntensityLight,
			Notes:      "Review essay draft",
		},

		// Saturday - light study day
		{
			CourseName: "Linear Algebra",
			Day:        models.Saturday,
			StartTime:  "10:00",
			EndTime:    "11:30",
			Type:       models.TypeRevision,
			Intensity:  models.IntensityLight,
			Notes:      "Weekly review of concepts",
		},

		// Sunday - rest or light catch-up
		{
			CourseName: "Data Structures",
			Day:        models.Sunday,
			StartTime:  "15:00",
			EndTime:    "16:30",
			Type:       models.TypePersonal,
			Intensity:  models.IntensityLight,
			Notes:      "Read ahead for next week",
		},
	}

	now := time.Now().UnixMilli()
	for i := range samples {
		samples[i].ID = uuid.New().String()
		ts := now - int64(len(samples)-i)*3600000
		samples[i].CreatedAt = ts
		samples[i].UpdatedAt = ts
	}

	return samples
}
