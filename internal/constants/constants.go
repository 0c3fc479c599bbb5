package constants

const (
	AppName           = "studyflow"
	DefaultConfigPath = "~/.config/studyflow/studyflow.db"
	Version           = "v0.3.0"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// FreeTimeDayStart and FreeTimeDayEnd bound the daily window scanned for
	// free-time suggestions.
	FreeTimeDayStart = "08:00"
	FreeTimeDayEnd   = "21:00"

	// MinFreeSlotMinutes is the smallest gap worth suggesting.
	MinFreeSlotMinutes = 60

	// MaxFreeSlots caps the week-wide free-time suggestion list.
	MaxFreeSlots = 5
)
