package storage

import "time"

// SnapshotModel is the GORM model for in-progress session snapshots.
// One row per (day, block) slot; structured fields are stored as JSON.
type SnapshotModel struct {
	BlockName        string `gorm:"primaryKey"`
	CreatedAt        time.Time
	Day              string `gorm:"primaryKey"`
	ExerciseNotes    string `gorm:"not null;default:'{}'"`
	SavedAt          time.Time
	SetsData         string `gorm:"not null;default:'[]'"`
	SpecFingerprint  string `gorm:"not null;default:''"`
	SupersetLinks    string `gorm:"not null;default:'{}'"`
	UpdatedAt        time.Time
	WorkoutDuration  int        `gorm:"not null;default:0"`
	WorkoutStartTime *time.Time `gorm:"default:null"`
}

// TableName specifies the table name for GORM
func (SnapshotModel) TableName() string { return "session_snapshots" }

// HistoryModel is the GORM model for workout history entries. The
// (exercise_name, date, day_name) triple is the merge key.
type HistoryModel struct {
	CreatedAt    time.Time
	Date         string `gorm:"not null;uniqueIndex:idx_history_key;index:idx_history_date"`
	DayName      string `gorm:"not null;uniqueIndex:idx_history_key"`
	ExerciseName string `gorm:"not null;uniqueIndex:idx_history_key;index:idx_history_exercise"`
	ID           string `gorm:"primaryKey"`
	Sets         string `gorm:"not null;default:'[]'"`
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (HistoryModel) TableName() string { return "workout_history" }

// CompletionModel is the GORM model for finished (day, week) marks
type CompletionModel struct {
	BlockName   string `gorm:"primaryKey"`
	CompletedAt time.Time
	CreatedAt   time.Time
	DayName     string `gorm:"primaryKey"`
	UpdatedAt   time.Time
	Week        int `gorm:"primaryKey"`
}

// TableName specifies the table name for GORM
func (CompletionModel) TableName() string { return "session_completions" }

// CompletionStatsModel is the GORM model for per-session aggregates
type CompletionStatsModel struct {
	BlockName       string `gorm:"primaryKey"`
	CreatedAt       time.Time
	Date            string `gorm:"not null;default:''"`
	DayName         string `gorm:"primaryKey"`
	DurationMinutes int    `gorm:"not null;default:0"`
	TotalVolume     float64 `gorm:"not null;default:0"`
	UpdatedAt       time.Time
	Week            int `gorm:"primaryKey"`
}

// TableName specifies the table name for GORM
func (CompletionStatsModel) TableName() string { return "session_completion_stats" }
