package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"ferro/internal/domain"
	"ferro/internal/logging"
	"ferro/internal/ports"
)

// SQLiteRepository implements ports.WorkoutRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.WorkoutRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the ferro logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("FERRO_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository creates a new SQLiteRepository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Open database with WAL mode
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(
		&SnapshotModel{},
		&HistoryModel{},
		&CompletionModel{},
		&CompletionStatsModel{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveSnapshot implements SnapshotStore.SaveSnapshot. The (day, block)
// slot is overwritten in place.
func (r *SQLiteRepository) SaveSnapshot(ctx context.Context, snap domain.SessionSnapshot) error {
	model, err := domainToSnapshotModel(snap)
	if err != nil {
		return err
	}

	return withRetry(func() error {
		return r.db.WithContext(ctx).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(&model).Error
	}, 3)
}

// LoadSnapshot implements SnapshotStore.LoadSnapshot
func (r *SQLiteRepository) LoadSnapshot(ctx context.Context, day, blockName string) (*domain.SessionSnapshot, error) {
	var model SnapshotModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("day = ? AND block_name = ?", day, blockName).
			First(&model).Error
	}, 3)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, err
	}

	return snapshotModelToDomain(model)
}

// ClearSnapshot implements SnapshotStore.ClearSnapshot. Clearing an
// already-empty slot is not an error.
func (r *SQLiteRepository) ClearSnapshot(ctx context.Context, day, blockName string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("day = ? AND block_name = ?", day, blockName).
			Delete(&SnapshotModel{}).Error
	}, 3)
}

// MergeHistory implements HistoryStore.MergeHistory. Entries sharing
// (exercise, date, day) with an existing record merge by set number; the
// incoming set wins at equal positions.
func (r *SQLiteRepository) MergeHistory(ctx context.Context, entries []domain.HistoryEntry) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for _, entry := range entries {
				var existing HistoryModel
				err := tx.Where("exercise_name = ? AND date = ? AND day_name = ?",
					entry.ExerciseName, entry.Date, entry.DayName).
					First(&existing).Error

				if errors.Is(err, gorm.ErrRecordNotFound) {
					if entry.ID == "" {
						entry.ID = uuid.NewString()
					}
					model, err := domainToHistoryModel(entry)
					if err != nil {
						return err
					}
					if err := tx.Create(&model).Error; err != nil {
						return fmt.Errorf("failed to create history entry: %w", err)
					}
					continue
				}
				if err != nil {
					return fmt.Errorf("failed to load history entry: %w", err)
				}

				current, err := historyModelToDomain(existing)
				if err != nil {
					return err
				}
				current.Sets = domain.MergeSets(current.Sets, entry.Sets)

				merged, err := domainToHistoryModel(current)
				if err != nil {
					return err
				}
				if err := tx.Save(&merged).Error; err != nil {
					return fmt.Errorf("failed to update history entry: %w", err)
				}
			}
			return nil
		})
	}, 3)
}

// HistoryByExercise implements HistoryStore.HistoryByExercise, newest first
func (r *SQLiteRepository) HistoryByExercise(ctx context.Context, exerciseName string) ([]domain.HistoryEntry, error) {
	var models []HistoryModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("exercise_name = ?", exerciseName).
			Order("date DESC").
			Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.HistoryEntry, 0, len(models))
	for _, m := range models {
		entry, err := historyModelToDomain(m)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// LastCompletedSets implements HistoryStore.LastCompletedSets
func (r *SQLiteRepository) LastCompletedSets(ctx context.Context, exerciseName string) ([]domain.LoggedSet, error) {
	var model HistoryModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("exercise_name = ?", exerciseName).
			Order("date DESC").
			First(&model).Error
	}, 3)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	entry, err := historyModelToDomain(model)
	if err != nil {
		return nil, err
	}
	return entry.Sets, nil
}

// MarkCompleted implements CompletionStore.MarkCompleted. Marking the same
// session twice updates the timestamp.
func (r *SQLiteRepository) MarkCompleted(ctx context.Context, blockName string, week int, dayName string) error {
	model := CompletionModel{
		BlockName:   blockName,
		Week:        week,
		DayName:     dayName,
		CompletedAt: time.Now().UTC(),
	}

	return withRetry(func() error {
		return r.db.WithContext(ctx).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(&model).Error
	}, 3)
}

// CompletedDays implements CompletionStore.CompletedDays
func (r *SQLiteRepository) CompletedDays(ctx context.Context, blockName string, week int) ([]string, error) {
	var models []CompletionModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("block_name = ? AND week = ?", blockName, week).
			Order("completed_at ASC").
			Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	days := make([]string, len(models))
	for i, m := range models {
		days[i] = m.DayName
	}
	return days, nil
}

// SaveCompletionStats implements CompletionStore.SaveCompletionStats
func (r *SQLiteRepository) SaveCompletionStats(ctx context.Context, blockName string, week int, dayName string, stats domain.CompletionStats) error {
	model := CompletionStatsModel{
		BlockName:       blockName,
		Week:            week,
		DayName:         dayName,
		DurationMinutes: stats.DurationMinutes,
		TotalVolume:     stats.TotalVolume,
		Date:            stats.Date,
	}

	return withRetry(func() error {
		return r.db.WithContext(ctx).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(&model).Error
	}, 3)
}

// CompletionStatsByWeek implements CompletionStore.CompletionStatsByWeek
func (r *SQLiteRepository) CompletionStatsByWeek(ctx context.Context, blockName string, week int) (map[string]domain.CompletionStats, error) {
	var models []CompletionStatsModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("block_name = ? AND week = ?", blockName, week).
			Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	result := make(map[string]domain.CompletionStats, len(models))
	for _, m := range models {
		result[m.DayName] = domain.CompletionStats{
			DurationMinutes: m.DurationMinutes,
			TotalVolume:     m.TotalVolume,
			Date:            m.Date,
		}
	}
	return result, nil
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
