package storage

import (
	"encoding/json"
	"fmt"

	"ferro/internal/domain"
)

// snapshotModelToDomain converts a SnapshotModel (GORM) to domain.SessionSnapshot
func snapshotModelToDomain(m SnapshotModel) (*domain.SessionSnapshot, error) {
	snap := &domain.SessionSnapshot{
		Day:              m.Day,
		BlockName:        m.BlockName,
		WorkoutStartTime: m.WorkoutStartTime,
		WorkoutDuration:  m.WorkoutDuration,
		SavedAt:          m.SavedAt,
		SpecFingerprint:  m.SpecFingerprint,
	}

	if err := json.Unmarshal([]byte(m.SetsData), &snap.AllSetsData); err != nil {
		return nil, fmt.Errorf("failed to decode sets data: %w", err)
	}
	if err := json.Unmarshal([]byte(m.ExerciseNotes), &snap.ExerciseNotes); err != nil {
		return nil, fmt.Errorf("failed to decode exercise notes: %w", err)
	}
	if err := json.Unmarshal([]byte(m.SupersetLinks), &snap.SupersetLinks); err != nil {
		return nil, fmt.Errorf("failed to decode superset links: %w", err)
	}

	return snap, nil
}

// domainToSnapshotModel converts a domain.SessionSnapshot to SnapshotModel (GORM)
func domainToSnapshotModel(snap domain.SessionSnapshot) (SnapshotModel, error) {
	setsData, err := json.Marshal(snap.AllSetsData)
	if err != nil {
		return SnapshotModel{}, fmt.Errorf("failed to encode sets data: %w", err)
	}

	notes := snap.ExerciseNotes
	if notes == nil {
		notes = map[int]string{}
	}
	notesData, err := json.Marshal(notes)
	if err != nil {
		return SnapshotModel{}, fmt.Errorf("failed to encode exercise notes: %w", err)
	}

	links := snap.SupersetLinks
	if links == nil {
		links = map[int]bool{}
	}
	linksData, err := json.Marshal(links)
	if err != nil {
		return SnapshotModel{}, fmt.Errorf("failed to encode superset links: %w", err)
	}

	return SnapshotModel{
		Day:              snap.Day,
		BlockName:        snap.BlockName,
		SetsData:         string(setsData),
		ExerciseNotes:    string(notesData),
		SupersetLinks:    string(linksData),
		WorkoutStartTime: snap.WorkoutStartTime,
		WorkoutDuration:  snap.WorkoutDuration,
		SavedAt:          snap.SavedAt,
		SpecFingerprint:  snap.SpecFingerprint,
	}, nil
}

// historyModelToDomain converts a HistoryModel (GORM) to domain.HistoryEntry
func historyModelToDomain(m HistoryModel) (domain.HistoryEntry, error) {
	entry := domain.HistoryEntry{
		ID:           m.ID,
		ExerciseName: m.ExerciseName,
		Date:         m.Date,
		DayName:      m.DayName,
	}
	if err := json.Unmarshal([]byte(m.Sets), &entry.Sets); err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("failed to decode history sets: %w", err)
	}
	return entry, nil
}

// domainToHistoryModel converts a domain.HistoryEntry to HistoryModel (GORM)
func domainToHistoryModel(e domain.HistoryEntry) (HistoryModel, error) {
	sets, err := json.Marshal(e.Sets)
	if err != nil {
		return HistoryModel{}, fmt.Errorf("failed to encode history sets: %w", err)
	}
	return HistoryModel{
		ID:           e.ID,
		ExerciseName: e.ExerciseName,
		Date:         e.Date,
		DayName:      e.DayName,
		Sets:         string(sets),
	}, nil
}
