package db

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/larderhq/larder/internal/models"
)

// GetAppState retrieves the current application state row.
func (db *DB) GetAppState() (*models.AppState, error) {
	var state models.AppState
	err := db.Where("id = ?", "default").First(&state).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return &models.AppState{ID: "default"}, nil
		}
		return nil, err
	}
	return &state, nil
}

// GetOrCreateTrackingID returns the persistent anonymous tracking ID,
// creating one if it doesn't exist. On any error it falls back to a
// per-session ID.
func (db *DB) GetOrCreateTrackingID() string {
	state, err := db.GetAppState()
	if err != nil {
		return generateSessionID()
	}

	if state.TrackingID != "" {
		return state.TrackingID
	}

	trackingID := generateSessionID()

	state.TrackingID = trackingID
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"tracking_id", "updated_at"}),
	}).Create(state).Error
	if err != nil {
		// Even if save fails, return the generated ID for this session
		return trackingID
	}

	return trackingID
}

// generateSessionID creates a new UUID for session-based tracking.
func generateSessionID() string {
	return uuid.New().String()
}
