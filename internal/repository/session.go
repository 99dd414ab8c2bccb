package repository

import (
	"time"

	"office-management-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionRepository handles database operations for sessions
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session
func (r *SessionRepository) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

// GetByID retrieves a session by ID with its user preloaded
func (r *SessionRepository) GetByID(id uuid.UUID) (*models.Session, error) {
	var session models.Session
	err := r.db.Preload("User").First(&session, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Delete deletes a session; deleting a missing session is not an error
func (r *SessionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Session{}, "id = ?", id).Error
}

// DeleteExpired removes all sessions past their expiry
func (r *SessionRepository) DeleteExpired(now time.Time) error {
	return r.db.Delete(&models.Session{}, "expires_at < ?", now).Error
}
