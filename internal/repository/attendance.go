package repository

import (
	"time"

	"office-management-backend/internal/database/models"
	"office-management-backend/internal/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Create creates a new attendance record
func (r *AttendanceRepository) Create(record *models.Attendance) error {
	return r.db.Create(record).Error
}

// GetByID retrieves an attendance record by ID
func (r *AttendanceRepository) GetByID(id uuid.UUID) (*models.Attendance, error) {
	var record models.Attendance
	err := r.db.Preload("User").First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListScoped retrieves attendance records visible within the scope, most recent date first
func (r *AttendanceRepository) ListScoped(s scope.Scope) ([]models.Attendance, error) {
	var records []models.Attendance
	err := s.Apply(r.db, "user_id").
		Preload("User").
		Order("date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// GetByUserAndDate retrieves a user's attendance record for a specific date
func (r *AttendanceRepository) GetByUserAndDate(userID uuid.UUID, date time.Time) (*models.Attendance, error) {
	var record models.Attendance
	err := r.db.Where("user_id = ? AND date = ?", userID, date.Format("2006-01-02")).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByUserAndDateRange retrieves a user's attendance records within [start, end]
func (r *AttendanceRepository) GetByUserAndDateRange(userID uuid.UUID, start, end time.Time) ([]models.Attendance, error) {
	var records []models.Attendance
	err := r.db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Update updates an attendance record
func (r *AttendanceRepository) Update(record *models.Attendance) error {
	return r.db.Save(record).Error
}
