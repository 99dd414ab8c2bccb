package auth

import (
	"errors"
	"fmt"
	"time"

	"office-management-backend/internal/database/models"
	apperrors "office-management-backend/internal/errors"
	"office-management-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 10

// HashPassword hashes a plaintext password with the shared bcrypt cost
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// minPasswordLength is enforced on registration and password change
const minPasswordLength = 8

// Service owns user credentials and server-side sessions. The session id is wrapped
// in a signed token for the cookie; the session row remains the source of truth so
// logout revokes access immediately.
type Service struct {
	users      repository.UserRepositoryInterface
	sessions   repository.SessionRepositoryInterface
	validator  *validator.Validate
	secret     []byte
	sessionTTL time.Duration
}

// NewService creates a new auth service
func NewService(users repository.UserRepositoryInterface, sessions repository.SessionRepositoryInterface, validator *validator.Validate, secret string, sessionTTL time.Duration) *Service {
	return &Service{
		users:      users,
		sessions:   sessions,
		validator:  validator,
		secret:     []byte(secret),
		sessionTTL: sessionTTL,
	}
}

// RegisterRequest represents the request to create a user account
type RegisterRequest struct {
	Email          string          `json:"email" validate:"required,email,max=255"`
	Password       string          `json:"password" validate:"required,min=8"`
	FirstName      string          `json:"first_name" validate:"required,max=100"`
	LastName       string          `json:"last_name" validate:"required,max=100"`
	Role           models.UserRole `json:"role"`
	Department     string          `json:"department" validate:"max=100"`
	Title          string          `json:"title" validate:"max=100"`
	OrganizationID *uuid.UUID      `json:"organization_id,omitempty"`
}

// Register creates a user with a bcrypt-hashed password
func (s *Service) Register(req *RegisterRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	role := req.Role
	if role == "" {
		role = models.UserRoleStaff
	}
	if !role.IsValid() {
		return nil, &apperrors.ValidationError{Field: "role", Message: "unknown role"}
	}

	existing, err := s.users.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:          req.Email,
		PasswordHash:   string(hash),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Role:           role,
		Department:     req.Department,
		Title:          req.Title,
		OrganizationID: req.OrganizationID,
		IsActive:       true,
	}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and establishes a session. It returns the user and the
// signed cookie token.
func (s *Service) Login(email, password string) (*models.User, string, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, "", apperrors.ErrAccountDisabled
	}

	session := &models.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	token, err := s.signSession(session)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return user, token, nil
}

// CurrentIdentity resolves a cookie token to the session's user. A missing, invalid
// or expired session yields (nil, nil): callers treat that as anonymous, not an error.
func (s *Service) CurrentIdentity(token string) (*models.User, error) {
	sessionID, err := s.parseSessionToken(token)
	if err != nil {
		return nil, nil
	}

	session, err := s.sessions.GetByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	if session.Expired(time.Now()) {
		// Lazy cleanup; the session is gone either way.
		_ = s.sessions.Delete(session.ID)
		return nil, nil
	}

	if session.User == nil || !session.User.IsActive {
		return nil, nil
	}

	return session.User, nil
}

// ChangePassword replaces a user's password after verifying the current one
func (s *Service) ChangePassword(userID uuid.UUID, currentPassword, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return &apperrors.ValidationError{Field: "new_password", Message: fmt.Sprintf("must be at least %d characters", minPasswordLength)}
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = string(hash)
	if err := s.users.Update(user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// UpdateProfile applies a partial self-service profile update
func (s *Service) UpdateProfile(userID uuid.UUID, req *UpdateProfileRequest) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Department != nil {
		user.Department = *req.Department
	}
	if req.Title != nil {
		user.Title = *req.Title
	}

	if err := s.users.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// Logout destroys the session referenced by the token; idempotent
func (s *Service) Logout(token string) error {
	sessionID, err := s.parseSessionToken(token)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(sessionID)
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func (s *Service) signSession(session *models.Session) (string, error) {
	claims := sessionClaims{
		SessionID: session.ID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.UserID.String(),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Service) parseSessionToken(token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, apperrors.ErrSessionNotFound
	}

	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, apperrors.ErrSessionNotFound
	}

	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return uuid.Nil, apperrors.ErrSessionNotFound
	}
	return sessionID, nil
}
