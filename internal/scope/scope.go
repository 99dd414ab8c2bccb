package scope

import (
	"office-management-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scope describes the subset of records an identity may see and act on.
// Exactly one of the three shapes is set: everything, one organization, or one user.
type Scope struct {
	All    bool
	OrgID  *uuid.UUID
	UserID *uuid.UUID
}

// Resolve derives the record visibility scope from a user's role and organization.
// Admins and proprietors without an organization see everything; with one they see
// their organization's records; staff see only their own.
func Resolve(user *models.User) Scope {
	if user.Role.IsPrivileged() {
		if user.OrganizationID != nil {
			orgID := *user.OrganizationID
			return Scope{OrgID: &orgID}
		}
		return Scope{All: true}
	}
	userID := user.ID
	return Scope{UserID: &userID}
}

// Apply narrows a list query to the scope. userColumn names the column holding the
// owning user's id ("user_id" for most entities, "assigned_to_id" for tasks).
func (s Scope) Apply(db *gorm.DB, userColumn string) *gorm.DB {
	switch {
	case s.All:
		return db
	case s.OrgID != nil:
		return db.Where("organization_id = ?", *s.OrgID)
	case s.UserID != nil:
		return db.Where(userColumn+" = ?", *s.UserID)
	}
	// Zero-value scope matches nothing rather than everything.
	return db.Where("1 = 0")
}

// CoversRecord reports whether a single record, identified by its owning user and
// optional organization, falls inside the scope. Used to re-validate mutations so
// that list-level filtering and record-level authorization cannot drift apart.
func (s Scope) CoversRecord(ownerID uuid.UUID, orgID *uuid.UUID) bool {
	switch {
	case s.All:
		return true
	case s.OrgID != nil:
		return orgID != nil && *orgID == *s.OrgID
	case s.UserID != nil:
		return ownerID == *s.UserID
	}
	return false
}
