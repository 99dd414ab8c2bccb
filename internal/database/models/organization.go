package models

// Organization represents a tenant grouping of users and their records
type Organization struct {
	BaseModel
	Name         string `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Slug         string `json:"slug" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	ContactEmail string `json:"contact_email" gorm:"size:255" validate:"omitempty,email,max=255"`
	ContactPhone string `json:"contact_phone" gorm:"size:30"`
	Address      string `json:"address" gorm:"size:300"`

	Users []User `json:"users,omitempty" gorm:"foreignKey:OrganizationID"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
