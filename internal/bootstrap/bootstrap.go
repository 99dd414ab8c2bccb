package bootstrap

import (
	"fmt"
	"os"

	"office-management-backend/internal/auth"
	"office-management-backend/internal/database/models"
	"office-management-backend/internal/logger"
	"office-management-backend/internal/repository"

	"gopkg.in/yaml.v3"
)

// SeedAccount describes one account to create on first run
type SeedAccount struct {
	Email      string          `yaml:"email"`
	Password   string          `yaml:"password"`
	FirstName  string          `yaml:"first_name"`
	LastName   string          `yaml:"last_name"`
	Role       models.UserRole `yaml:"role"`
	Department string          `yaml:"department"`
	Title      string          `yaml:"title"`
}

// seedFile is the optional YAML override for the default accounts
type seedFile struct {
	Accounts []SeedAccount `yaml:"accounts"`
}

// defaultAccounts are the well-known first-run credentials. They exist so a fresh
// install is reachable at all; operators are expected to rotate them immediately.
var defaultAccounts = []SeedAccount{
	{
		Email:      "admin@office.local",
		Password:   "admin123",
		FirstName:  "System",
		LastName:   "Administrator",
		Role:       models.UserRoleAdmin,
		Department: "General",
		Title:      "Administrator",
	},
	{
		Email:      "staff@office.local",
		Password:   "staff123",
		FirstName:  "Staff",
		LastName:   "Member",
		Role:       models.UserRoleStaff,
		Department: "General",
		Title:      "Staff Member",
	},
}

// Seed creates the initial accounts when the user store is empty. It is idempotent:
// any existing user short-circuits the whole step.
func Seed(users repository.UserRepositoryInterface, seedFilePath string) error {
	log := logger.New()

	count, err := users.Count()
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	accounts := defaultAccounts
	if seedFilePath != "" {
		loaded, err := loadSeedFile(seedFilePath)
		if err != nil {
			return err
		}
		accounts = loaded
	}

	for _, account := range accounts {
		if !account.Role.IsValid() {
			return fmt.Errorf("seed account %s has unknown role %q", account.Email, account.Role)
		}
		hash, err := auth.HashPassword(account.Password)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		user := &models.User{
			Email:        account.Email,
			PasswordHash: hash,
			FirstName:    account.FirstName,
			LastName:     account.LastName,
			Role:         account.Role,
			Department:   account.Department,
			Title:        account.Title,
			IsActive:     true,
		}
		if err := users.Create(user); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", account.Email, err)
		}
		log.WithField("email", account.Email).WithField("role", account.Role).
			Info("Seeded initial account")
	}

	if seedFilePath == "" {
		log.Warn("Seeded default credentials for first-run setup; rotate them before exposing this instance")
	}
	return nil
}

func loadSeedFile(path string) ([]SeedAccount, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if len(file.Accounts) == 0 {
		return nil, fmt.Errorf("seed file %s contains no accounts", path)
	}
	return file.Accounts, nil
}
