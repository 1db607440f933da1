package domain

import (
	"context"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account.
// A user can save bookmarks, like articles and write comments.
type User struct {
	ID                  int64     // Unique identifier
	Name                string    // Display name
	Email               string    // Login email (unique)
	Password            string    // Bcrypt hashed password
	Role                string    // RoleUser or RoleAdmin
	PreferredCategories []string  // News categories shown on the dashboard
	Country             string    // Preferred news country code
	CreatedAt           time.Time // Account creation timestamp
	UpdatedAt           time.Time // Last profile update timestamp
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// GetByEmail retrieves a user by their email.
	// Used during login to verify credentials.
	GetByEmail(ctx context.Context, email string) (User, error)

	// Insert creates a new user account.
	// Backfills the ID in the provided User object upon success.
	// Returns ErrConflict if the email is already taken.
	Insert(ctx context.Context, u *User) error

	// Update modifies an existing user's information.
	Update(ctx context.Context, u *User) error

	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)

	// CountByRole returns the number of users with the given role.
	CountByRole(ctx context.Context, role string) (int64, error)
}

// UserUsecase defines the business logic contract for user operations.
// Handles registration, login and profile management.
type UserUsecase interface {
	// Register creates a new user account and returns a signed token.
	// Returns ErrConflict if the email already exists.
	Register(ctx context.Context, name, email, password string) (string, User, error)

	// Login verifies user credentials and returns a signed token.
	// Returns ErrNotFound if the user doesn't exist.
	// Returns ErrBadParamInput if the password is incorrect.
	Login(ctx context.Context, email, password string) (string, User, error)

	// Me returns the profile of the given user.
	Me(ctx context.Context, id int64) (User, error)

	// UpdatePreferences replaces the user's preferred categories and country.
	UpdatePreferences(ctx context.Context, id int64, categories []string, country string) (User, error)
}
