package response

import "github.com/newsflow-app/newsflow-api/domain"

type User struct {
	ID                  int64    `json:"id"`
	Name                string   `json:"name"`
	Email               string   `json:"email"`
	Role                string   `json:"role"`
	PreferredCategories []string `json:"preferredCategories"`
	Country             string   `json:"country"`
	CreatedAt           string   `json:"createdAt"`
}

// NewUserFromDomain: Domain -> Response. The password hash never leaves the
// server.
func NewUserFromDomain(u *domain.User) User {
	return User{
		ID:                  u.ID,
		Name:                u.Name,
		Email:               u.Email,
		Role:                u.Role,
		PreferredCategories: u.PreferredCategories,
		Country:             u.Country,
		CreatedAt:           u.CreatedAt.Format(DateTimeFormat),
	}
}

type Auth struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// NewAuthFromDomain: Domain -> Response
func NewAuthFromDomain(token string, u *domain.User) Auth {
	return Auth{
		Token: token,
		User:  NewUserFromDomain(u),
	}
}
