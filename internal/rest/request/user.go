package request

type Register struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type Login struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdatePreferences struct {
	PreferredCategories []string `json:"preferredCategories"`
	Country             string   `json:"country" binding:"omitempty,max=8"`
}
