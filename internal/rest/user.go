package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/newsflow-app/newsflow-api/domain"
	"github.com/newsflow-app/newsflow-api/internal/rest/request"
	"github.com/newsflow-app/newsflow-api/internal/rest/response"
)

// UserHandler represent the http handler for accounts
type UserHandler struct {
	Service domain.UserUsecase
}

func NewUserHandler(svc domain.UserUsecase) *UserHandler {
	return &UserHandler{
		Service: svc,
	}
}

// Register creates an account and returns a token
func (h *UserHandler) Register(c *gin.Context) {
	var req request.Register
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	token, u, err := h.Service.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewAuthFromDomain(token, &u))
}

// Login verifies credentials and returns a token
func (h *UserHandler) Login(c *gin.Context) {
	var req request.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	token, u, err := h.Service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password both read as invalid credentials.
		if getStatusCode(err) == http.StatusNotFound || getStatusCode(err) == http.StatusBadRequest {
			c.JSON(http.StatusUnauthorized, ResponseError{Message: "Invalid credentials"})
			return
		}
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewAuthFromDomain(token, &u))
}

// Me returns the caller's profile
func (h *UserHandler) Me(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	u, err := h.Service.Me(c.Request.Context(), uid)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewUserFromDomain(&u))
}

// UpdatePreferences replaces the caller's news preferences
func (h *UserHandler) UpdatePreferences(c *gin.Context) {
	var req request.UpdatePreferences
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	u, err := h.Service.UpdatePreferences(c.Request.Context(), uid, req.PreferredCategories, req.Country)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewUserFromDomain(&u))
}
