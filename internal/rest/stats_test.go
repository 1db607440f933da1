package rest_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsflow-app/newsflow-api/domain"
	"github.com/newsflow-app/newsflow-api/domain/mocks"
	"github.com/newsflow-app/newsflow-api/internal/rest"
	"github.com/newsflow-app/newsflow-api/internal/usecase/stats"
)

func TestStatsSummary(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.Users[1] = domain.User{ID: 1, Role: domain.RoleAdmin}
	userRepo.Users[2] = domain.User{ID: 2, Role: domain.RoleUser}
	bookmarkRepo := mocks.NewMockBookmarkRepository()
	bookmarkRepo.Bookmarks[1] = domain.Bookmark{ID: 1, UserID: 2, ArticleURL: "https://a.example.com/1"}

	h := rest.NewStatsHandler(stats.NewService(userRepo, bookmarkRepo))
	r := gin.New()
	r.GET("/api/public/stats", h.Summary)

	rec := perform(t, r, http.MethodGet, "/api/public/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["totalUsers"])
	assert.Equal(t, float64(1), body["adminUsers"])
	assert.Equal(t, float64(1), body["regularUsers"])
	assert.Equal(t, float64(1), body["totalBookmarks"])
}
