package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/newsflow-app/newsflow-api/domain"
	"github.com/newsflow-app/newsflow-api/internal/rest/request"
)

// LikeHandler represent the http handler for article likes
type LikeHandler struct {
	Service domain.LikeUsecase
}

func NewLikeHandler(svc domain.LikeUsecase) *LikeHandler {
	return &LikeHandler{
		Service: svc,
	}
}

// Summary returns the public like count for an article
func (h *LikeHandler) Summary(c *gin.Context) {
	articleURL := c.Query("articleURL")

	summary, err := h.Service.Summary(c.Request.Context(), articleURL)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Toggle flips the caller's like on an article
func (h *LikeHandler) Toggle(c *gin.Context) {
	var req request.ToggleLike
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "articleURL and articleTitle are required"})
		return
	}

	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	status, err := h.Service.Toggle(c.Request.Context(), uid, req.ArticleURL, req.ArticleTitle)
	if err != nil {
		abortWithError(c, err)
		return
	}

	code := http.StatusOK
	if status.Liked {
		code = http.StatusCreated
	}
	c.JSON(code, status)
}
