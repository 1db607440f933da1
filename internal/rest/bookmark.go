package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/newsflow-app/newsflow-api/domain"
	"github.com/newsflow-app/newsflow-api/internal/rest/request"
	"github.com/newsflow-app/newsflow-api/internal/rest/response"
)

// BookmarkHandler represent the http handler for bookmarks
type BookmarkHandler struct {
	Service domain.BookmarkUsecase
}

func NewBookmarkHandler(svc domain.BookmarkUsecase) *BookmarkHandler {
	return &BookmarkHandler{
		Service: svc,
	}
}

// Fetch lists the caller's bookmarks, newest first
func (h *BookmarkHandler) Fetch(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	bookmarks, err := h.Service.Fetch(c.Request.Context(), uid)
	if err != nil {
		abortWithError(c, err)
		return
	}

	res := make([]response.Bookmark, len(bookmarks))
	for i := range bookmarks {
		res[i] = response.NewBookmarkFromDomain(&bookmarks[i])
	}
	c.JSON(http.StatusOK, res)
}

// Store saves an article for the caller
func (h *BookmarkHandler) Store(c *gin.Context) {
	var req request.StoreBookmark
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	bookmark := req.ToDomain(uid)
	if err := h.Service.Store(c.Request.Context(), &bookmark); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.NewBookmarkFromDomain(&bookmark))
}

// DeleteByID removes one of the caller's bookmarks
func (h *BookmarkHandler) DeleteByID(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.Service.DeleteByID(c.Request.Context(), uid, int64(idP)); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bookmark removed successfully"})
}

// DeleteByURL removes the caller's bookmark for the given article URL
func (h *BookmarkHandler) DeleteByURL(c *gin.Context) {
	var req request.DeleteBookmarkByURL
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "Article URL is required"})
		return
	}

	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.Service.DeleteByURL(c.Request.Context(), uid, req.ArticleURL); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bookmark removed successfully"})
}
