package rest

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/newsflow-app/newsflow-api/domain"
	"github.com/newsflow-app/newsflow-api/internal/rest/request"
	"github.com/newsflow-app/newsflow-api/internal/rest/response"
)

// CommentHandler represent the http handler for comments
type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

// FetchByArticle returns one page of an article's comments, newest first.
// The article URL arrives percent-encoded as a single path segment.
func (h *CommentHandler) FetchByArticle(c *gin.Context) {
	articleURL, err := url.PathUnescape(c.Param("articleURL"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		limit = 10
	}

	res, err := h.Service.FetchByArticle(c.Request.Context(), articleURL, page, limit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewCommentPageFromDomain(&res))
}

// Create posts a new top-level comment
func (h *CommentHandler) Create(c *gin.Context) {
	var req request.CreateComment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	userName := c.GetString("user_name")

	comment := req.ToDomain(uid, userName)
	if err := h.Service.Create(c.Request.Context(), &comment); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewCommentFromDomain(&comment))
}

// Update edits a comment's content; author only
func (h *CommentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	var req request.UpdateComment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	comment, err := h.Service.Update(c.Request.Context(), uid, id, req.Content)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewCommentFromDomain(&comment))
}

// Delete removes a comment; author or admin
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	role := c.GetString("user_role")

	if err := h.Service.Delete(c.Request.Context(), uid, role, id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// ToggleLike flips the caller's like on a comment
func (h *CommentHandler) ToggleLike(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	status, err := h.Service.ToggleLike(c.Request.Context(), uid, id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"likeCount": status.LikeCount,
		"isLiked":   status.IsLiked,
	})
}

// Reply appends a reply to a comment
func (h *CommentHandler) Reply(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	var req request.ReplyComment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	userName := c.GetString("user_name")

	reply := domain.Reply{
		CommentID: id,
		UserID:    uid,
		UserName:  userName,
		Content:   req.Content,
	}
	created, err := h.Service.Reply(c.Request.Context(), &reply)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Reply added successfully",
		"reply":   response.NewReplyFromDomain(&created),
	})
}
