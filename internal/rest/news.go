package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/newsflow-app/newsflow-api/domain"
)

// NewsHandler represent the http handler for the news feed proxy
type NewsHandler struct {
	Service domain.NewsUsecase
}

func NewNewsHandler(svc domain.NewsUsecase) *NewsHandler {
	return &NewsHandler{
		Service: svc,
	}
}

// Headlines serves the category/country feed. When a free-text q parameter is
// present the request is routed to search instead, mirroring the frontend's
// single news endpoint.
func (h *NewsHandler) Headlines(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		res, err := h.Service.Search(c.Request.Context(), domain.SearchQuery{
			Query:   q,
			Country: c.DefaultQuery("country", domain.DefaultNewsCountry),
			Lang:    c.DefaultQuery("lang", domain.DefaultNewsLang),
			Max:     intQuery(c, "max", domain.DefaultNewsMax),
		})
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
		return
	}

	res, err := h.Service.TopHeadlines(c.Request.Context(), domain.HeadlinesQuery{
		Category: c.DefaultQuery("category", domain.DefaultNewsCategory),
		Country:  c.DefaultQuery("country", domain.DefaultNewsCountry),
		Lang:     c.DefaultQuery("lang", domain.DefaultNewsLang),
		Max:      intQuery(c, "max", domain.DefaultNewsMax),
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Search serves the free-text search endpoint
func (h *NewsHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "Search query is required"})
		return
	}

	res, err := h.Service.Search(c.Request.Context(), domain.SearchQuery{
		Query:   q,
		Country: c.DefaultQuery("country", domain.DefaultNewsCountry),
		Lang:    c.DefaultQuery("lang", domain.DefaultNewsLang),
		Max:     intQuery(c, "max", domain.DefaultNewsMax),
		From:    c.Query("from"),
		To:      c.Query("to"),
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func intQuery(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}
