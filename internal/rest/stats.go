package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/newsflow-app/newsflow-api/domain"
)

// StatsHandler represent the http handler for public aggregate stats
type StatsHandler struct {
	Service domain.StatsUsecase
}

func NewStatsHandler(svc domain.StatsUsecase) *StatsHandler {
	return &StatsHandler{
		Service: svc,
	}
}

// Summary returns the public count summary
func (h *StatsHandler) Summary(c *gin.Context) {
	stats, err := h.Service.Summary(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
