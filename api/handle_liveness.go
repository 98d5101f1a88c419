package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type LivenessUsecase interface {
	Liveness(ctx context.Context) error
}

type LivenessHandler struct {
	usecase LivenessUsecase
}

func NewLivenessHandler(usecase LivenessUsecase) LivenessHandler {
	return LivenessHandler{usecase: usecase}
}

func (handler LivenessHandler) Liveness(c *gin.Context) {
	if err := handler.usecase.Liveness(c.Request.Context()); err != nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	c.String(http.StatusOK, "OK")
}
