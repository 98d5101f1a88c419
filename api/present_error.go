package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/exprc/exprc/models"
	"github.com/exprc/exprc/utils"
)

func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, models.BadParameterError) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else if errors.Is(err, models.NotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else {
		logger := utils.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, fmt.Sprintf("Unexpected Error: %s", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
	return true
}
