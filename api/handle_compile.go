package api

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/exprc/exprc/dto"
	"github.com/exprc/exprc/models"
	"github.com/exprc/exprc/usecases"
)

type CompilerUsecase interface {
	Compile(ctx context.Context, source string) (usecases.CompileResult, error)
}

type CompileHandler struct {
	usecase CompilerUsecase
}

func NewCompileHandler(usecase CompilerUsecase) CompileHandler {
	return CompileHandler{usecase: usecase}
}

func (handler CompileHandler) Compile(c *gin.Context) {
	ctx := c.Request.Context()

	var input dto.CompileInputDto
	if err := c.ShouldBindJSON(&input); err != nil {
		presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
		return
	}

	result, err := handler.usecase.Compile(ctx, input.Expression)
	if presentError(ctx, c, err) {
		return
	}

	c.JSON(http.StatusOK, dto.AdaptCompileResultDto(result))
}
