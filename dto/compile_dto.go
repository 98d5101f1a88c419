package dto

import (
	"github.com/exprc/exprc/usecases"
)

type CompileInputDto struct {
	Expression string `json:"expression" binding:"required"`
}

type CompileResultDto struct {
	Value int64    `json:"value"`
	Code  []string `json:"code"`
}

func AdaptCompileResultDto(result usecases.CompileResult) CompileResultDto {
	code := make([]string, len(result.Code))
	for i, instruction := range result.Code {
		code[i] = instruction.String()
	}
	return CompileResultDto{
		Value: result.Value,
		Code:  code,
	}
}
