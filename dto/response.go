package dto

import "board/errs"

// ErrorResponseDTO는 공통 에러 응답 형식을 통일하기 위한 DTO이다.
// Fields 는 검증 실패일 때만 채워진다.
type ErrorResponseDTO struct {
	Error  string                `json:"error" example:"invalid request: title: max"`
	Fields []errs.FieldViolation `json:"fields,omitempty"`
}
