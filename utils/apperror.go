package utils

import "net/http"

// AppError dipetakan satu-satu ke error envelope API.
type AppError struct {
	StatusCode int    `json:"status_code"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NotFound(message string) *AppError {
	return &AppError{StatusCode: http.StatusNotFound, Name: "NotFoundException", Message: message}
}

func BadRequest(message string) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Name: "BadRequestException", Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{StatusCode: http.StatusForbidden, Name: "ForbiddenException", Message: message}
}

func Unauthorized(message string) *AppError {
	return &AppError{StatusCode: http.StatusUnauthorized, Name: "UnauthorizedException", Message: message}
}

func UnprocessableEntity(message string) *AppError {
	return &AppError{StatusCode: http.StatusUnprocessableEntity, Name: "UnprocessableEntityException", Message: message}
}
