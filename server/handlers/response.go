package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "storelinks/server/errors"
	"storelinks/server/middleware"
)

// JSONResponse стандартная структура JSON ответа
type JSONResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Timestamp string      `json:"timestamp"`
	RequestID string      `json:"request_id,omitempty"`
}

// SendJSON записывает успешный JSON ответ
func SendJSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, JSONResponse{
		Success:   statusCode >= 200 && statusCode < 300,
		Data:      data,
		Timestamp: time.Now().Format(time.RFC3339),
		RequestID: middleware.GetRequestID(c.Request.Context()),
	})
}

// SendJSONError записывает JSON ошибку и логирует её
func SendJSONError(c *gin.Context, statusCode int, message string) {
	reqID := middleware.GetRequestID(c.Request.Context())
	slog.Error("HTTP error",
		"error", message,
		"status_code", statusCode,
		"request_id", reqID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	c.JSON(statusCode, JSONResponse{
		Success:   false,
		Error:     message,
		Timestamp: time.Now().Format(time.RFC3339),
		RequestID: reqID,
	})
}

// HandleError преобразует ошибку в JSON ответ.
// AppError несет свой статус и сообщение, остальные ошибки скрываются
// за 500 с общим текстом.
func HandleError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}
	SendJSONError(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
}
