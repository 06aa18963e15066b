package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"storelinks/importer"
	"storelinks/internal/config"
	apperrors "storelinks/server/errors"
)

// InspectHandler обработчик просмотра структуры файла
type InspectHandler struct {
	cfg *config.Config
}

// NewInspectHandler создает обработчик просмотра
func NewInspectHandler(cfg *config.Config) *InspectHandler {
	return &InspectHandler{cfg: cfg}
}

// InspectResponse листы файла с заголовками
type InspectResponse struct {
	FileName string               `json:"file_name"`
	Sheets   []importer.SheetInfo `json:"sheets"`
}

// HandleInspect обрабатывает POST /api/files/inspect
// @Summary Показать листы и колонки файла
// @Description Возвращает имена листов и заголовки колонок, чтобы клиент мог выбрать их для очистки или сравнения
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Файл .xlsx, .csv или .html"
// @Success 200 {object} JSONResponse{data=InspectResponse}
// @Failure 400 {object} JSONResponse
// @Router /files/inspect [post]
func (h *InspectHandler) HandleInspect(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		HandleError(c, apperrors.NewValidationError("поле file обязательно", err))
		return
	}

	upload, err := SaveUpload(header, h.cfg.UploadsDir, h.cfg.MaxUploadSizeBytes())
	if err != nil {
		HandleError(c, err)
		return
	}
	// Просмотр не порождает задачу, копия не нужна
	defer upload.Cleanup()

	file, err := os.Open(upload.Path)
	if err != nil {
		HandleError(c, apperrors.NewInternalError("не удалось открыть загруженный файл", err))
		return
	}
	defer file.Close()

	sheets, err := importer.Inspect(upload.Name, file)
	if err != nil {
		HandleError(c, apperrors.NewValidationError(err.Error(), err))
		return
	}

	SendJSON(c, http.StatusOK, InspectResponse{
		FileName: upload.Name,
		Sheets:   sheets,
	})
}
