package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"storelinks/dataset"
	"storelinks/exporter"
	"storelinks/internal/config"
	apperrors "storelinks/server/errors"
	"storelinks/server/services"
)

// DedupHandler обработчик очистки одного файла
type DedupHandler struct {
	service *services.DedupService
	cfg     *config.Config
}

// NewDedupHandler создает обработчик очистки
func NewDedupHandler(service *services.DedupService, cfg *config.Config) *DedupHandler {
	return &DedupHandler{service: service, cfg: cfg}
}

// DedupResponse ответ на запрос очистки
type DedupResponse struct {
	JobID   string               `json:"job_id"`
	Summary dataset.Summary      `json:"summary"`
	Pairs   dataset.Table        `json:"pairs"`
	Stores  []dataset.StoreLinks `json:"stores"`
}

// HandleDedup обрабатывает POST /api/dedup
// @Summary Очистить список (магазин, ссылка)
// @Description Дедуплицирует пары (магазин, ссылка) из загруженного файла и готовит книгу результата
// @Tags dedup
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Файл .xlsx, .csv или .html"
// @Param sheet formData string false "Имя листа Excel (по умолчанию первый)"
// @Param store_column formData string false "Колонка магазина (по умолчанию автоопределение)"
// @Param link_column formData string false "Колонка ссылки (по умолчанию автоопределение)"
// @Param key_mode formData string false "Ключ дедупликации: store или store_link"
// @Param one_per_store formData bool false "Добавить лист с одной ссылкой на магазин"
// @Param format formData string false "Формат результата: xlsx, csv или json"
// @Success 200 {object} JSONResponse{data=DedupResponse}
// @Failure 400 {object} JSONResponse
// @Failure 500 {object} JSONResponse
// @Router /dedup [post]
func (h *DedupHandler) HandleDedup(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		HandleError(c, apperrors.NewValidationError("поле file обязательно", err))
		return
	}

	// Без явного поля действует режим из конфигурации
	rawKeyMode := c.PostForm("key_mode")
	if rawKeyMode == "" {
		rawKeyMode = h.cfg.KeyMode
	}
	keyMode, ok := dataset.ParseKeyMode(rawKeyMode)
	if !ok {
		HandleError(c, apperrors.NewValidationError(
			fmt.Sprintf("неизвестный режим ключа %q", rawKeyMode), nil))
		return
	}
	format, ok := exporter.ParseFormat(c.PostForm("format"))
	if !ok {
		HandleError(c, apperrors.NewValidationError(
			fmt.Sprintf("неизвестный формат результата %q", c.PostForm("format")), nil))
		return
	}

	upload, err := SaveUpload(header, h.cfg.UploadsDir, h.cfg.MaxUploadSizeBytes())
	if err != nil {
		HandleError(c, err)
		return
	}
	// Копия нужна только на время обработки, результат лежит отдельно
	defer upload.Cleanup()

	job, export, err := h.service.Run(upload.Name, upload.Path, services.DedupOptions{
		Sheet:       c.PostForm("sheet"),
		StoreColumn: c.PostForm("store_column"),
		LinkColumn:  c.PostForm("link_column"),
		KeyMode:     keyMode,
		OnePerStore: c.PostForm("one_per_store") == "true",
		Format:      format,
		URLPrefix:   h.cfg.LinkURLPrefix,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	SendJSON(c, http.StatusOK, DedupResponse{
		JobID:   job.ID,
		Summary: export.Summary,
		Pairs:   export.Pairs,
		Stores:  export.Groups,
	})
}
