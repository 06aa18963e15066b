package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storelinks/dataset"
	"storelinks/internal/config"
	apperrors "storelinks/server/errors"
	"storelinks/server/services"
)

// CompareHandler обработчик сравнения двух файлов
type CompareHandler struct {
	service *services.CompareService
	cfg     *config.Config
}

// NewCompareHandler создает обработчик сравнения
func NewCompareHandler(service *services.CompareService, cfg *config.Config) *CompareHandler {
	return &CompareHandler{service: service, cfg: cfg}
}

// CompareResponse ответ на запрос сравнения
type CompareResponse struct {
	JobID  string                   `json:"job_id"`
	Result dataset.ComparisonResult `json:"result"`
	Counts map[string]int           `json:"counts"`
}

// HandleCompare обрабатывает POST /api/compare
// @Summary Сравнить списки магазинов двух файлов
// @Description Строит разбиение ключей на OnlyInA / OnlyInB / Both и готовит книгу результата
// @Tags compare
// @Accept multipart/form-data
// @Produce json
// @Param file_a formData file true "Файл A (.xlsx, .csv или .html)"
// @Param file_b formData file true "Файл B (.xlsx, .csv или .html)"
// @Param sheet_a formData string false "Лист файла A"
// @Param sheet_b formData string false "Лист файла B"
// @Param store_column_a formData string false "Колонка магазина в A"
// @Param store_column_b formData string false "Колонка магазина в B"
// @Param link_column_a formData string false "Колонка ссылки в A"
// @Param link_column_b formData string false "Колонка ссылки в B"
// @Param key_mode formData string false "Ключ сравнения: store или store_link"
// @Param include_links formData bool false "Добавить листы ссылок по магазинам"
// @Param suggest formData bool false "Искать похожие названия между OnlyInA и OnlyInB"
// @Param suggest_threshold formData number false "Порог похожести (0..1]"
// @Success 200 {object} JSONResponse{data=CompareResponse}
// @Failure 400 {object} JSONResponse
// @Failure 500 {object} JSONResponse
// @Router /compare [post]
func (h *CompareHandler) HandleCompare(c *gin.Context) {
	headerA, err := c.FormFile("file_a")
	if err != nil {
		HandleError(c, apperrors.NewValidationError("поле file_a обязательно", err))
		return
	}
	headerB, err := c.FormFile("file_b")
	if err != nil {
		HandleError(c, apperrors.NewValidationError("поле file_b обязательно", err))
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

	threshold := h.cfg.SuggestThreshold
	if raw := c.PostForm("suggest_threshold"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 || parsed > 1 {
			HandleError(c, apperrors.NewValidationError(
				fmt.Sprintf("некорректный порог похожести %q", raw), err))
			return
		}
		threshold = parsed
	}

	uploadA, err := h.saveInput(headerA)
	if err != nil {
		HandleError(c, err)
		return
	}
	// Копии нужны только на время обработки, результат лежит отдельно
	defer uploadA.Cleanup()
	uploadB, err := h.saveInput(headerB)
	if err != nil {
		HandleError(c, err)
		return
	}
	defer uploadB.Cleanup()

	job, result, err := h.service.Run(
		services.CompareInput{
			FileName:    uploadA.Name,
			FilePath:    uploadA.Path,
			Sheet:       c.PostForm("sheet_a"),
			StoreColumn: c.PostForm("store_column_a"),
			LinkColumn:  c.PostForm("link_column_a"),
		},
		services.CompareInput{
			FileName:    uploadB.Name,
			FilePath:    uploadB.Path,
			Sheet:       c.PostForm("sheet_b"),
			StoreColumn: c.PostForm("store_column_b"),
			LinkColumn:  c.PostForm("link_column_b"),
		},
		services.CompareOptions{
			KeyMode:          keyMode,
			IncludeLinks:     c.PostForm("include_links") == "true",
			Suggest:          c.PostForm("suggest") == "true",
			SuggestThreshold: threshold,
			SuggestLanguage:  h.cfg.SuggestLanguage,
			URLPrefix:        h.cfg.LinkURLPrefix,
		},
	)
	if err != nil {
		HandleError(c, err)
		return
	}

	SendJSON(c, http.StatusOK, CompareResponse{
		JobID:  job.ID,
		Result: *result,
		Counts: map[string]int{
			"in_both":   len(result.InBoth),
			"only_in_a": len(result.OnlyInA),
			"only_in_b": len(result.OnlyInB),
		},
	})
}

func (h *CompareHandler) saveInput(header *multipart.FileHeader) (*UploadedFile, error) {
	return SaveUpload(header, h.cfg.UploadsDir, h.cfg.MaxUploadSizeBytes())
}
