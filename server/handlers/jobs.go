package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"storelinks/database"
	"storelinks/exporter"
	apperrors "storelinks/server/errors"
)

// JobsHandler обработчик истории обработок
type JobsHandler struct {
	db *database.DB
}

// NewJobsHandler создает обработчик истории
func NewJobsHandler(db *database.DB) *JobsHandler {
	return &JobsHandler{db: db}
}

// JobListResponse страница истории задач
type JobListResponse struct {
	Jobs  []*database.Job `json:"jobs"`
	Total int             `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// HandleListJobs обрабатывает GET /api/jobs
// @Summary История обработок
// @Tags jobs
// @Produce json
// @Param page query int false "Номер страницы, с единицы"
// @Param limit query int false "Размер страницы (по умолчанию 50)"
// @Success 200 {object} JSONResponse{data=JobListResponse}
// @Router /jobs [get]
func (h *JobsHandler) HandleListJobs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 || limit > 500 {
		limit = 50
	}

	jobs, err := h.db.ListJobs(limit, (page-1)*limit)
	if err != nil {
		HandleError(c, apperrors.NewInternalError("не удалось получить историю задач", err))
		return
	}
	total, err := h.db.CountJobs()
	if err != nil {
		HandleError(c, apperrors.NewInternalError("не удалось подсчитать задачи", err))
		return
	}

	SendJSON(c, http.StatusOK, JobListResponse{
		Jobs:  jobs,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// HandleGetJob обрабатывает GET /api/jobs/:id
// @Summary Одна задача по идентификатору
// @Tags jobs
// @Produce json
// @Param id path string true "Идентификатор задачи"
// @Success 200 {object} JSONResponse{data=database.Job}
// @Failure 404 {object} JSONResponse
// @Router /jobs/{id} [get]
func (h *JobsHandler) HandleGetJob(c *gin.Context) {
	job, err := h.findJob(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	SendJSON(c, http.StatusOK, job)
}

// HandleDownload обрабатывает GET /api/jobs/:id/download
// @Summary Скачать файл результата задачи
// @Tags jobs
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Идентификатор задачи"
// @Success 200 {file} binary
// @Failure 404 {object} JSONResponse
// @Router /jobs/{id}/download [get]
func (h *JobsHandler) HandleDownload(c *gin.Context) {
	job, err := h.findJob(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	if job.Status != database.JobStatusCompleted || job.ResultPath == "" {
		HandleError(c, apperrors.NewNotFoundError("у задачи нет файла результата", nil))
		return
	}
	if _, err := os.Stat(job.ResultPath); err != nil {
		HandleError(c, apperrors.NewNotFoundError("файл результата отсутствует на диске", err))
		return
	}

	format, _ := exporter.ParseFormat(job.ResultFormat)
	filename := fmt.Sprintf("%s_%s.%s", job.Mode, job.ID, job.ResultFormat)
	c.Header("Content-Type", format.ContentType())
	c.FileAttachment(job.ResultPath, filename)
}

func (h *JobsHandler) findJob(c *gin.Context) (*database.Job, error) {
	jobID := c.Param("id")
	if jobID == "" {
		return nil, apperrors.NewValidationError("идентификатор задачи обязателен", nil)
	}
	job, err := h.db.GetJob(jobID)
	if errors.Is(err, database.ErrJobNotFound) {
		return nil, apperrors.NewNotFoundError("задача не найдена", err)
	}
	if err != nil {
		return nil, apperrors.NewInternalError("не удалось получить задачу", err)
	}
	return job, nil
}
