package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"storelinks/database"
	"storelinks/dataset"
	"storelinks/exporter"
	"storelinks/importer"
	apperrors "storelinks/server/errors"
)

// DedupOptions параметры одного прохода очистки
type DedupOptions struct {
	Sheet       string
	StoreColumn string
	LinkColumn  string
	KeyMode     dataset.KeyMode
	// OnePerStore добавить лист с одной ссылкой на магазин
	OnePerStore bool
	Format      exporter.Format
	// URLPrefix префикс для достройки ссылок из GUID
	URLPrefix string
}

// DedupService выполняет цикл загрузка -> нормализация -> дедупликация
// -> экспорт для одного файла и фиксирует задачу в истории
type DedupService struct {
	db         *database.DB
	resultsDir string
}

// NewDedupService создает сервис очистки
func NewDedupService(db *database.DB, resultsDir string) *DedupService {
	return &DedupService{db: db, resultsDir: resultsDir}
}

// Run обрабатывает сохраненный файл выгрузки.
// Весь цикл синхронный: по завершении задача либо completed с готовым
// файлом результата, либо failed.
func (s *DedupService) Run(fileName, filePath string, opts DedupOptions) (*database.Job, *exporter.DedupExport, error) {
	job := &database.Job{
		ID:          uuid.New().String(),
		Mode:        database.JobModeDedup,
		SourceFiles: fileName,
		Sheet:       opts.Sheet,
		KeyMode:     string(opts.KeyMode),
	}
	if err := s.db.CreateJob(job); err != nil {
		return nil, nil, apperrors.NewInternalError("не удалось зарегистрировать задачу", err)
	}

	export, err := s.process(filePath, fileName, opts, job)
	if err != nil {
		if failErr := s.db.FailJob(job.ID, err.Error()); failErr != nil {
			log.Printf("⚠ Не удалось пометить задачу %s как проваленную: %v", job.ID, failErr)
		}
		return nil, nil, err
	}

	if err := s.db.CompleteJob(job); err != nil {
		return nil, nil, apperrors.NewInternalError("не удалось сохранить результат задачи", err)
	}
	return job, export, nil
}

// process выполняет преобразование и экспорт, заполняя счетчики задачи
func (s *DedupService) process(filePath, fileName string, opts DedupOptions, job *database.Job) (*exporter.DedupExport, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, apperrors.NewInternalError("не удалось открыть загруженный файл", err)
	}
	defer file.Close()

	loaded, err := importer.Load(fileName, file, importer.Options{
		Sheet:        opts.Sheet,
		StoreColumn:  opts.StoreColumn,
		LinkColumn:   opts.LinkColumn,
		LinkRequired: true,
		URLPrefix:    opts.URLPrefix,
	})
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("не удалось прочитать файл: %v", err), err)
	}

	normalizer := dataset.NewNormalizer()
	normalized, skipped := normalizer.NormalizeTable(loaded.Table)
	if len(normalized) == 0 {
		return nil, apperrors.NewValidationError("после очистки не осталось ни одной записи с непустым магазином", dataset.ErrEmptyStore)
	}

	dedup := dataset.NewDeduplicator(opts.KeyMode)
	pairs, stats := dedup.Deduplicate(normalized)
	groups := dataset.GroupLinks(normalized)

	summary := dataset.BuildSummary(loaded.SourceRows, skipped, pairs, groups)
	summary.StoreColumn = loaded.StoreColumn
	summary.LinkColumn = loaded.LinkColumn
	summary.Sheet = loaded.Sheet

	export := &exporter.DedupExport{
		Pairs:   pairs,
		Groups:  groups,
		Summary: summary,
	}
	if opts.OnePerStore {
		export.OnePerStore = dataset.OnePerStore(pairs)
	}

	resultPath := filepath.Join(s.resultsDir, fmt.Sprintf("%s.%s", job.ID, opts.Format))
	if err := exporter.SavePairs(resultPath, opts.Format, *export); err != nil {
		return nil, apperrors.NewInternalError("не удалось сохранить файл результата", err)
	}

	job.Sheet = loaded.Sheet
	job.StoreColumn = loaded.StoreColumn
	job.LinkColumn = loaded.LinkColumn
	job.SourceRows = loaded.SourceRows
	job.UniquePairs = stats.UniqueRecords
	job.Stores = summary.Stores
	job.DuplicatesDropped = stats.Dropped
	job.ResultPath = resultPath
	job.ResultFormat = string(opts.Format)

	log.Printf("✓ Очистка %s: строк %d, уникальных пар %d, магазинов %d, дубликатов %d",
		job.ID, loaded.SourceRows, stats.UniqueRecords, summary.Stores, stats.Dropped)
	return export, nil
}
