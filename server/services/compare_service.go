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

// CompareInput один из двух сравниваемых файлов
type CompareInput struct {
	FileName    string
	FilePath    string
	Sheet       string
	StoreColumn string
	LinkColumn  string
}

// CompareOptions параметры сравнения двух таблиц
type CompareOptions struct {
	KeyMode dataset.KeyMode
	// IncludeLinks добавить в книгу листы ссылок по магазинам
	IncludeLinks bool
	// Suggest искать похожие названия между OnlyInA и OnlyInB
	Suggest          bool
	SuggestThreshold float64
	SuggestLanguage  string
	URLPrefix        string
}

// CompareService сравнивает два файла выгрузок и фиксирует задачу
type CompareService struct {
	db         *database.DB
	resultsDir string
}

// NewCompareService создает сервис сравнения
func NewCompareService(db *database.DB, resultsDir string) *CompareService {
	return &CompareService{db: db, resultsDir: resultsDir}
}

// Run загружает оба файла, строит разбиение ключей и сохраняет книгу
func (s *CompareService) Run(a, b CompareInput, opts CompareOptions) (*database.Job, *dataset.ComparisonResult, error) {
	job := &database.Job{
		ID:          uuid.New().String(),
		Mode:        database.JobModeCompare,
		SourceFiles: fmt.Sprintf("%s; %s", a.FileName, b.FileName),
		KeyMode:     string(opts.KeyMode),
	}
	if err := s.db.CreateJob(job); err != nil {
		return nil, nil, apperrors.NewInternalError("не удалось зарегистрировать задачу", err)
	}

	result, err := s.process(a, b, opts, job)
	if err != nil {
		if failErr := s.db.FailJob(job.ID, err.Error()); failErr != nil {
			log.Printf("⚠ Не удалось пометить задачу %s как проваленную: %v", job.ID, failErr)
		}
		return nil, nil, err
	}

	if err := s.db.CompleteJob(job); err != nil {
		return nil, nil, apperrors.NewInternalError("не удалось сохранить результат задачи", err)
	}
	return job, result, nil
}

func (s *CompareService) process(a, b CompareInput, opts CompareOptions, job *database.Job) (*dataset.ComparisonResult, error) {
	tableA, err := s.loadInput(a, opts, "A")
	if err != nil {
		return nil, err
	}
	tableB, err := s.loadInput(b, opts, "B")
	if err != nil {
		return nil, err
	}

	comparator := dataset.NewComparator(opts.KeyMode)
	result := comparator.Compare(tableA, tableB)

	if opts.Suggest {
		suggester := dataset.NewSuggester(opts.SuggestThreshold, opts.SuggestLanguage)
		result.Suggestions = suggester.Suggest(result.OnlyInA, result.OnlyInB)
	}

	export := exporter.CompareExport{Result: result}
	if opts.IncludeLinks {
		export.LinksA = dataset.GroupLinks(tableA)
		export.LinksB = dataset.GroupLinks(tableB)
	}

	f, err := exporter.WriteCompareWorkbook(export)
	if err != nil {
		return nil, apperrors.NewInternalError("не удалось собрать книгу результата", err)
	}
	defer f.Close()

	resultPath := filepath.Join(s.resultsDir, fmt.Sprintf("%s.xlsx", job.ID))
	if err := exporter.SaveWorkbook(f, resultPath); err != nil {
		return nil, apperrors.NewInternalError("не удалось сохранить файл результата", err)
	}

	job.SourceRows = len(tableA) + len(tableB)
	job.OnlyInA = len(result.OnlyInA)
	job.OnlyInB = len(result.OnlyInB)
	job.InBoth = len(result.InBoth)
	job.ResultPath = resultPath
	job.ResultFormat = string(exporter.FormatExcel)

	log.Printf("✓ Сравнение %s: совпадений %d, только в A %d, только в B %d",
		job.ID, job.InBoth, job.OnlyInA, job.OnlyInB)
	return &result, nil
}

// loadInput загружает и нормализует одну из сравниваемых таблиц.
// Колонка ссылки не обязательна: сравнение работает и по одним названиям.
func (s *CompareService) loadInput(in CompareInput, opts CompareOptions, label string) (dataset.Table, error) {
	file, err := os.Open(in.FilePath)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Sprintf("не удалось открыть файл %s", label), err)
	}
	defer file.Close()

	loaded, err := importer.Load(in.FileName, file, importer.Options{
		Sheet:       in.Sheet,
		StoreColumn: in.StoreColumn,
		LinkColumn:  in.LinkColumn,
		URLPrefix:   opts.URLPrefix,
	})
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("не удалось прочитать файл %s: %v", label, err), err)
	}

	normalizer := dataset.NewNormalizer()
	normalized, _ := normalizer.NormalizeTable(loaded.Table)
	if len(normalized) == 0 {
		return nil, apperrors.NewValidationError(fmt.Sprintf("файл %s не содержит записей с непустым магазином", label), dataset.ErrEmptyStore)
	}
	return normalized, nil
}
