package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/studyforge/scoring-service/internal/models"
	"github.com/studyforge/scoring-service/internal/repositories"
	"github.com/studyforge/scoring-service/internal/utils"
	"github.com/xuri/excelize/v2"
)

// ExportService renders attempt history for download.
type ExportService interface {
	ExportAttemptsToExcel(ctx context.Context, filters repositories.AttemptFilters) ([]byte, error)
	ExportAttemptsToCSV(ctx context.Context, filters repositories.AttemptFilters) ([]byte, error)
}

type exportService struct {
	repo   repositories.AttemptRepository
	logger utils.Logger
}

func NewExportService(repo repositories.AttemptRepository, logger utils.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

var attemptExportHeaders = []string{
	"User", "Timestamp", "Score", "Accuracy (%)", "Time Taken (s)",
	"Correct MCQs", "Total MCQs", "Correct Short", "Total Short",
}

func (s *exportService) ExportAttemptsToExcel(ctx context.Context, filters repositories.AttemptFilters) ([]byte, error) {
	records, _, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to load attempt history: %w", err)
	}

	f := excelize.NewFile()
	sheetName := "Attempts"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)

	for i, header := range attemptExportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for rowIndex, record := range records {
		for colIndex, value := range attemptExportRow(record) {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	return buf.Bytes(), nil
}

func (s *exportService) ExportAttemptsToCSV(ctx context.Context, filters repositories.AttemptFilters) ([]byte, error) {
	records, _, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to load attempt history: %w", err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(attemptExportHeaders); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, record := range records {
		row := make([]string, 0, len(attemptExportHeaders))
		for _, value := range attemptExportRow(record) {
			row = append(row, fmt.Sprintf("%v", value))
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

func attemptExportRow(record *models.AttemptRecord) []interface{} {
	return []interface{}{
		record.UserID,
		record.Timestamp,
		record.Score,
		strconv.FormatFloat(record.Accuracy, 'f', 1, 64),
		record.TimeTaken,
		record.CorrectMCQs,
		record.TotalMCQs,
		record.CorrectShort,
		record.TotalShort,
	}
}
