package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"job-board-backend/internal/domain"
	"job-board-backend/pkg/apperror"

	"github.com/xuri/excelize/v2"
)

var exportColumns = []string{"TITLE", "COMPANY", "LOCATION", "TYPE", "TAGS", "LINK", "DESCRIPTION", "POSTED AT"}

type exportUsecase struct {
	jobRepo domain.JobRepository
	now     func() time.Time
}

func NewExportUsecase(jobRepo domain.JobRepository) domain.ExportUsecase {
	return &exportUsecase{jobRepo: jobRepo, now: time.Now}
}

func (u *exportUsecase) ExportJobs(ctx context.Context, req domain.ExportRequest) (*domain.ExportFile, error) {
	format := strings.ToLower(req.Format)
	if format == "" {
		format = domain.ExportFormatXLSX
	}
	if format != domain.ExportFormatXLSX && format != domain.ExportFormatCSV {
		return nil, apperror.BadRequest(fmt.Sprintf("unsupported export format: %s", req.Format))
	}

	jobs, err := u.jobRepo.Fetch(ctx, req.Filter)
	if err != nil {
		return nil, apperror.Internal("Error exporting jobs", err)
	}

	rows := make([][]string, 0, len(jobs))
	for _, job := range jobs {
		rows = append(rows, jobRow(job))
	}

	stamp := u.now().Format("20060102_150405")
	if format == domain.ExportFormatCSV {
		data, err := exportCSV(rows)
		if err != nil {
			return nil, apperror.Internal("Error exporting jobs", err)
		}
		return &domain.ExportFile{
			Filename:    fmt.Sprintf("jobs_%s.csv", stamp),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	}

	data, err := exportExcel(rows)
	if err != nil {
		return nil, apperror.Internal("Error exporting jobs", err)
	}
	return &domain.ExportFile{
		Filename:    fmt.Sprintf("jobs_%s.xlsx", stamp),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        data,
	}, nil
}

func jobRow(job domain.Job) []string {
	return []string{
		job.Title,
		job.Company,
		job.Location,
		string(job.Type),
		strings.Join(job.Tags, ", "),
		job.Link,
		job.Description,
		job.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// exportExcel writes one header row plus rows to a single "Jobs" sheet.
func exportExcel(rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Jobs"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, name := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, name)
	}

	// Style headers - Dark Blue background with White text
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range exportColumns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 24)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func exportCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportColumns); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}
	return buf.Bytes(), nil
}
