package export

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/guardiao/gestao/internal/models"
)

const (
	itemsSheet   = "Avaliações"
	summarySheet = "Resumo"
)

// BuildReportWorkbook renders a filtered evaluation report as a two-sheet
// workbook: the matching rows and a category summary.
func BuildReportWorkbook(res *models.ReportResult) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", itemsSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headers := []string{"Data", "Colaborador", "CPF", "Posto", "Tipo", "Pontos", "Descrição"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s1", colName(i+1))
		if err := f.SetCellStr(itemsSheet, cell, h); err != nil {
			return nil, fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	for i, it := range res.Items {
		row := i + 2
		_ = f.SetCellStr(itemsSheet, fmt.Sprintf("A%d", row), it.CreatedAt.Format("02/01/2006 15:04"))
		_ = f.SetCellStr(itemsSheet, fmt.Sprintf("B%d", row), it.Employee)
		_ = f.SetCellStr(itemsSheet, fmt.Sprintf("C%d", row), it.CPF)
		if it.Post != nil {
			_ = f.SetCellStr(itemsSheet, fmt.Sprintf("D%d", row), *it.Post)
		}
		_ = f.SetCellStr(itemsSheet, fmt.Sprintf("E%d", row), it.Category)
		_ = f.SetCellValue(itemsSheet, fmt.Sprintf("F%d", row), it.Points)
		if it.Description != nil {
			_ = f.SetCellStr(itemsSheet, fmt.Sprintf("G%d", row), *it.Description)
		}
	}
	if err := applyDefaultFormatting(f, itemsSheet); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, fmt.Errorf("new sheet: %w", err)
	}
	_ = f.SetCellStr(summarySheet, "A1", "Total de registros")
	_ = f.SetCellValue(summarySheet, "B1", res.TotalCount)
	_ = f.SetCellStr(summarySheet, "A2", "Soma de pontos")
	_ = f.SetCellValue(summarySheet, "B2", res.PointSum)

	cats := make([]string, 0, len(res.CountByCategory))
	for c := range res.CountByCategory {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	row := 4
	_ = f.SetCellStr(summarySheet, fmt.Sprintf("A%d", row), "Tipo")
	_ = f.SetCellStr(summarySheet, fmt.Sprintf("B%d", row), "Registros")
	for _, c := range cats {
		row++
		_ = f.SetCellStr(summarySheet, fmt.Sprintf("A%d", row), c)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), res.CountByCategory[c])
	}

	return f, nil
}
