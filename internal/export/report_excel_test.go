package export

import (
	"testing"
	"time"

	"github.com/guardiao/gestao/internal/models"
)

func TestBuildReportWorkbook(t *testing.T) {
	post := "vigilante"
	desc := "falta sem justificativa"
	res := &models.ReportResult{
		TotalCount: 2,
		PointSum:   -5,
		CountByCategory: map[string]int{
			"falta":  1,
			"elogio": 1,
		},
		Items: []models.ReportItem{
			{
				CreatedAt:   time.Date(2026, 8, 1, 13, 30, 0, 0, time.UTC),
				Employee:    "João da Silva",
				CPF:         "52998224725",
				Post:        &post,
				Category:    "falta",
				Points:      -10,
				Description: &desc,
			},
			{
				CreatedAt: time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC),
				Employee:  "Maria Souza",
				CPF:       "11144477735",
				Category:  "elogio",
				Points:    5,
			},
		},
	}

	f, err := BuildReportWorkbook(res)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	got, err := f.GetCellValue(itemsSheet, "B2")
	if err != nil {
		t.Fatal(err)
	}
	if got != "João da Silva" {
		t.Errorf("B2 = %q", got)
	}
	if got, _ := f.GetCellValue(itemsSheet, "F2"); got != "-10" {
		t.Errorf("F2 = %q, want -10", got)
	}
	if got, _ := f.GetCellValue(itemsSheet, "D3"); got != "" {
		t.Errorf("D3 = %q, want empty post", got)
	}

	if got, _ := f.GetCellValue(summarySheet, "B1"); got != "2" {
		t.Errorf("summary total = %q", got)
	}
	if got, _ := f.GetCellValue(summarySheet, "B2"); got != "-5" {
		t.Errorf("summary sum = %q", got)
	}
	// categories are listed alphabetically
	if got, _ := f.GetCellValue(summarySheet, "A5"); got != "elogio" {
		t.Errorf("first category = %q", got)
	}
	if got, _ := f.GetCellValue(summarySheet, "A6"); got != "falta" {
		t.Errorf("second category = %q", got)
	}
}

func TestReportFilename(t *testing.T) {
	name := ReportFilename("2026-08-31")
	if name != "relatorio_avaliacoes_2026-08-31.xlsx" {
		t.Errorf("got %q", name)
	}
}
