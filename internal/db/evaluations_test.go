//go:build testutil
// +build testutil

package db_test

import (
	"context"
	"sync"
	"testing"

	"github.com/guardiao/gestao/internal/db"
	"github.com/guardiao/gestao/internal/models"
	"github.com/guardiao/gestao/internal/testutil/testdb"
)

func TestApplyEvaluation_ScoreProgression(t *testing.T) {
	h, err := testdb.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()
	ctx := context.Background()
	deltas := models.DefaultDeltas()

	id := mustInsertEmployee(t, h.DB, "João da Silva", "52998224725", nil)

	delta, err := db.ApplyEvaluation(ctx, h.DB, deltas, id, "falta", nil)
	if err != nil {
		t.Fatal(err)
	}
	if delta != -10 {
		t.Fatalf("falta delta = %d", delta)
	}
	emp, _ := db.GetEmployee(ctx, h.DB, id)
	if emp.Score != 990 {
		t.Fatalf("score after falta = %d, want 990", emp.Score)
	}

	delta, err = db.ApplyEvaluation(ctx, h.DB, deltas, id, "elogio", ptrString("atendimento exemplar"))
	if err != nil {
		t.Fatal(err)
	}
	if delta != 5 {
		t.Fatalf("elogio delta = %d", delta)
	}
	emp, _ = db.GetEmployee(ctx, h.DB, id)
	if emp.Score != 995 {
		t.Fatalf("score after elogio = %d, want 995", emp.Score)
	}

	// unknown category: delta zero, score untouched, record still written
	delta, err = db.ApplyEvaluation(ctx, h.DB, deltas, id, "treinamento", nil)
	if err != nil {
		t.Fatal(err)
	}
	if delta != 0 {
		t.Fatalf("unknown delta = %d", delta)
	}
	emp, _ = db.GetEmployee(ctx, h.DB, id)
	if emp.Score != 995 {
		t.Fatalf("score after unknown = %d, want 995", emp.Score)
	}

	evs, err := db.ListEvaluationsByEmployee(ctx, h.DB, id)
	if err != nil {
		t.Fatal(err)
	}
	if len(evs) != 3 {
		t.Fatalf("want 3 records, got %d", len(evs))
	}
	// newest first; the stored delta is authoritative, not recomputed
	if evs[0].Category != "treinamento" || evs[0].Points != 0 {
		t.Fatalf("latest record: %+v", evs[0])
	}
}

func TestApplyEvaluation_NotIdempotent(t *testing.T) {
	h, err := testdb.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()
	ctx := context.Background()
	deltas := models.DefaultDeltas()

	id := mustInsertEmployee(t, h.DB, "Maria Souza", "11144477735", nil)

	for i := 0; i < 2; i++ {
		if _, err := db.ApplyEvaluation(ctx, h.DB, deltas, id, "advertencia", nil); err != nil {
			t.Fatal(err)
		}
	}
	emp, _ := db.GetEmployee(ctx, h.DB, id)
	if emp.Score != 990 {
		t.Fatalf("two advertencias: score = %d, want 990", emp.Score)
	}
	evs, _ := db.ListEvaluationsByEmployee(ctx, h.DB, id)
	if len(evs) != 2 {
		t.Fatalf("want 2 distinct records, got %d", len(evs))
	}
}

func TestApplyEvaluation_Parallel(t *testing.T) {
	h, err := testdb.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()
	ctx := context.Background()
	deltas := models.DefaultDeltas()

	id1 := mustInsertEmployee(t, h.DB, "Colaborador 1", "52998224725", nil)
	id2 := mustInsertEmployee(t, h.DB, "Colaborador 2", "11144477735", nil)

	// Relative increments must survive contention without lost updates.
	wg := sync.WaitGroup{}
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = db.ApplyEvaluation(ctx, h.DB, deltas, id1, "extra", nil)
		}()
		go func() {
			defer wg.Done()
			_, _ = db.ApplyEvaluation(ctx, h.DB, deltas, id2, "extra", nil)
		}()
	}
	wg.Wait()

	e1, _ := db.GetEmployee(ctx, h.DB, id1)
	e2, _ := db.GetEmployee(ctx, h.DB, id2)
	if e1.Score != 1050 || e2.Score != 1050 {
		t.Fatalf("expected 1050 each, got %d and %d", e1.Score, e2.Score)
	}
}

func TestAdminRecords_DoNotTouchScore(t *testing.T) {
	h, err := testdb.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()
	ctx := context.Background()

	id := mustInsertEmployee(t, h.DB, "Carlos Pinto", "12345678909", nil)

	if err := db.InsertAdminRecord(ctx, h.DB, id, "mudanca_posto", ptrString("transferido para portaria")); err != nil {
		t.Fatal(err)
	}
	if err := db.InsertAdminRecord(ctx, h.DB, id, "documentacao", nil); err != nil {
		t.Fatal(err)
	}

	recs, err := db.ListAdminRecordsByEmployee(ctx, h.DB, id)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
	if recs[0].Category != "documentacao" {
		t.Fatalf("newest first expected, got %+v", recs[0])
	}

	emp, _ := db.GetEmployee(ctx, h.DB, id)
	if emp.Score != models.DefaultScore {
		t.Fatalf("admin record changed score: %d", emp.Score)
	}
}
