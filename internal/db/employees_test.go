//go:build testutil
// +build testutil

package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/guardiao/gestao/internal/db"
	"github.com/guardiao/gestao/internal/models"
	"github.com/guardiao/gestao/internal/testutil/testdb"
)

func mustInsertEmployee(t *testing.T, dbx *sql.DB, name, cpfNum string, post *string) int64 {
	t.Helper()
	id, err := db.InsertEmployee(context.Background(), dbx, models.NewEmployee{
		Name: name,
		CPF:  cpfNum,
		Post: post,
	})
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func countEmployees(t *testing.T, dbx *sql.DB) int {
	t.Helper()
	var n int
	if err := dbx.QueryRow(`SELECT count(*) FROM employees`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	return n
}

func ptrString(v string) *string { return &v }
func ptrInt(v int) *int          { return &v }

func TestEmployees_CRUD(t *testing.T) {
	h, err := testdb.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()
	ctx := context.Background()

	idB := mustInsertEmployee(t, h.DB, "Bruno Lima", "52998224725", ptrString("vigilante"))
	idA := mustInsertEmployee(t, h.DB, "ana costa", "11144477735", nil)

	// list is ordered by name, case-insensitive
	list, err := db.ListEmployees(ctx, h.DB)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].ID != idA || list[1].ID != idB {
		t.Fatalf("unexpected order: %+v", list)
	}
	if list[1].Score != models.DefaultScore {
		t.Fatalf("default score = %d", list[1].Score)
	}

	// search by name fragment and by cpf fragment
	got, err := db.SearchEmployees(ctx, h.DB, "COSTA")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != idA {
		t.Fatalf("search by name: %+v", got)
	}
	got, err = db.SearchEmployees(ctx, h.DB, "529982")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != idB {
		t.Fatalf("search by cpf: %+v", got)
	}
	got, err = db.SearchEmployees(ctx, h.DB, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("empty query should return all, got %d", len(got))
	}

	// update rewrites fields but never the score
	adm := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if err := db.UpdateEmployee(ctx, h.DB, idA, models.UpdateEmployee{
		Name:      "Ana Costa",
		CPF:       "111.444.777-35",
		Post:      ptrString("supervisora"),
		Admission: &adm,
	}); err != nil {
		t.Fatal(err)
	}
	emp, err := db.GetEmployee(ctx, h.DB, idA)
	if err != nil {
		t.Fatal(err)
	}
	if emp.Name != "Ana Costa" || emp.CPF != "11144477735" || emp.Score != models.DefaultScore {
		t.Fatalf("after update: %+v", emp)
	}
	if emp.Post == nil || *emp.Post != "supervisora" {
		t.Fatalf("post not updated: %+v", emp.Post)
	}

	if err := db.UpdateEmployee(ctx, h.DB, 9999, models.UpdateEmployee{Name: "x", CPF: "12345678909"}); !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("update missing: %v", err)
	}

	if err := db.DeleteEmployee(ctx, h.DB, idB); err != nil {
		t.Fatal(err)
	}
	if err := db.DeleteEmployee(ctx, h.DB, idB); !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("second delete: %v", err)
	}
	if _, err := db.GetEmployee(ctx, h.DB, idB); !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("get deleted: %v", err)
	}
}

func TestInsertEmployee_Validation(t *testing.T) {
	h, err := testdb.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()
	ctx := context.Background()

	// invalid check digits: rejected before any write
	_, err = db.InsertEmployee(ctx, h.DB, models.NewEmployee{Name: "X", CPF: "52998224726"})
	if !errors.Is(err, db.ErrInvalidCPF) {
		t.Fatalf("want ErrInvalidCPF, got %v", err)
	}
	if n := countEmployees(t, h.DB); n != 0 {
		t.Fatalf("store written on invalid cpf: %d rows", n)
	}

	mustInsertEmployee(t, h.DB, "Primeiro", "52998224725", nil)

	// duplicate cpf, formatted differently: conflict, no extra row
	_, err = db.InsertEmployee(ctx, h.DB, models.NewEmployee{Name: "Segundo", CPF: "529.982.247-25"})
	if !errors.Is(err, db.ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
	if n := countEmployees(t, h.DB); n != 1 {
		t.Fatalf("duplicate created: %d rows", n)
	}

	// score override
	id, err := db.InsertEmployee(ctx, h.DB, models.NewEmployee{Name: "Custom", CPF: "12345678909", Score: ptrInt(500)})
	if err != nil {
		t.Fatal(err)
	}
	emp, err := db.GetEmployee(ctx, h.DB, id)
	if err != nil {
		t.Fatal(err)
	}
	if emp.Score != 500 {
		t.Fatalf("score override = %d", emp.Score)
	}
}
