package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestPQErrorClassification(t *testing.T) {
	unique := fmt.Errorf("insert tag: %w", &pq.Error{Code: pqUniqueViolation})
	if !isUniqueViolation(unique) {
		t.Fatalf("expected wrapped unique violation to be detected")
	}
	if isForeignKeyViolation(unique) {
		t.Fatalf("unique violation must not be reported as fk violation")
	}

	fk := &pq.Error{Code: pqForeignKeyViolation}
	if !isForeignKeyViolation(fk) {
		t.Fatalf("expected fk violation to be detected")
	}
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get play: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to be not found")
	}
	if isNotFound(fmt.Errorf("boom")) {
		t.Fatalf("unexpected not found")
	}
}

func TestNullHelpers(t *testing.T) {
	if nullString("").Valid || !nullString("13").Valid {
		t.Fatalf("unexpected nullString validity")
	}
	if nullInt(0).Valid || intFromNull(nullInt(7)) != 7 {
		t.Fatalf("unexpected nullInt round trip")
	}
}

func TestMarshalJSONB(t *testing.T) {
	got, err := marshalJSONB(map[string]string{"action": "drive"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got != `{"action":"drive"}` {
		t.Fatalf("unexpected json: %s", got)
	}
}
