package gormrepo

import (
	"context"
	"testing"

	"gorm.io/gorm"
)

func TestGetDBFromCtx(t *testing.T) {
	base := &gorm.DB{}
	if got := getDBFromCtx(context.Background(), base); got != base {
		t.Fatalf("expected base db without tx")
	}
	tx := &gorm.DB{}
	if got := getDBFromCtx(withTx(context.Background(), tx), base); got != tx {
		t.Fatalf("expected tx from context")
	}
	if _, ok := txFromCtx(withTx(context.Background(), nil)); ok {
		t.Fatalf("nil tx must not count as a transaction")
	}
}
