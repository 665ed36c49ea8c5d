package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func pgErr(code string) error { return &pgconn.PgError{Code: code, Message: "pg says no"} }

func TestDBErrorCode(t *testing.T) {
	cases := []struct {
		sqlstate string
		want     ErrorCode
	}{
		{pgErrUniqueViolation, ErrorCodeDuplicateKey},
		{pgErrForeignKeyViolation, ErrorCodeInvalidArgument},
		{pgErrInvalidTextRepresentation, ErrorCodeInvalidArgument},
		{pgErrNotNullViolation, ErrorCodeValidation},
		{pgErrCheckViolation, ErrorCodeValidation},
		{pgErrDeadlockDetected, ErrorCodeDB},
		{pgErrCannotConnectNow, ErrorCodeUnavailable},
		{"99999", ErrorCodeDB},
	}
	for _, c := range cases {
		got, ok := DBErrorCode(pgErr(c.sqlstate))
		if !ok || got != c.want {
			t.Fatalf("DBErrorCode(%s) = %v ok=%v, want %v", c.sqlstate, got, ok, c.want)
		}
	}
	if _, ok := DBErrorCode(fmt.Errorf("not pg")); ok {
		t.Fatalf("DBErrorCode should reject non-pg errors")
	}
}

func TestExtractThroughWrapping(t *testing.T) {
	wrapped := Wrap(pgErr(pgErrUniqueViolation), ErrorCodeDB, "insert listing")
	if !IsDuplicateKey(wrapped) {
		t.Fatalf("IsDuplicateKey should see through project wrapping")
	}
	if IsRetryable(wrapped) {
		t.Fatalf("unique violation is not retryable")
	}
	if !IsRetryable(pgErr(pgErrSerializationFailure)) {
		t.Fatalf("serialization failure should be retryable")
	}
}

func TestFromPostgres(t *testing.T) {
	if FromPostgres(nil, "x") != nil {
		t.Fatalf("FromPostgres(nil) should be nil")
	}
	err := FromPostgres(pgErr(pgErrUniqueViolation), "insert listing")
	if HTTPStatus(err) != http.StatusConflict {
		t.Fatalf("FromPostgres unique violation should map to 409, got %d", HTTPStatus(err))
	}
	generic := FromPostgres(fmt.Errorf("conn reset"), "query listings")
	if CodeOf(generic) != ErrorCodeDB {
		t.Fatalf("non-pg errors default to DB code, got %v", CodeOf(generic))
	}
}
