package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

func TestMetadataForKnownCodes(t *testing.T) {
	if got := MetadataFor(CodeDependency).HTTPStatus; got != http.StatusInternalServerError {
		t.Fatalf("dependency errors must map to 500, got %d", got)
	}
	if !MetadataFor(CodeDependency).MessageAllowed {
		t.Fatal("dependency errors should expose their message")
	}
	if MetadataFor(CodeInternal).MessageAllowed {
		t.Fatal("internal errors must not leak their message")
	}
}

func TestMetadataForUnknownCodeFallsBack(t *testing.T) {
	meta := MetadataFor(Code("SOMETHING_ELSE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unknown codes must fall back to internal, got %d", meta.HTTPStatus)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("connection refused")
	err := Wrap(CodeDependency, cause, "query customers")

	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be discoverable with errors.Is")
	}

	typed := As(fmt.Errorf("outer: %w", err))
	if typed == nil {
		t.Fatal("expected As to find the typed error through wrapping")
	}
	if typed.Code() != CodeDependency {
		t.Fatalf("unexpected code %s", typed.Code())
	}
}

func TestWrapNilCauseBehavesLikeNew(t *testing.T) {
	err := Wrap(CodeInternal, nil, "boom")
	if err.Unwrap() != nil {
		t.Fatal("expected no cause")
	}
	if err.Error() != "INTERNAL_ERROR: boom" {
		t.Fatalf("unexpected error string %q", err.Error())
	}
}

func TestAsNonTypedError(t *testing.T) {
	if As(stdErrors.New("plain")) != nil {
		t.Fatal("expected nil for non-typed errors")
	}
}

func TestDumpFlattensPostgresErrors(t *testing.T) {
	cause := &pgconn.PgError{Code: "42703", Message: "column does not exist", Detail: "bad select"}
	err := Wrap(CodeDependency, cause, "query revenue")

	d := Dump(err)
	if d.Code != CodeDependency {
		t.Fatalf("unexpected code %s", d.Code)
	}
	if d.PGCode != "42703" || d.PGMessage != "column does not exist" || d.PGDetail != "bad select" {
		t.Fatalf("postgres fields not extracted: %+v", d)
	}
	if len(d.Chain) < 2 {
		t.Fatalf("expected the unwrap chain to include the cause, got %v", d.Chain)
	}
}

func TestDumpLibPQAndNil(t *testing.T) {
	d := Dump(&pq.Error{Code: "57014", Message: "canceling statement"})
	if d.PGCode != "57014" || d.PGMessage != "canceling statement" {
		t.Fatalf("pq fields not extracted: %+v", d)
	}

	if got := Dump(nil); got.TopMessage != "" || got.Chain != nil {
		t.Fatalf("expected zero value for nil error, got %+v", got)
	}
}
