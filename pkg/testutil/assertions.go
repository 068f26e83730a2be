package testutil

import (
	"testing"

	"github.com/beevik/etree"

	"github.com/swelham/oxi/pkg/errors"
)

// AssertErrorCode checks that err carries code
func AssertErrorCode(t *testing.T, err error, code errors.ErrorCode) {
	t.Helper()

	if err == nil {
		t.Fatalf("Expected error with code %s, got nil", code)
	}
	if got := errors.GetErrorCode(err); got != code {
		t.Errorf("Error code = %s, want %s (error: %v)", got, code, err)
	}
}

// AssertErrorDetail checks that err carries a detail with the given value
func AssertErrorDetail(t *testing.T, err error, key string, want interface{}) {
	t.Helper()

	details := errors.GetErrorDetails(err)
	if details == nil {
		t.Fatalf("Error %v has no details", err)
	}
	got, ok := details[key]
	if !ok {
		t.Errorf("Error detail %q missing, details: %v", key, details)
		return
	}
	if got != want {
		t.Errorf("Error detail %q = %v, want %v", key, got, want)
	}
}

// AssertWellFormed parses markup as XML and fails the test if it does not
// form a tree with exactly one root element. HTML output must drop its
// doctype before being checked.
func AssertWellFormed(t *testing.T, markup string) *etree.Document {
	t.Helper()

	doc := etree.NewDocument()
	if err := doc.ReadFromString(markup); err != nil {
		t.Fatalf("Output is not well-formed: %v\n%s", err, markup)
	}
	if doc.Root() == nil {
		t.Fatalf("Output has no root element:\n%s", markup)
	}
	return doc
}
