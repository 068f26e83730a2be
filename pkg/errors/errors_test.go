// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/swelham/oxi/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "empty_document_error",
			code:    errors.ErrEmptyDocument,
			message: "the file was empty",
			wantStr: "[EMPTY_DOCUMENT] the file was empty",
		},
		{
			name:    "missing_directive_error",
			code:    errors.ErrMissingDirective,
			message: "the document must start with a 'doctype' or 'extends'",
			wantStr: "[MISSING_DIRECTIVE] the document must start with a 'doctype' or 'extends'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		format  string
		args    []interface{}
		wantMsg string
	}{
		{
			name:    "format_with_string",
			code:    errors.ErrUnknownDoctype,
			format:  "unknown doctype %q",
			args:    []interface{}{"yaml"},
			wantMsg: `unknown doctype "yaml"`,
		},
		{
			name:    "format_with_multiple_args",
			code:    errors.ErrInvalidSyntax,
			format:  "line %d, column %d: unmatched ')'",
			args:    []interface{}{4, 12},
			wantMsg: "line 4, column 12: unmatched ')'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.Newf(tt.code, tt.format, tt.args...)

			if err.Message != tt.wantMsg {
				t.Errorf("Newf() message = %q, want %q", err.Message, tt.wantMsg)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrIoFailure, "cannot read source")

		if err.Code != errors.ErrIoFailure {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrIoFailure)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[IO_FAILURE] cannot read source: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrInternal, "internal error")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrIoFailure, "cannot read %s", "index.oxit")
		if err.Message != "cannot read index.oxit" {
			t.Errorf("Wrapf() message = %q", err.Message)
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrInvalidSyntax, "unmatched ')'").
		WithDetail("path", "views/index.oxit").
		WithDetail("line", 3)

	if err.Details["path"] != "views/index.oxit" {
		t.Errorf("WithDetail() path = %v, want %v", err.Details["path"], "views/index.oxit")
	}

	if err.Details["line"] != 3 {
		t.Errorf("WithDetail() line = %v, want %v", err.Details["line"], 3)
	}
}

func TestWithDetails(t *testing.T) {
	details := map[string]interface{}{
		"path":   "views/index.oxit",
		"line":   7,
		"column": 14,
	}

	err := errors.New(errors.ErrInvalidSyntax, "unclosed attribute body").
		WithDetails(details)

	for k, v := range details {
		if err.Details[k] != v {
			t.Errorf("WithDetails() %s = %v, want %v", k, err.Details[k], v)
		}
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrUnknownDoctype, "error 1")
	err2 := errors.New(errors.ErrUnknownDoctype, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with OxiError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrEmptyDocument, "empty"),
			code:     errors.ErrEmptyDocument,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrEmptyDocument, "empty"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"),
			code:     errors.ErrFileAccess,
			expected: true,
		},
		{
			name:     "non_oxi_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrFileNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrFileNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "oxi_error",
			err:      errors.New(errors.ErrMissingDirective, "no directive"),
			expected: errors.ErrMissingDirective,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorDetails(t *testing.T) {
	err := errors.New(errors.ErrInvalidSyntax, "bad").WithDetail("line", 2)
	if got := errors.GetErrorDetails(err); got["line"] != 2 {
		t.Errorf("GetErrorDetails() = %v", got)
	}
	if got := errors.GetErrorDetails(stderrors.New("plain")); got != nil {
		t.Errorf("GetErrorDetails() on plain error = %v, want nil", got)
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read file")
	ioErr := errors.Wrap(fileErr, errors.ErrIoFailure, "failed to read source")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(ioErr, errors.ErrIoFailure) {
			t.Error("Top level should have ErrIoFailure code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var oxiErr *errors.OxiError
		if stderrors.As(ioErr.Unwrap(), &oxiErr) {
			if !errors.IsErrorCode(oxiErr, errors.ErrFileAccess) {
				t.Error("Middle error should have ErrFileAccess code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(ioErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
