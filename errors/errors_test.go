package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:      PhaseLoad,
				Kind:       KindInvalidDescriptor,
				Path:       []string{"classes", "2", "super"},
				Descriptor: "Qfoo;",
				Detail:     "unrecognized leading character",
			},
			contains: []string{"[load]", "invalid_descriptor", "classes.2.super", "Qfoo;", "unrecognized leading character"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseQuery,
				Kind:  KindNotFound,
			},
			contains: []string{"[query]", "not_found"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindInvalidData,
				Detail: "decode class set",
				Cause:  errors.New("unexpected EOF"),
			},
			contains: []string{"[load]", "invalid_data", "decode class set", "caused by", "unexpected EOF"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseLoad,
		Kind:  KindInvalidData,
		Cause: cause,
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should match the wrapped cause")
	}
}

func TestError_Is(t *testing.T) {
	a := &Error{Phase: PhaseRegister, Kind: KindDuplicateClass, Detail: "first"}
	b := &Error{Phase: PhaseRegister, Kind: KindDuplicateClass, Detail: "second"}
	c := &Error{Phase: PhaseQuery, Kind: KindNotFound}

	if !errors.Is(a, b) {
		t.Error("errors with the same phase and kind should match")
	}
	if errors.Is(a, c) {
		t.Error("errors with different phase/kind should not match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("bad json")
	err := New(PhaseLoad, KindInvalidData).
		Path("classes", "0").
		Descriptor("Lcom/example/Foo;").
		Detail("entry %d rejected", 0).
		Cause(cause).
		Build()

	if err.Phase != PhaseLoad || err.Kind != KindInvalidData {
		t.Errorf("builder lost phase/kind: %v %v", err.Phase, err.Kind)
	}
	if err.Descriptor != "Lcom/example/Foo;" {
		t.Errorf("Descriptor = %q", err.Descriptor)
	}
	if err.Detail != "entry 0 rejected" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if !errors.Is(err, cause) {
		t.Error("builder did not attach cause")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		phase    Phase
		kind     Kind
		contains string
	}{
		{"invalid descriptor", InvalidDescriptor(PhaseIntern, "X", "bad"), PhaseIntern, KindInvalidDescriptor, "X"},
		{"invalid access", InvalidAccess([]string{"classes", "1"}, "sealed"), PhaseLoad, KindInvalidAccess, `"sealed"`},
		{"field missing", FieldMissing(PhaseLoad, nil, "descriptor"), PhaseLoad, KindFieldMissing, `"descriptor"`},
		{"not found", NotFound(PhaseQuery, "class", "Lfoo;"), PhaseQuery, KindNotFound, `"Lfoo;"`},
		{"duplicate class", DuplicateClass("Lfoo;"), PhaseRegister, KindDuplicateClass, "Lfoo;"},
		{"cycle", Cycle(PhaseQuery, "Lfoo;"), PhaseQuery, KindCycleDetected, "cycle"},
		{"invariant", Invariant(PhaseDecode, "descriptor %q unrecognized", "Q"), PhaseDecode, KindInvariant, `"Q"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("Phase = %v, want %v", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("Error() = %q, want substring %q", tt.err.Error(), tt.contains)
			}
		})
	}
}
