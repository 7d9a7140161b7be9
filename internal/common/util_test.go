package common

import (
	"errors"
	"testing"
)

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

func TestRegistrationErrors_Kinds(t *testing.T) {
	tests := []struct {
		err  error
		kind error
		msg  string
	}{
		{ErrPasswordsDoNotMatch, ErrorValidation, "passwords do not match"},
		{ErrWeakPassword, ErrorValidation, "password is not strong enough"},
		{ErrEmailAlreadyRegistered, ErrorAlreadyExists, "email already registered"},
	}

	for _, tc := range tests {
		if !errors.Is(tc.err, tc.kind) {
			t.Fatalf("%q: expected kind %v", tc.err, tc.kind)
		}
		if tc.err.Error() != tc.msg {
			t.Fatalf("message mismatch: got %q want %q", tc.err.Error(), tc.msg)
		}
	}

	if errors.Is(ErrEmailAlreadyRegistered, ErrorValidation) {
		t.Fatal("conflict must not match validation kind")
	}
}
