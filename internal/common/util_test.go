package common

import "testing"

func TestWipeByteArray_ZeroesInPlace(t *testing.T) {
	b := []byte("Str0ngP@ss")
	WipeByteArray(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d not wiped: %v", i, v)
		}
	}
}

func TestWipeByteArray_NilIsNoop(t *testing.T) {
	// must not panic
	WipeByteArray(nil)
}
