package store

import (
	"bytes"
	"testing"
)

func TestMemoryGetMissingKey(t *testing.T) {
	m := NewMemory()
	if _, ok, err := m.Get("quiz_users"); err != nil || ok {
		t.Fatalf("missing key: expected ok=false, got ok=%v err=%v", ok, err)
	}
}

func TestMemoryPutThenGet(t *testing.T) {
	m := NewMemory()
	if err := m.Put("quiz_phases", []byte(`[{"phase_number":1}]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	raw, ok, err := m.Get("quiz_phases")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(raw, []byte(`[{"phase_number":1}]`)) {
		t.Fatalf("unexpected value %s", raw)
	}
}

func TestMemoryCopiesValues(t *testing.T) {
	m := NewMemory()
	in := []byte(`{"a":1}`)
	if err := m.Put("k", in); err != nil {
		t.Fatalf("put: %v", err)
	}
	in[0] = 'X'

	out, _, _ := m.Get("k")
	if out[0] != '{' {
		t.Fatalf("stored value shares memory with the caller's slice")
	}
	out[0] = 'Y'

	again, _, _ := m.Get("k")
	if again[0] != '{' {
		t.Fatalf("returned value shares memory with the store")
	}
}
