package cpu

import (
	"bytes"
	"testing"
	"unsafe"
)

func TestAllocStorage_Aligned(t *testing.T) {
	b := AllocStorage(100)
	addr := uintptr(unsafe.Pointer(&b.Bytes[0]))
	if addr%storageAlignment != 0 {
		t.Errorf("buffer address %x is not %d-byte aligned", addr, storageAlignment)
	}
	if len(b.Bytes) != 100 {
		t.Errorf("len(Bytes) = %d, want 100", len(b.Bytes))
	}
}

func TestAllocStorage_Zero(t *testing.T) {
	b := AllocStorage(0)
	if len(b.Bytes) != 0 {
		t.Errorf("len(Bytes) = %d, want 0", len(b.Bytes))
	}
}

func TestStorageBuffer_SetFillsEveryByte(t *testing.T) {
	b := AllocStorage(16)
	b.Set(0, 0xAB)
	want := bytes.Repeat([]byte{0xAB}, 16)
	if !bytes.Equal(b.Bytes, want) {
		t.Errorf("Set did not fill every byte: got %x", b.Bytes)
	}
}

func TestStorageBuffer_SetFromOffsetLeavesPrefixUntouched(t *testing.T) {
	b := AllocStorage(16)
	b.Set(0, 0xFF)
	b.Set(4, 0xAB)

	want := append(bytes.Repeat([]byte{0xFF}, 4), bytes.Repeat([]byte{0xAB}, 12)...)
	if !bytes.Equal(b.Bytes, want) {
		t.Errorf("Set(4, 0xAB) = %x, want %x", b.Bytes, want)
	}
}

func TestStorageBuffer_SetOutOfRangePanics(t *testing.T) {
	b := AllocStorage(4)
	defer func() {
		if recover() == nil {
			t.Error("expected Set past the buffer end to panic")
		}
	}()
	b.Set(5, 0xAB)
}

func TestStorageBuffer_CopyInCopyOutRoundTrip(t *testing.T) {
	b := AllocStorage(16)
	payload := []byte{1, 2, 3, 4}
	b.CopyIn(4, payload)
	got := b.CopyOut(4, 4)
	if !bytes.Equal(got, payload) {
		t.Errorf("CopyOut after CopyIn = %v, want %v", got, payload)
	}
}

func TestStorageBuffer_CopyInOutOfRangePanics(t *testing.T) {
	b := AllocStorage(4)
	defer func() {
		if recover() == nil {
			t.Error("expected CopyIn past the buffer end to panic")
		}
	}()
	b.CopyIn(2, []byte{1, 2, 3})
}

func TestFreeStorage_ClearsBuffer(t *testing.T) {
	b := AllocStorage(8)
	FreeStorage(b)
	if b.Bytes != nil {
		t.Error("Bytes should be nil after FreeStorage")
	}
}
