package blob

import (
	"bytes"
	"testing"

	"github.com/mygit-vcs/mygit/pkg/objects"
)

func TestBlobContent(t *testing.T) {
	data := []byte("file content\n")
	b := NewBlob(data)

	if b.Type() != objects.BlobType {
		t.Errorf("expected blob type, got %s", b.Type())
	}

	content, err := b.Content()
	if err != nil {
		t.Fatalf("Content failed: %v", err)
	}
	if !bytes.Equal(content, data) {
		t.Errorf("content mismatch: got %q, want %q", content, data)
	}
}

func TestBlobHashMatchesFrame(t *testing.T) {
	data := []byte("hello")
	b := NewBlob(data)

	hash, err := b.Hash()
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	want := objects.HashFrame(objects.BlobType, data)
	if hash != want {
		t.Errorf("hash mismatch: got %s, want %s", hash, want)
	}
}

func TestBlobSerializeRoundtrip(t *testing.T) {
	data := []byte("binary-ish \x00 content")
	b := NewBlob(data)

	var buf bytes.Buffer
	if err := b.Serialize(&buf); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	parsed, err := ParseBlob(buf.Bytes())
	if err != nil {
		t.Fatalf("ParseBlob failed: %v", err)
	}

	content, _ := parsed.Content()
	if !bytes.Equal(content, data) {
		t.Errorf("roundtrip mismatch: got %q, want %q", content, data)
	}
}

func TestParseBlobRejectsWrongType(t *testing.T) {
	if _, err := ParseBlob(objects.Frame(objects.TreeType, []byte("x"))); err == nil {
		t.Error("expected error for non-blob frame")
	}
}

func TestEmptyBlob(t *testing.T) {
	b := NewBlob(nil)

	content, err := b.Content()
	if err != nil {
		t.Fatalf("Content failed: %v", err)
	}
	if len(content) != 0 {
		t.Errorf("expected empty content, got %d bytes", len(content))
	}

	if _, err := b.Hash(); err != nil {
		t.Errorf("Hash failed for empty blob: %v", err)
	}
}
