package tree

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/mygit-vcs/mygit/pkg/objects"
)

func testHash(seed string) objects.ObjectHash {
	sum := sha1.Sum([]byte(seed))
	return objects.ObjectHash(hex.EncodeToString(sum[:]))
}

func TestEntrySerializeFormat(t *testing.T) {
	hash := testHash("a.txt")
	entry := Entry{Mode: 0o100644, Name: "a.txt", Hash: hash}

	data, err := entry.Serialize()
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	raw, _ := hash.Raw()
	want := append([]byte(fmt.Sprintf("%o a.txt\x00", 0o100644)), raw[:]...)
	if !bytes.Equal(data, want) {
		t.Errorf("entry bytes mismatch: got %q, want %q", data, want)
	}
}

func TestEntrySerializeRejectsBadHash(t *testing.T) {
	entry := Entry{Mode: 0o100644, Name: "a.txt", Hash: "nothex"}
	if _, err := entry.Serialize(); err == nil {
		t.Error("expected error for malformed hash")
	}
}

func TestTreeRoundtrip(t *testing.T) {
	entries := []Entry{
		{Mode: 0o100644, Name: "a.txt", Hash: testHash("a")},
		{Mode: 0o100755, Name: "run.sh", Hash: testHash("run")},
		{Mode: 0o100644, Name: "z.txt", Hash: testHash("z")},
	}

	original := New(entries)
	content, err := original.Content()
	if err != nil {
		t.Fatalf("Content failed: %v", err)
	}

	parsed, err := ParseTree(objects.Frame(objects.TreeType, content))
	if err != nil {
		t.Fatalf("ParseTree failed: %v", err)
	}

	got := parsed.Entries()
	if len(got) != len(entries) {
		t.Fatalf("expected %d entries, got %d", len(entries), len(got))
	}
	for i, want := range entries {
		if got[i] != want {
			t.Errorf("entry %d mismatch: got %+v, want %+v", i, got[i], want)
		}
	}
}

func TestTreePreservesOrder(t *testing.T) {
	entries := []Entry{
		{Mode: 0o100644, Name: "z.txt", Hash: testHash("z")},
		{Mode: 0o100644, Name: "a.txt", Hash: testHash("a")},
	}

	tr := New(entries)
	got := tr.Entries()
	if got[0].Name != "z.txt" || got[1].Name != "a.txt" {
		t.Errorf("entry order not preserved: %v", got)
	}
}

func TestTreeHashStableAcrossCalls(t *testing.T) {
	tr := New([]Entry{{Mode: 0o100644, Name: "a.txt", Hash: testHash("a")}})

	first, err := tr.Hash()
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	second, err := tr.Hash()
	if err != nil {
		t.Fatalf("second Hash failed: %v", err)
	}
	if first != second {
		t.Errorf("hash changed between calls: %s vs %s", first, second)
	}
}

func TestEmptyTree(t *testing.T) {
	tr := New(nil)
	if !tr.IsEmpty() {
		t.Error("expected empty tree")
	}

	content, err := tr.Content()
	if err != nil {
		t.Fatalf("Content failed: %v", err)
	}
	if len(content) != 0 {
		t.Errorf("expected empty content, got %d bytes", len(content))
	}
}

func TestParseTreeRejectsTruncatedEntry(t *testing.T) {
	hash := testHash("a")
	raw, _ := hash.Raw()
	data := append([]byte("100644 a.txt\x00"), raw[:10]...)

	if _, err := ParseTree(objects.Frame(objects.TreeType, data)); err == nil {
		t.Error("expected error for truncated hash bytes")
	}
}
