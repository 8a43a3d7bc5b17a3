package tree

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/mygit-vcs/mygit/pkg/objects"
)

// Entry is a single record in a tree object.
//
// Serialized format: "<octal-mode> <name>\0" followed by the 20-byte raw
// hash of the referenced object. The mode is written as bare octal digits
// with no leading marker (0o100644 becomes "100644").
type Entry struct {
	// Mode is the unix-style file mode (e.g. 0o100644).
	Mode uint32

	// Name is the entry's basename within the tree.
	Name string

	// Hash is the content-address of the referenced object.
	Hash objects.ObjectHash
}

// Serialize encodes the entry into its on-disk record form.
func (e Entry) Serialize() ([]byte, error) {
	if e.Name == "" {
		return nil, fmt.Errorf("tree entry name cannot be empty")
	}
	raw, err := e.Hash.Raw()
	if err != nil {
		return nil, fmt.Errorf("tree entry %q: %w", e.Name, err)
	}

	record := fmt.Appendf(nil, "%o %s%c", e.Mode, e.Name, objects.NullByte)
	return append(record, raw[:]...), nil
}

// Tree is a flat directory snapshot: an ordered list of name-to-hash
// records built from the staging index at commit time.
//
// Known limitation, kept for on-disk compatibility: entries carry only the
// file's basename, so staged paths in different directories that share a
// basename collide in the tree object. Entry order is the index's
// path-sorted order, which keeps tree hashes deterministic.
type Tree struct {
	entries []Entry
	hash    *objects.ObjectHash
}

// New creates a Tree from the given entries, preserving their order.
func New(entries []Entry) *Tree {
	return &Tree{entries: entries}
}

// ParseTree parses a tree object from framed data.
func ParseTree(data []byte) (*Tree, error) {
	objType, content, err := objects.ParseFrame(data)
	if err != nil {
		return nil, err
	}
	if objType != objects.TreeType {
		return nil, fmt.Errorf("expected tree, got %s", objType)
	}

	entries, err := parseEntries(content)
	if err != nil {
		return nil, err
	}

	hash := objects.NewObjectHash(data)
	return &Tree{entries: entries, hash: &hash}, nil
}

// Type returns the object type.
func (t *Tree) Type() objects.ObjectType {
	return objects.TreeType
}

// Content returns the concatenated entry records, without the frame header.
func (t *Tree) Content() ([]byte, error) {
	var buf bytes.Buffer
	for _, entry := range t.entries {
		record, err := entry.Serialize()
		if err != nil {
			return nil, err
		}
		buf.Write(record)
	}
	return buf.Bytes(), nil
}

// Hash returns the content-address of the tree.
func (t *Tree) Hash() (objects.ObjectHash, error) {
	if t.hash != nil {
		return *t.hash, nil
	}

	content, err := t.Content()
	if err != nil {
		return "", err
	}
	hash := objects.HashFrame(objects.TreeType, content)
	t.hash = &hash
	return hash, nil
}

// Serialize writes the tree in framed storage format.
func (t *Tree) Serialize(w io.Writer) error {
	content, err := t.Content()
	if err != nil {
		return fmt.Errorf("serialize tree: %w", err)
	}
	if _, err := w.Write(objects.Frame(objects.TreeType, content)); err != nil {
		return fmt.Errorf("write tree: %w", err)
	}
	return nil
}

// Entries returns a copy of the tree's entries.
func (t *Tree) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree) IsEmpty() bool {
	return len(t.entries) == 0
}

func parseEntries(content []byte) ([]Entry, error) {
	var entries []Entry
	offset := 0

	for offset < len(content) {
		spaceIndex := bytes.IndexByte(content[offset:], objects.SpaceByte)
		if spaceIndex == -1 {
			return nil, fmt.Errorf("invalid tree entry at offset %d: missing space", offset)
		}
		spaceIndex += offset

		var mode uint32
		if _, err := fmt.Sscanf(string(content[offset:spaceIndex]), "%o", &mode); err != nil {
			return nil, fmt.Errorf("invalid tree entry mode at offset %d: %w", offset, err)
		}

		nullIndex := bytes.IndexByte(content[spaceIndex+1:], objects.NullByte)
		if nullIndex == -1 {
			return nil, fmt.Errorf("invalid tree entry at offset %d: missing null byte", offset)
		}
		nullIndex += spaceIndex + 1

		name := string(content[spaceIndex+1 : nullIndex])

		start := nullIndex + 1
		end := start + objects.RawHashLength
		if end > len(content) {
			return nil, fmt.Errorf("invalid tree entry %q: incomplete hash", name)
		}

		entries = append(entries, Entry{
			Mode: mode,
			Name: name,
			Hash: objects.ObjectHash(hex.EncodeToString(content[start:end])),
		})
		offset = end
	}

	return entries, nil
}
