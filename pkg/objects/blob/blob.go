package blob

import (
	"fmt"
	"io"

	"github.com/mygit-vcs/mygit/pkg/objects"
)

// Blob holds raw file content. It is the leaf object type: everything a
// repository tracks ultimately bottoms out in blobs.
type Blob struct {
	content []byte
	hash    *objects.ObjectHash
}

// NewBlob creates a Blob from raw data.
func NewBlob(data []byte) *Blob {
	return &Blob{content: data}
}

// ParseBlob parses a blob from framed data.
func ParseBlob(data []byte) (*Blob, error) {
	objType, content, err := objects.ParseFrame(data)
	if err != nil {
		return nil, err
	}
	if objType != objects.BlobType {
		return nil, fmt.Errorf("expected blob, got %s", objType)
	}

	hash := objects.NewObjectHash(data)
	return &Blob{content: content, hash: &hash}, nil
}

// Type returns the object type.
func (b *Blob) Type() objects.ObjectType {
	return objects.BlobType
}

// Content returns the raw content of the blob.
func (b *Blob) Content() ([]byte, error) {
	return b.content, nil
}

// Hash returns the content-address of the blob.
func (b *Blob) Hash() (objects.ObjectHash, error) {
	if b.hash != nil {
		return *b.hash, nil
	}
	hash := objects.HashFrame(objects.BlobType, b.content)
	b.hash = &hash
	return hash, nil
}

// Serialize writes the blob in framed storage format.
func (b *Blob) Serialize(w io.Writer) error {
	if _, err := w.Write(objects.Frame(objects.BlobType, b.content)); err != nil {
		return fmt.Errorf("write blob: %w", err)
	}
	return nil
}
