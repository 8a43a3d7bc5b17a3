package objects

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/klauspost/compress/zlib"
)

// ObjectType represents the kind of a stored object.
type ObjectType string

const (
	BlobType   ObjectType = "blob"
	TreeType   ObjectType = "tree"
	CommitType ObjectType = "commit"
	TagType    ObjectType = "tag"
)

const (
	NullByte  = byte(0)
	SpaceByte = byte(' ')
)

// String implements the Stringer interface.
func (o ObjectType) String() string {
	return string(o)
}

// ParseObjectType converts a string to ObjectType, rejecting anything
// outside the four recognized kinds.
func ParseObjectType(s string) (ObjectType, error) {
	switch ObjectType(s) {
	case BlobType, TreeType, CommitType, TagType:
		return ObjectType(s), nil
	default:
		return "", fmt.Errorf("unknown object type: %s", s)
	}
}

// BaseObject is the interface shared by blob, tree and commit objects.
type BaseObject interface {
	// Type returns the object type.
	Type() ObjectType

	// Content returns the raw content of the object, without the frame header.
	Content() ([]byte, error)

	// Hash returns the content-address of the object.
	Hash() (ObjectHash, error)

	// Serialize writes the object in framed storage format.
	Serialize(w io.Writer) error
}

// Frame wraps content in the storage framing: "<type> <len>\0<content>".
// The SHA-1 of the framed bytes is the object's identity.
func Frame(t ObjectType, content []byte) []byte {
	header := fmt.Sprintf("%s %d%c", t, len(content), NullByte)
	framed := make([]byte, 0, len(header)+len(content))
	framed = append(framed, header...)
	framed = append(framed, content...)
	return framed
}

// ParseFrame splits framed data at the first NUL byte, parses the
// "<type> <length>" header, and verifies the declared length against the
// actual payload. A mismatch means on-disk corruption.
func ParseFrame(data []byte) (ObjectType, []byte, error) {
	nullIndex := bytes.IndexByte(data, NullByte)
	if nullIndex == -1 {
		return "", nil, fmt.Errorf("invalid object header: missing null byte")
	}

	spaceIndex := bytes.IndexByte(data[:nullIndex], SpaceByte)
	if spaceIndex == -1 {
		return "", nil, fmt.Errorf("invalid object header: missing space")
	}

	objType, err := ParseObjectType(string(data[:spaceIndex]))
	if err != nil {
		return "", nil, err
	}

	size, err := strconv.ParseInt(string(data[spaceIndex+1:nullIndex]), 10, 64)
	if err != nil {
		return "", nil, fmt.Errorf("invalid size in header: %w", err)
	}

	content := data[nullIndex+1:]
	if int64(len(content)) != size {
		return "", nil, fmt.Errorf("object size mismatch: declared %d, got %d", size, len(content))
	}

	return objType, content, nil
}

// Compress deflates data into the zlib format objects are stored in.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)

	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, fmt.Errorf("compress object: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalize compression: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress inflates zlib-compressed object data.
func Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open compressed object: %w", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decompress object: %w", err)
	}

	return out, nil
}
