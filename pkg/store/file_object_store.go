package store

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mygit-vcs/mygit/pkg/common/err"
	"github.com/mygit-vcs/mygit/pkg/common/logger"
	"github.com/mygit-vcs/mygit/pkg/objects"
	"github.com/mygit-vcs/mygit/pkg/repository/vcpath"
)

// FileObjectStore stores objects as zlib-compressed files under the
// control directory, fanned out by the first two hash characters:
//
//	.mygit/objects/ab/cdef0123...
//
// Objects are write-once: if the target path already exists the write is
// skipped, since content addressing guarantees the bytes are identical.
// Nothing ever deletes an object (no garbage collection).
type FileObjectStore struct {
	control vcpath.ControlPath
	log     *slog.Logger
}

// NewFileObjectStore creates a store rooted at the given control directory.
func NewFileObjectStore(control vcpath.ControlPath, log *slog.Logger) *FileObjectStore {
	return &FileObjectStore{
		control: control,
		log:     logger.OrDefault(log),
	}
}

// HashObject frames content, computes its hash, and persists the
// compressed frame if not already present. Duplicate writes are no-ops.
func (fos *FileObjectStore) HashObject(content []byte, objType objects.ObjectType) (objects.ObjectHash, error) {
	const op = "hash_object"

	if _, parseErr := objects.ParseObjectType(objType.String()); parseErr != nil {
		return "", NewObjectError(err.CodeInvalidInput, op, "unsupported object type", "", parseErr)
	}

	framed := objects.Frame(objType, content)
	hash := objects.NewObjectHash(framed)

	path, pathErr := fos.control.ObjectFilePath(hash.String())
	if pathErr != nil {
		return "", NewObjectError(err.CodeInternal, op, "resolve object path", hash.String(), pathErr)
	}

	if _, statErr := os.Stat(path); statErr == nil {
		fos.log.Debug("object already stored", "hash", hash.Short(), "type", objType)
		return hash, nil
	}

	compressed, compErr := objects.Compress(framed)
	if compErr != nil {
		return "", NewObjectError(err.CodeInternal, op, "compress object", hash.String(), compErr)
	}

	if writeErr := fos.writeObjectFile(path, compressed); writeErr != nil {
		return "", NewObjectError(err.CodeInternal, op, "write object file", hash.String(), writeErr)
	}

	fos.log.Debug("object stored", "hash", hash.Short(), "type", objType, "size", len(content))
	return hash, nil
}

// WriteObject serializes a typed object and stores it through HashObject.
func (fos *FileObjectStore) WriteObject(obj objects.BaseObject) (objects.ObjectHash, error) {
	content, contentErr := obj.Content()
	if contentErr != nil {
		return "", NewObjectError(err.CodeInvalidInput, "write_object", "serialize object", "", contentErr)
	}
	return fos.HashObject(content, obj.Type())
}

// ReadObject loads an object by hash. The hash is validated first; the
// decompressed frame's declared length must match the payload.
func (fos *FileObjectStore) ReadObject(hash objects.ObjectHash) (objects.ObjectType, []byte, error) {
	const op = "read_object"

	if valErr := hash.Validate(); valErr != nil {
		return "", nil, NewObjectError(err.CodeInvalidInput, op, "malformed hash", hash.String(), valErr)
	}

	path, pathErr := fos.control.ObjectFilePath(hash.String())
	if pathErr != nil {
		return "", nil, NewObjectError(err.CodeInternal, op, "resolve object path", hash.String(), pathErr)
	}

	compressed, readErr := os.ReadFile(path)
	if readErr != nil {
		if os.IsNotExist(readErr) {
			return "", nil, NewObjectError(err.CodeNotFound, op, "object not found", hash.String(), nil)
		}
		return "", nil, NewObjectError(err.CodeInternal, op, "read object file", hash.String(), readErr)
	}

	framed, decompErr := objects.Decompress(compressed)
	if decompErr != nil {
		return "", nil, NewObjectError(err.CodeInvalidFormat, op, "decompress object", hash.String(), decompErr)
	}

	objType, content, frameErr := objects.ParseFrame(framed)
	if frameErr != nil {
		return "", nil, NewObjectError(err.CodeInvalidFormat, op, "corrupt object", hash.String(), frameErr)
	}

	return objType, content, nil
}

// HasObject checks whether an object exists in the store.
func (fos *FileObjectStore) HasObject(hash objects.ObjectHash) (bool, error) {
	if valErr := hash.Validate(); valErr != nil {
		return false, NewObjectError(err.CodeInvalidInput, "has_object", "malformed hash", hash.String(), valErr)
	}

	path, pathErr := fos.control.ObjectFilePath(hash.String())
	if pathErr != nil {
		return false, NewObjectError(err.CodeInternal, "has_object", "resolve object path", hash.String(), pathErr)
	}

	_, statErr := os.Stat(path)
	if statErr == nil {
		return true, nil
	}
	if os.IsNotExist(statErr) {
		return false, nil
	}
	return false, NewObjectError(err.CodeInternal, "has_object", "stat object file", hash.String(), statErr)
}

// writeObjectFile writes compressed object data via temp file and rename,
// creating the fan-out directory on demand.
func (fos *FileObjectStore) writeObjectFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
		return mkErr
	}

	tmp, tmpErr := os.CreateTemp(dir, ".obj-*")
	if tmpErr != nil {
		return tmpErr
	}
	tmpName := tmp.Name()

	if _, writeErr := tmp.Write(data); writeErr != nil {
		tmp.Close()
		os.Remove(tmpName)
		return writeErr
	}
	if closeErr := tmp.Close(); closeErr != nil {
		os.Remove(tmpName)
		return closeErr
	}

	if chmodErr := os.Chmod(tmpName, 0o444); chmodErr != nil {
		os.Remove(tmpName)
		return chmodErr
	}
	if renameErr := os.Rename(tmpName, path); renameErr != nil {
		os.Remove(tmpName)
		return renameErr
	}

	return nil
}

// ReadFramed re-frames a stored object, for callers that parse typed
// objects (tree.ParseTree, commit.ParseCommit) from full framed bytes.
func ReadFramed(s ObjectStore, hash objects.ObjectHash) ([]byte, error) {
	objType, content, readErr := s.ReadObject(hash)
	if readErr != nil {
		return nil, readErr
	}
	return objects.Frame(objType, content), nil
}
