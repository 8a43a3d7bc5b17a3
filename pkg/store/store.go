package store

import (
	"github.com/mygit-vcs/mygit/pkg/objects"
)

// ObjectStore is the content-addressed storage every other component
// writes to and reads from.
type ObjectStore interface {
	// HashObject frames, hashes and persists raw content of the given kind,
	// returning the content-address. Writing content that already exists is
	// a no-op that still returns the hash.
	HashObject(content []byte, objType objects.ObjectType) (objects.ObjectHash, error)

	// WriteObject persists a typed object (blob, tree, commit).
	WriteObject(obj objects.BaseObject) (objects.ObjectHash, error)

	// ReadObject retrieves an object by hash, returning its kind and raw
	// content. Fails for malformed hashes, missing objects, and objects
	// whose declared length does not match the stored payload.
	ReadObject(hash objects.ObjectHash) (objects.ObjectType, []byte, error)

	// HasObject checks whether an object exists in the store.
	HasObject(hash objects.ObjectHash) (bool, error)
}
