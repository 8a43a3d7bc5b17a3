package index

import (
	"os"
	"path"

	"github.com/mygit-vcs/mygit/pkg/objects"
)

// Unix-style modes captured for staged files. Directories are never
// staged, so only the two regular-file forms appear.
const (
	ModeRegular    uint32 = 0o100644
	ModeExecutable uint32 = 0o100755
)

// Entry is one staged file. The field set and JSON keys are the on-disk
// index format and must not change.
type Entry struct {
	// Path is the file's path relative to the repository root,
	// slash-separated.
	Path string `json:"path"`

	// Hash is the content-address of the file's blob.
	Hash objects.ObjectHash `json:"hash"`

	// Mode is the unix-style file mode (e.g. 0o100644 == 33188).
	Mode uint32 `json:"mode"`

	// Size is the file size in bytes at staging time.
	Size int64 `json:"size"`

	// Mtime is the file's modification time in unix seconds.
	Mtime float64 `json:"mtime"`
}

// NewEntryFromFileInfo builds an Entry from a staged file's metadata.
func NewEntryFromFileInfo(relPath string, info os.FileInfo, hash objects.ObjectHash) Entry {
	return Entry{
		Path:  relPath,
		Hash:  hash,
		Mode:  modeFromFileInfo(info),
		Size:  info.Size(),
		Mtime: float64(info.ModTime().UnixNano()) / 1e9,
	}
}

// Basename returns the final path element, the name used in tree objects.
func (e Entry) Basename() string {
	return path.Base(e.Path)
}

func modeFromFileInfo(info os.FileInfo) uint32 {
	if info.Mode()&0o111 != 0 {
		return ModeExecutable
	}
	return ModeRegular
}
