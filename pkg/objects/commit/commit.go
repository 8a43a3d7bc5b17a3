package commit

import (
	"fmt"
	"io"
	"strings"

	"github.com/mygit-vcs/mygit/pkg/objects"
)

// Commit links a tree snapshot to at most one parent commit, carries the
// author/committer signatures, and a free-text message.
//
// Content layout:
//
//	tree <tree-hash>
//	parent <parent-hash>      (omitted for the initial commit)
//	author <name> <<email>> <unix-ts> +0000
//	committer <name> <<email>> <unix-ts> +0000
//
//	<message>
//
// Commits form a singly-linked chain back to the initial commit; no merge
// commits with two parents are ever created.
type Commit struct {
	TreeHash   objects.ObjectHash
	ParentHash objects.ObjectHash // empty for the initial commit
	Author     Signature
	Committer  Signature
	Message    string

	hash *objects.ObjectHash
}

// HasParent reports whether this commit has a parent.
func (c *Commit) HasParent() bool {
	return c.ParentHash != ""
}

// Summary returns the first line of the commit message.
func (c *Commit) Summary() string {
	if i := strings.IndexByte(c.Message, '\n'); i >= 0 {
		return c.Message[:i]
	}
	return c.Message
}

// Validate checks that required fields are present.
func (c *Commit) Validate() error {
	if err := c.TreeHash.Validate(); err != nil {
		return fmt.Errorf("invalid tree hash: %w", err)
	}
	if c.ParentHash != "" {
		if err := c.ParentHash.Validate(); err != nil {
			return fmt.Errorf("invalid parent hash: %w", err)
		}
	}
	if c.Author.Name == "" {
		return fmt.Errorf("author is required")
	}
	if c.Committer.Name == "" {
		return fmt.Errorf("committer is required")
	}
	return nil
}

// Type returns the object type.
func (c *Commit) Type() objects.ObjectType {
	return objects.CommitType
}

// Content returns the commit text, without the frame header. The message
// is terminated by a single newline.
func (c *Commit) Content() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var buf strings.Builder
	buf.WriteString("tree ")
	buf.WriteString(c.TreeHash.String())
	buf.WriteString("\n")

	if c.HasParent() {
		buf.WriteString("parent ")
		buf.WriteString(c.ParentHash.String())
		buf.WriteString("\n")
	}

	buf.WriteString("author ")
	buf.WriteString(c.Author.FormatLine())
	buf.WriteString("\n")

	buf.WriteString("committer ")
	buf.WriteString(c.Committer.FormatLine())
	buf.WriteString("\n")

	buf.WriteString("\n")
	buf.WriteString(c.Message)
	buf.WriteString("\n")

	return []byte(buf.String()), nil
}

// Hash returns the content-address of the commit.
func (c *Commit) Hash() (objects.ObjectHash, error) {
	if c.hash != nil {
		return *c.hash, nil
	}

	content, err := c.Content()
	if err != nil {
		return "", err
	}
	hash := objects.HashFrame(objects.CommitType, content)
	c.hash = &hash
	return hash, nil
}

// Serialize writes the commit in framed storage format.
func (c *Commit) Serialize(w io.Writer) error {
	content, err := c.Content()
	if err != nil {
		return fmt.Errorf("serialize commit: %w", err)
	}
	if _, err := w.Write(objects.Frame(objects.CommitType, content)); err != nil {
		return fmt.Errorf("write commit: %w", err)
	}
	return nil
}

// ParseCommit parses a commit object from framed data.
func ParseCommit(data []byte) (*Commit, error) {
	objType, content, err := objects.ParseFrame(data)
	if err != nil {
		return nil, err
	}
	if objType != objects.CommitType {
		return nil, fmt.Errorf("expected commit, got %s", objType)
	}

	c, err := parseContent(string(content))
	if err != nil {
		return nil, err
	}

	hash := objects.NewObjectHash(data)
	c.hash = &hash
	return c, nil
}

func parseContent(content string) (*Commit, error) {
	lines := strings.Split(content, "\n")
	c := &Commit{}

	messageStart := -1
	for i, line := range lines {
		if line == "" {
			messageStart = i + 1
			break
		}
		if err := parseHeaderLine(c, line); err != nil {
			return nil, err
		}
	}

	if messageStart != -1 && messageStart < len(lines) {
		c.Message = strings.TrimSuffix(strings.Join(lines[messageStart:], "\n"), "\n")
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid commit: %w", err)
	}

	return c, nil
}

func parseHeaderLine(c *Commit, line string) error {
	switch {
	case strings.HasPrefix(line, "tree "):
		hash, err := objects.ParseObjectHash(strings.TrimPrefix(line, "tree "))
		if err != nil {
			return fmt.Errorf("invalid tree line: %w", err)
		}
		c.TreeHash = hash

	case strings.HasPrefix(line, "parent "):
		hash, err := objects.ParseObjectHash(strings.TrimPrefix(line, "parent "))
		if err != nil {
			return fmt.Errorf("invalid parent line: %w", err)
		}
		c.ParentHash = hash

	case strings.HasPrefix(line, "author "):
		sig, err := parseSignature(strings.TrimPrefix(line, "author "))
		if err != nil {
			return err
		}
		c.Author = sig

	case strings.HasPrefix(line, "committer "):
		sig, err := parseSignature(strings.TrimPrefix(line, "committer "))
		if err != nil {
			return err
		}
		c.Committer = sig
	}

	// Unknown header lines are skipped rather than rejected.
	return nil
}
