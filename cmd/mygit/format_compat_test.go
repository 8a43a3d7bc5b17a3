package main

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hashRe = regexp.MustCompile(`^[0-9a-f]{40}$`)

// TestOnDiskFormatContract pins the control-directory format: file
// layout, framing, compression, and ref contents must stay stable so
// repositories written by other tools keep working.
func TestOnDiskFormatContract(t *testing.T) {
	origDir, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(origDir)

	th := NewTestHelper(t)
	th.InitRepo()
	th.Chdir()

	content := "hello format\n"
	th.WriteFile("a.txt", content)

	addCmd := newAddCmd()
	addCmd.SetArgs([]string{"a.txt"})
	require.NoError(t, addCmd.Execute())

	commitCmd := newCommitCmd()
	commitCmd.SetArgs([]string{"-m", "pin the format"})
	require.NoError(t, commitCmd.Execute())

	control := th.ControlDir()

	t.Run("HEAD is a symbolic ref", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join(control, "HEAD"))
		require.NoError(t, err)
		assert.Equal(t, "ref: refs/heads/main\n", string(data))
	})

	t.Run("branch ref is a bare hash without newline", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join(control, "refs", "heads", "main"))
		require.NoError(t, err)
		assert.Regexp(t, hashRe, string(data))
	})

	t.Run("index is a JSON array with the fixed keys", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join(control, "index"))
		require.NoError(t, err)

		var entries []map[string]any
		require.NoError(t, json.Unmarshal(data, &entries))
		require.Len(t, entries, 1)

		entry := entries[0]
		assert.Equal(t, "a.txt", entry["path"])
		assert.Regexp(t, hashRe, entry["hash"])
		assert.EqualValues(t, 0o100644, entry["mode"])
		assert.EqualValues(t, len(content), entry["size"])
		assert.Contains(t, entry, "mtime")
	})

	t.Run("blob stored zlib-compressed at its fan-out path", func(t *testing.T) {
		framed := fmt.Sprintf("blob %d\x00%s", len(content), content)
		sum := sha1.Sum([]byte(framed))
		hash := hex.EncodeToString(sum[:])

		path := filepath.Join(control, "objects", hash[:2], hash[2:])
		compressed, err := os.ReadFile(path)
		require.NoError(t, err)

		r, err := zlib.NewReader(bytes.NewReader(compressed))
		require.NoError(t, err)
		defer r.Close()

		restored, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, framed, string(restored))
	})

	t.Run("commit object text layout", func(t *testing.T) {
		svc, err := findRepository()
		require.NoError(t, err)

		tip, ok, err := svc.graph.CurrentCommit()
		require.NoError(t, err)
		require.True(t, ok)

		objType, body, err := svc.objects.ReadObject(tip)
		require.NoError(t, err)
		assert.EqualValues(t, "commit", objType)

		text := string(body)
		lines := strings.Split(text, "\n")
		require.GreaterOrEqual(t, len(lines), 5)
		assert.True(t, strings.HasPrefix(lines[0], "tree "))
		assert.True(t, strings.HasPrefix(lines[1], "author "))
		assert.True(t, strings.HasPrefix(lines[2], "committer "))
		assert.Equal(t, "", lines[3])
		assert.Equal(t, "pin the format", lines[4])
		assert.True(t, strings.HasSuffix(text, "\n"), "message ends with a newline")
	})

	t.Run("config is JSON with core and user sections", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join(control, "config"))
		require.NoError(t, err)

		var cfg map[string]any
		require.NoError(t, json.Unmarshal(data, &cfg))
		assert.Contains(t, cfg, "core")
		assert.Contains(t, cfg, "user")
	})
}
