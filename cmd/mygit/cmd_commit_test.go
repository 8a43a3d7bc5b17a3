package main

import (
	"os"
	"testing"
)

func TestCommitCommand(t *testing.T) {
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	defer os.Chdir(origDir)

	th := NewTestHelper(t)
	th.InitRepo()
	th.Chdir()

	th.WriteFile("a.txt", "hello\n")

	addCmd := newAddCmd()
	addCmd.SetArgs([]string{"a.txt"})
	if err := addCmd.Execute(); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	commitCmd := newCommitCmd()
	commitCmd.SetArgs([]string{"-m", "first"})
	if err := commitCmd.Execute(); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	svc, err := findRepository()
	if err != nil {
		t.Fatalf("findRepository failed: %v", err)
	}

	tip, ok, err := svc.graph.CurrentCommit()
	if err != nil {
		t.Fatalf("CurrentCommit failed: %v", err)
	}
	if !ok {
		t.Fatal("no commit recorded")
	}
	if err := tip.Validate(); err != nil {
		t.Errorf("tip hash not well-formed: %v", err)
	}

	c, err := svc.graph.ReadCommit(tip)
	if err != nil {
		t.Fatalf("ReadCommit failed: %v", err)
	}
	if c.Message != "first" {
		t.Errorf("message mismatch: %q", c.Message)
	}
}

func TestCommitCommandRequiresMessage(t *testing.T) {
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	defer os.Chdir(origDir)

	th := NewTestHelper(t)
	th.InitRepo()
	th.Chdir()

	cmd := newCommitCmd()
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error without -m")
	}
}

func TestCommitCommandEmptyIndex(t *testing.T) {
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	defer os.Chdir(origDir)

	th := NewTestHelper(t)
	th.InitRepo()
	th.Chdir()

	// Nothing staged: the command reports it and succeeds.
	cmd := newCommitCmd()
	cmd.SetArgs([]string{"-m", "empty"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("commit with empty index must not fail: %v", err)
	}

	svc, err := findRepository()
	if err != nil {
		t.Fatalf("findRepository failed: %v", err)
	}
	_, ok, _ := svc.graph.CurrentCommit()
	if ok {
		t.Error("no commit should exist after an empty-index commit")
	}
}
