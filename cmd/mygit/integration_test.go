package main

import (
	"os"
	"testing"
)

// TestIntegrationBasicWorkflow covers the full loop: init, add, commit, log.
func TestIntegrationBasicWorkflow(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	th := NewTestHelper(t)
	th.Chdir()

	initCmd := newInitCmd()
	initCmd.SetArgs([]string{})
	if err := initCmd.Execute(); err != nil {
		t.Fatalf("init command failed: %v", err)
	}

	th.WriteFile("README.md", "Hello!")

	addCmd := newAddCmd()
	addCmd.SetArgs([]string{"README.md"})
	if err := addCmd.Execute(); err != nil {
		t.Fatalf("add command failed: %v", err)
	}

	commitCmd := newCommitCmd()
	commitCmd.SetArgs([]string{"-m", "Initial commit"})
	if err := commitCmd.Execute(); err != nil {
		t.Fatalf("commit command failed: %v", err)
	}

	svc, err := findRepository()
	if err != nil {
		t.Fatalf("findRepository failed: %v", err)
	}

	history, err := svc.graph.History(10)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 commit, got %d", len(history))
	}
	if history[0].Commit.Summary() != "Initial commit" {
		t.Errorf("summary mismatch: %q", history[0].Commit.Summary())
	}

	logCmd := newLogCmd()
	logCmd.SetArgs([]string{})
	if err := logCmd.Execute(); err != nil {
		t.Fatalf("log command failed: %v", err)
	}

	statusCmd := newStatusCmd()
	statusCmd.SetArgs([]string{})
	if err := statusCmd.Execute(); err != nil {
		t.Fatalf("status command failed: %v", err)
	}
}

// TestIntegrationBranchWorkflow covers branch, checkout, commit on a
// branch, and a fast-forward merge back.
func TestIntegrationBranchWorkflow(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	th := NewTestHelper(t)
	th.InitRepo()
	th.Chdir()

	th.WriteFile("a.txt", "base")
	addCmd := newAddCmd()
	addCmd.SetArgs([]string{"a.txt"})
	if err := addCmd.Execute(); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	commitCmd := newCommitCmd()
	commitCmd.SetArgs([]string{"-m", "base"})
	if err := commitCmd.Execute(); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	branchCmd := newBranchCmd()
	branchCmd.SetArgs([]string{"b1"})
	if err := branchCmd.Execute(); err != nil {
		t.Fatalf("branch failed: %v", err)
	}

	checkoutCmd := newCheckoutCmd()
	checkoutCmd.SetArgs([]string{"b1"})
	if err := checkoutCmd.Execute(); err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	th.WriteFile("a.txt", "branch work")
	addCmd2 := newAddCmd()
	addCmd2.SetArgs([]string{"a.txt"})
	if err := addCmd2.Execute(); err != nil {
		t.Fatalf("add on branch failed: %v", err)
	}
	commitCmd2 := newCommitCmd()
	commitCmd2.SetArgs([]string{"-m", "branch work"})
	if err := commitCmd2.Execute(); err != nil {
		t.Fatalf("commit on branch failed: %v", err)
	}

	checkoutMain := newCheckoutCmd()
	checkoutMain.SetArgs([]string{"main"})
	if err := checkoutMain.Execute(); err != nil {
		t.Fatalf("checkout main failed: %v", err)
	}

	mergeCmd := newMergeCmd()
	mergeCmd.SetArgs([]string{"b1"})
	if err := mergeCmd.Execute(); err != nil {
		t.Fatalf("merge failed: %v", err)
	}

	svc, err := findRepository()
	if err != nil {
		t.Fatalf("findRepository failed: %v", err)
	}

	mainTip, _, err := svc.refMgr.ReadBranch("main")
	if err != nil {
		t.Fatalf("ReadBranch main failed: %v", err)
	}
	b1Tip, _, err := svc.refMgr.ReadBranch("b1")
	if err != nil {
		t.Fatalf("ReadBranch b1 failed: %v", err)
	}
	if mainTip != b1Tip {
		t.Errorf("main %s not fast-forwarded to b1 %s", mainTip, b1Tip)
	}

	history, err := svc.graph.History(10)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 2 {
		t.Errorf("expected 2 commits after merge, got %d", len(history))
	}
}

// TestIntegrationCheckoutCreate exercises checkout -b.
func TestIntegrationCheckoutCreate(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	th := NewTestHelper(t)
	th.InitRepo()
	th.Chdir()

	th.WriteFile("a.txt", "content")
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

	checkoutCmd := newCheckoutCmd()
	checkoutCmd.SetArgs([]string{"-b", "feature"})
	if err := checkoutCmd.Execute(); err != nil {
		t.Fatalf("checkout -b failed: %v", err)
	}

	svc, err := findRepository()
	if err != nil {
		t.Fatalf("findRepository failed: %v", err)
	}
	if got := svc.refMgr.CurrentBranch(); got != "feature" {
		t.Errorf("expected feature, got %q", got)
	}
}
