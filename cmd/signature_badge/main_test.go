package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	code := run([]string{"--size", "32", "--output-dir", dir, "--prefix", "sig"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr.String())
	}

	for _, name := range []string{"sig_gold.png", "sig_gray.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
	if !strings.Contains(stdout.String(), "Done! Generated 2 badge variants at 32x32") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunInvalidSize(t *testing.T) {
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-size", "0", "-output-dir", dir}, &stdout, &stderr); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("wrote %d files for an invalid size", len(entries))
	}
}

func TestRunSizeTooLarge(t *testing.T) {
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	if code := run([]string{"--size", "10000000", "--output-dir", dir}, &stdout, &stderr); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "invalid size") {
		t.Errorf("stderr = %q, want invalid size error", stderr.String())
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("wrote %d files for an oversized badge", len(entries))
	}
}

func TestRunVariant(t *testing.T) {
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	code := run([]string{"--size", "16", "--output-dir", dir, "--variant", "Gray"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr.String())
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 || entries[0].Name() != "signature_badge_gray.png" {
		t.Errorf("files = %v, want only signature_badge_gray.png", entries)
	}
	if !strings.Contains(stdout.String(), "Done! Generated 1 badge variants at 16x16") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunUnknownVariant(t *testing.T) {
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	if code := run([]string{"--output-dir", dir, "--variant", "silver"}, &stdout, &stderr); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "unknown variant") {
		t.Errorf("stderr = %q, want unknown variant error", stderr.String())
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("wrote %d files for an unknown variant", len(entries))
	}
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-size", "big"}, &stdout, &stderr); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}
