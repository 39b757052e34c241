package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestRepoRootFindsModule(t *testing.T) {
	root := repoRoot(t)
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		t.Fatalf("expected go.mod in %s: %v", root, err)
	}
}

func TestWriteOptions(t *testing.T) {
	path := WriteOptions(t, "options.txt", "a\nb\n")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "a\nb\n" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestPlainColorsRestoresProfile(t *testing.T) {
	before := lipgloss.ColorProfile()
	t.Run("inner", func(t *testing.T) {
		PlainColors(t)
		if lipgloss.ColorProfile() != termenv.Ascii {
			t.Fatalf("expected ascii profile")
		}
		if got := lipgloss.NewStyle().Bold(true).Render("x"); got != "x" {
			t.Fatalf("expected unstyled output, got %q", got)
		}
	})
	if lipgloss.ColorProfile() != before {
		t.Fatalf("expected profile restored")
	}
}
