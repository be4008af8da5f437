package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultFooter(t *testing.T) {
	footer := string(DefaultFooter())
	if !strings.Contains(footer, `class="friends-title"`) {
		t.Errorf("default footer missing title\nGot: %s", footer)
	}
}

func TestFooter_EmptyPathUsesDefault(t *testing.T) {
	got, err := Footer("")
	if err != nil {
		t.Fatalf("Footer() error = %v", err)
	}
	if string(got) != string(DefaultFooter()) {
		t.Error("Footer(\"\") should return the embedded footer")
	}
}

func TestFooter_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "footer.html")
	if err := os.WriteFile(path, []byte("<p>custom</p>"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := Footer(path)
	if err != nil {
		t.Fatalf("Footer() error = %v", err)
	}
	if string(got) != "<p>custom</p>" {
		t.Errorf("Footer() = %q, want custom footer", got)
	}
}

func TestFooter_MissingFile(t *testing.T) {
	_, err := Footer(filepath.Join(t.TempDir(), "nope.html"))
	if err == nil || !strings.Contains(err.Error(), "failed to read footer") {
		t.Errorf("Footer() error = %v, want read failure", err)
	}
}
