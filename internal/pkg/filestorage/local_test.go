package filestorage

import (
	"bytes"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func buildMultipartFiles(t *testing.T, field string, names ...string) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, name := range names {
		part, err := writer.CreateFormFile(field, name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write([]byte("%PDF-1.4 test content")); err != nil {
			t.Fatal(err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { form.RemoveAll() })

	return form.File[field]
}

func TestSaveUploadsAndResolve(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage() error = %v", err)
	}

	files := buildMultipartFiles(t, "submissions", "homework.pdf", "appendix.pdf")
	saved, err := storage.SaveUploads("submissions", "assignments", files)
	if err != nil {
		t.Fatalf("SaveUploads() error = %v", err)
	}
	if len(saved) != 2 {
		t.Fatalf("saved %d files, want 2", len(saved))
	}

	for _, name := range saved {
		if !strings.HasPrefix(name, "submissions-") {
			t.Errorf("stored name %q does not carry the field prefix", name)
		}
		if filepath.Ext(name) != ".pdf" {
			t.Errorf("stored name %q lost the extension", name)
		}

		path, err := storage.Resolve("assignments", name)
		if err != nil {
			t.Fatalf("Resolve(%q) error = %v", name, err)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Contains(content, []byte("%PDF-1.4")) {
			t.Errorf("stored file %q lost its content", name)
		}
	}

	if saved[0] == saved[1] {
		t.Error("two uploads got the same stored name")
	}
}

func TestResolveMissingFile(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	_, err = storage.Resolve("assignments", "no-such-file.pdf")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Resolve(missing) = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestResolveStripsPathTraversal(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalStorage(base)
	if err != nil {
		t.Fatal(err)
	}

	// Plant a file inside the category; a traversal attempt on its basename
	// must still land inside the storage root.
	dir := filepath.Join(base, "assignments")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "safe.pdf"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	path, err := storage.Resolve("assignments", "../../assignments/safe.pdf")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("resolved path %q escaped the category directory", path)
	}
}
