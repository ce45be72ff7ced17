package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func newTestRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "index.html"), []byte("<html>app</html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "app.js"), []byte("console.log(1)"), 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestSpaHandlerServesExistingFile(t *testing.T) {
	h := spaHandler(newTestRoot(t))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/app.js", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	if w.Body.String() != "console.log(1)" {
		t.Errorf("body = %q; want file contents", w.Body.String())
	}
}

func TestSpaHandlerFallsBackToIndex(t *testing.T) {
	h := spaHandler(newTestRoot(t))

	for _, path := range []string{"/", "/events/42", "/profile"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		if w.Code != http.StatusOK {
			t.Fatalf("%s: status = %d; want 200", path, w.Code)
		}
		if w.Body.String() != "<html>app</html>" {
			t.Errorf("%s: body = %q; want entry document", path, w.Body.String())
		}
	}
}
