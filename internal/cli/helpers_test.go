package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

const testCatalogCSV = `Gutter Description,Supplier,Supplier Code,Base,Face,Back,State,Sell Price (inc gst),Buy Price (inc gst),Product URL 1,Image Path
Quad 115 Hi-Front,Stratco,Q115,100,50,30,"QLD, NSW",$12.50,$8.25,https://example.com/q115,
Square 125,Lysaght,S125,101,50,30,QLD,,,,
Half Round 150,Stratco,HR150,150,75,0,VIC,$20.00,$14.00,,
`

// captureStdout runs fn and returns what it wrote to os.Stdout
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

// setupWorkspace creates a directory with a catalog and a config pointing at
// it, and makes it the working directory.
func setupWorkspace(t *testing.T, extraConfig string) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "gutters.csv"), []byte(testCatalogCSV), 0644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}
	cfg := "version = 1\n\ncatalog {\n  path = \"gutters.csv\"\n}\n" + extraConfig
	if err := os.WriteFile(filepath.Join(dir, ".guttergauge.hcl"), []byte(cfg), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Chdir(dir)

	configFlag = ""
	verboseFlag = false
	return dir
}

// stubExit records exit codes instead of terminating the test binary
func stubExit(t *testing.T) *int {
	t.Helper()

	code := -1
	exitFunc = func(c int) { code = c }
	t.Cleanup(func() { exitFunc = os.Exit })
	return &code
}
