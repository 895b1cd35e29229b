package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleCSV = `Gutter Description,Supplier,Supplier Code,Base,Face,Back,State,Sell Price (inc gst),Buy Price (inc gst),Product URL 1,Image Path
Quad 115,Stratco,Q115,115,75,65,"QLD, NSW",$12.50,8.00,https://example.com/q115.pdf,images/q115.png
Square Line 125,Lysaght,,125,80,70,VIC,,,,
Half Round 150,Stratco,HR150,150,75,n/a,QLD,20,,,
Colonial Quad,Metroll,CQ,110,,60,NSW,15,,,
Hi-Front Quad,Metroll,HFQ,112,90,70,QLD,"$1,250.00",,,
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}
