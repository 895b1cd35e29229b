package catalog

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kcsbuilding/guttergauge/internal/pathfilter"
)

func TestLoadFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "gutters.csv", sampleCSV)

	c, err := Load(context.Background(), Source{Path: path}, nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if c.Len() != 3 || c.Dropped != 2 {
		t.Errorf("Len = %d, Dropped = %d, want 3, 2", c.Len(), c.Dropped)
	}
	if len(c.Sources) != 1 || c.Sources[0] != path {
		t.Errorf("Sources = %v", c.Sources)
	}
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b-stratco.csv", "Gutter Description,Base,Face,Back,State\nB1,100,50,30,QLD\n")
	writeFile(t, dir, "a-lysaght.csv", "Gutter Description,Base,Face,Back,State\nA1,100,50,30,QLD\nA2,101,50,30,QLD\n")
	writeFile(t, dir, "archive/old.csv", "Gutter Description,Base,Face,Back,State\nOld,100,50,30,QLD\n")
	createSQLiteCatalog(t, filepath.Join(dir, "c-catalog.db"))

	c, err := Load(context.Background(), Source{Path: dir, Filter: pathfilter.DefaultFilter()}, nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	var got []string
	for _, p := range c.Profiles {
		got = append(got, p.Description)
	}
	want := "A1,A2,B1,Quad 115,Square 125"
	if strings.Join(got, ",") != want {
		t.Errorf("profiles = %v, want %s", got, want)
	}
	if len(c.Sources) != 3 {
		t.Errorf("expected 3 sources, got %v", c.Sources)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(context.Background(), Source{Path: filepath.Join(t.TempDir(), "missing.csv")}, nil); err == nil {
		t.Error("expected error for missing catalog")
	}

	empty := t.TempDir()
	writeFile(t, empty, "notes.txt", "nothing here")
	if _, err := Load(context.Background(), Source{Path: empty}, nil); err == nil {
		t.Error("expected error for directory without catalogs")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	path := writeFile(t, t.TempDir(), "gutters.csv", sampleCSV)
	if _, err := Load(ctx, Source{Path: path}, nil); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestStats(t *testing.T) {
	path := writeFile(t, t.TempDir(), "gutters.csv", sampleCSV+"Quad 90,stratco ,,90,60,50,QLD,,,,\n")
	c, err := Load(context.Background(), Source{Path: path}, nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	s := c.Stats()
	if s.Profiles != 4 {
		t.Errorf("Profiles = %d, want 4", s.Profiles)
	}
	if s.Suppliers != 3 {
		t.Errorf("Suppliers = %d, want 3", s.Suppliers)
	}
	if s.WithPricing != 2 {
		t.Errorf("WithPricing = %d, want 2", s.WithPricing)
	}
	if s.Dropped != 2 || s.Sources != 1 {
		t.Errorf("Dropped = %d, Sources = %d", s.Dropped, s.Sources)
	}
}
