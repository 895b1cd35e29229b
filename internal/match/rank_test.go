package match

import (
	"fmt"
	"testing"

	"github.com/kcsbuilding/guttergauge/internal/types"
)

func TestRankOrdersByErrorScore(t *testing.T) {
	m := types.NewMeasurement(100, 50, 30)
	catalog := []*types.Profile{
		profile("far", "QLD", 130, 50, 30),
		profile("exact", "QLD", 100, 50, 30),
		profile("close", "QLD", 101, 50, 30),
		profile("closer", "QLD", 100, 50, 31),
	}

	got := Rank(catalog, m, 5)
	want := []string{"exact", "closer", "close", "far"}
	if !equalStrings(candidateDescriptions(got), want) {
		t.Fatalf("Rank order = %v, want %v", candidateDescriptions(got), want)
	}

	for i, c := range got {
		if c.Rank != i+1 {
			t.Errorf("candidate %d has rank %d", i, c.Rank)
		}
		if i > 0 && got[i-1].ErrorScore > c.ErrorScore {
			t.Errorf("error scores not ascending at %d", i)
		}
	}
}

func TestRankTiesKeepCatalogOrder(t *testing.T) {
	m := types.NewMeasurement(100, 50, 30)
	// Each of these is 2.0 away in error score.
	catalog := []*types.Profile{
		profile("face under", "QLD", 100, 49, 30),
		profile("back over twice", "QLD", 100, 50, 32),
		profile("face over", "QLD", 100, 51, 30),
		profile("back under twice", "QLD", 100, 50, 28),
	}

	for run := 0; run < 10; run++ {
		got := candidateDescriptions(Rank(catalog, m, 5))
		want := []string{"face under", "back over twice", "face over", "back under twice"}
		if !equalStrings(got, want) {
			t.Fatalf("run %d: tie order = %v, want %v", run, got, want)
		}
	}
}

func TestRankTruncation(t *testing.T) {
	m := types.NewMeasurement(100, 50, 30)

	for _, n := range []int{0, 1, 4, 5, 6, 12} {
		t.Run(fmt.Sprintf("%d candidates", n), func(t *testing.T) {
			catalog := make([]*types.Profile, n)
			for i := range catalog {
				catalog[i] = profile(fmt.Sprintf("p%d", i), "QLD", 100+float64(i), 50, 30)
			}
			got := Rank(catalog, m, DefaultTopN)
			want := min(n, DefaultTopN)
			if len(got) != want {
				t.Errorf("len(Rank) = %d, want %d", len(got), want)
			}
		})
	}
}

func TestRankDefaultTopN(t *testing.T) {
	m := types.NewMeasurement(100, 50, 30)
	catalog := make([]*types.Profile, 8)
	for i := range catalog {
		catalog[i] = profile(fmt.Sprintf("p%d", i), "QLD", 100, 50, 30)
	}
	if got := Rank(catalog, m, 0); len(got) != DefaultTopN {
		t.Errorf("len(Rank) with topN=0 = %d, want %d", len(got), DefaultTopN)
	}
	if got := Rank(catalog, m, 3); len(got) != 3 {
		t.Errorf("len(Rank) with topN=3 = %d, want 3", len(got))
	}
}

func TestRankEmpty(t *testing.T) {
	got := Rank(nil, types.NewMeasurement(100, 50, 30), 5)
	if len(got) != 0 {
		t.Errorf("expected empty ranking, got %d", len(got))
	}
}
