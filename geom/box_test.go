package geom_test

import (
	"testing"

	"github.com/arnegrau/hicuts/geom"
)

func mustBox(t *testing.T, ivs [4]geom.Interval) geom.Box {
	t.Helper()
	b, err := geom.NewBox(ivs[:])
	if err != nil {
		t.Fatalf("NewBox: %v", err)
	}
	return b
}

func fullDims(d geom.Dimension, low, high geom.Value) [4]geom.Interval {
	var ivs [4]geom.Interval
	for i := range ivs {
		ivs[i] = geom.Interval{Low: 0, High: 0}
	}
	ivs[d] = geom.Interval{Low: low, High: high}
	return ivs
}

// TestCut_ScenarioOne mirrors spec scenario 1: Box([(0,4)]).cut(0, 2) =>
// [(0,1)], [(2,3)], [(4,4)].
func TestCut_ScenarioOne(t *testing.T) {
	b := mustBox(t, fullDims(geom.SrcPort, 0, 4))
	pieces, err := b.Cut(geom.SrcPort, 2)
	if err != nil {
		t.Fatalf("Cut: %v", err)
	}
	if len(pieces) != 3 {
		t.Fatalf("len(pieces) = %d; want 3", len(pieces))
	}
	want := []geom.Interval{{Low: 0, High: 1}, {Low: 2, High: 3}, {Low: 4, High: 4}}
	for i, p := range pieces {
		got := p.Interval(geom.SrcPort)
		if !got.Equal(want[i]) {
			t.Errorf("piece %d = %+v; want %+v", i, got, want[i])
		}
	}
}

func TestCut_PreservesOtherDimensions(t *testing.T) {
	ivs := fullDims(geom.SrcPort, 0, 9)
	ivs[geom.DstPort] = geom.Interval{Low: 80, High: 80}
	b := mustBox(t, ivs)
	pieces, err := b.Cut(geom.SrcPort, 1)
	if err != nil {
		t.Fatalf("Cut: %v", err)
	}
	for _, p := range pieces {
		if got := p.Interval(geom.DstPort); !got.Equal(geom.Interval{Low: 80, High: 80}) {
			t.Errorf("DstPort mutated: %+v", got)
		}
	}
}

func TestCut_UnionAndDisjoint(t *testing.T) {
	b := mustBox(t, fullDims(geom.SrcPort, 10, 100))
	pieces, err := b.Cut(geom.SrcPort, 5)
	if err != nil {
		t.Fatalf("Cut: %v", err)
	}
	if len(pieces) != 6 {
		t.Fatalf("len(pieces) = %d; want 6", len(pieces))
	}
	var lowest geom.Value = 10
	var highest geom.Value
	for i, p := range pieces {
		iv := p.Interval(geom.SrcPort)
		if iv.Low > iv.High {
			t.Fatalf("piece %d inverted: %+v", i, iv)
		}
		if i > 0 {
			prev := pieces[i-1].Interval(geom.SrcPort)
			if iv.Low != prev.High+1 {
				t.Errorf("piece %d does not start right after piece %d: %+v vs %+v", i, i-1, iv, prev)
			}
		}
		if iv.Low < lowest {
			lowest = iv.Low
		}
		highest = iv.High
	}
	if lowest != 10 {
		t.Errorf("union low = %d; want 10", lowest)
	}
	if highest != 100 {
		t.Errorf("union high = %d; want 100", highest)
	}
}

func TestUnequalCut_TrailingPieceOmittedAtBoundary(t *testing.T) {
	b := mustBox(t, fullDims(geom.SrcPort, 0, 10))
	pieces, err := b.UnequalCut(geom.SrcPort, []geom.Value{3, 10})
	if err != nil {
		t.Fatalf("UnequalCut: %v", err)
	}
	if len(pieces) != 2 {
		t.Fatalf("len(pieces) = %d; want 2", len(pieces))
	}
	if got := pieces[1].Interval(geom.SrcPort); !got.Equal(geom.Interval{Low: 4, High: 10}) {
		t.Errorf("second piece = %+v; want {4 10}", got)
	}
}

func TestUnequalCut_TrailingPieceKeptWhenShortOfBoundary(t *testing.T) {
	b := mustBox(t, fullDims(geom.SrcPort, 0, 10))
	pieces, err := b.UnequalCut(geom.SrcPort, []geom.Value{3, 6})
	if err != nil {
		t.Fatalf("UnequalCut: %v", err)
	}
	if len(pieces) != 3 {
		t.Fatalf("len(pieces) = %d; want 3", len(pieces))
	}
	if got := pieces[2].Interval(geom.SrcPort); !got.Equal(geom.Interval{Low: 7, High: 10}) {
		t.Errorf("third piece = %+v; want {7 10}", got)
	}
}

func TestUnequalCut_FewerThanTwoCutPointsIsNoop(t *testing.T) {
	b := mustBox(t, fullDims(geom.SrcPort, 0, 10))
	pieces, err := b.UnequalCut(geom.SrcPort, []geom.Value{3})
	if err != nil {
		t.Fatalf("UnequalCut: unexpected error %v", err)
	}
	if pieces != nil {
		t.Errorf("pieces = %v; want nil", pieces)
	}
}

func TestCollide_Symmetric(t *testing.T) {
	a := mustBox(t, fullDims(geom.SrcPort, 0, 10))
	b := mustBox(t, fullDims(geom.SrcPort, 5, 20))
	c := mustBox(t, fullDims(geom.SrcPort, 11, 20))

	if !a.Collide(b) || !b.Collide(a) {
		t.Errorf("expected a and b to collide symmetrically")
	}
	if a.Collide(c) || c.Collide(a) {
		t.Errorf("expected a and c to be disjoint")
	}
}

func TestNewBox_RejectsWrongDimensionCount(t *testing.T) {
	_, err := geom.NewBox([]geom.Interval{{Low: 0, High: 1}})
	if err == nil {
		t.Fatal("expected error for wrong dimension count")
	}
}

func TestNewInterval_RejectsInverted(t *testing.T) {
	if _, err := geom.NewInterval(5, 4); err == nil {
		t.Fatal("expected ErrBadInterval")
	}
}
