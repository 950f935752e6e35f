package sflk

import "testing"

func Test_Loc_Merge_Union(t *testing.T) {
	scu := SourceUnitFromString("pr 42\nnl\n", "test")
	a := Loc{Scu: scu, LineStart: 1, ByteStart: 0, ByteLength: 2}  // "pr"
	b := Loc{Scu: scu, LineStart: 2, ByteStart: 6, ByteLength: 2}  // "nl"

	merged := a.Merge(b)
	if merged.ByteStart != 0 {
		t.Fatalf("merged start: got %d, want 0", merged.ByteStart)
	}
	if merged.ByteLength != 8 {
		t.Fatalf("merged length: got %d, want 8", merged.ByteLength)
	}
	if merged.LineStart != 1 {
		t.Fatalf("merged line: got %d, want 1", merged.LineStart)
	}
}

func Test_Loc_Merge_Commutative(t *testing.T) {
	scu := SourceUnitFromString("abcdefgh\n", "test")
	a := Loc{Scu: scu, LineStart: 1, ByteStart: 1, ByteLength: 3}
	b := Loc{Scu: scu, LineStart: 1, ByteStart: 5, ByteLength: 2}

	ab := a.Merge(b)
	ba := b.Merge(a)
	if ab != ba {
		t.Fatalf("merge not commutative: %+v vs %+v", ab, ba)
	}
	// Covers both spans.
	if ab.ByteStart > a.ByteStart || ab.ByteStart+ab.ByteLength < b.ByteStart+b.ByteLength {
		t.Fatalf("merge does not cover both spans: %+v", ab)
	}
}

func Test_Loc_Merge_Associative_Coverage(t *testing.T) {
	scu := SourceUnitFromString("abcdefghij\n", "test")
	a := Loc{Scu: scu, LineStart: 1, ByteStart: 0, ByteLength: 1}
	b := Loc{Scu: scu, LineStart: 1, ByteStart: 4, ByteLength: 1}
	c := Loc{Scu: scu, LineStart: 1, ByteStart: 8, ByteLength: 2}

	left := a.Merge(b).Merge(c)
	right := a.Merge(b.Merge(c))
	if left != right {
		t.Fatalf("merge not associative: %+v vs %+v", left, right)
	}
}

func Test_Loc_Text(t *testing.T) {
	scu := SourceUnitFromString("pr 42\n", "test")
	loc := Loc{Scu: scu, LineStart: 1, ByteStart: 3, ByteLength: 2}
	if got := loc.Text(); got != "42" {
		t.Fatalf("text: got %q, want %q", got, "42")
	}
}
