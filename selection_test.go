package quickmenu

import "testing"

func TestCurrentDefaultsToFirstSelectable(t *testing.T) {
	s := NewSelections(true)
	if got := s.Current("unseen"); got != 0 {
		t.Fatalf("expected 0 for unseen menu, got %d", got)
	}
}

func TestMoveWrapsAtBothEnds(t *testing.T) {
	s := NewSelections(true)
	if !s.Move("m", -1, 3) {
		t.Fatalf("expected movement")
	}
	if got := s.Current("m"); got != 2 {
		t.Fatalf("expected wrap to 2, got %d", got)
	}
	if !s.Move("m", 1, 3) {
		t.Fatalf("expected movement")
	}
	if got := s.Current("m"); got != 0 {
		t.Fatalf("expected wrap to 0, got %d", got)
	}
}

func TestMoveClampsWithoutWrap(t *testing.T) {
	s := NewSelections(false)
	if s.Move("m", -1, 3) {
		t.Fatalf("expected no movement below 0")
	}
	s.Set("m", 2, 3)
	if s.Move("m", 1, 3) {
		t.Fatalf("expected no movement past end")
	}
	if got := s.Current("m"); got != 2 {
		t.Fatalf("expected clamp at 2, got %d", got)
	}
}

func TestMoveIgnoresEmptyMenus(t *testing.T) {
	s := NewSelections(true)
	if s.Move("m", 1, 0) {
		t.Fatalf("expected no-op when nothing is selectable")
	}
	if got := s.Current("m"); got != 0 {
		t.Fatalf("expected untouched index, got %d", got)
	}
}

func TestMoveWrapRoundTrip(t *testing.T) {
	s := NewSelections(true)
	s.Set("m", 1, 4)
	for i := 0; i < 4; i++ {
		s.Move("m", 1, 4)
	}
	if got := s.Current("m"); got != 1 {
		t.Fatalf("expected round trip back to 1, got %d", got)
	}
}

func TestSetClampsIntoRange(t *testing.T) {
	s := NewSelections(true)
	s.Set("m", 10, 3)
	if got := s.Current("m"); got != 2 {
		t.Fatalf("expected clamp to 2, got %d", got)
	}
	s.Set("m", -4, 3)
	if got := s.Current("m"); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
	if s.Set("m", 5, 0) {
		t.Fatalf("expected no-op set on empty menu")
	}
}

func TestClampReconcilesShrunkenMenus(t *testing.T) {
	s := NewSelections(true)
	s.Set("m", 4, 5)
	s.Clamp("m", 2)
	if got := s.Current("m"); got != 1 {
		t.Fatalf("expected clamp to 1, got %d", got)
	}
	s.Clamp("m", 0)
	if got := s.Current("m"); got != 0 {
		t.Fatalf("expected clamp to 0 on empty menu, got %d", got)
	}
	// Untracked identifiers stay untracked.
	s.Clamp("other", 3)
	if got := s.Current("other"); got != 0 {
		t.Fatalf("expected untouched default, got %d", got)
	}
}

func TestIndicesRetainedPerIdentifier(t *testing.T) {
	s := NewSelections(true)
	s.Set("a", 2, 4)
	s.Set("b", 1, 3)
	if got := s.Current("a"); got != 2 {
		t.Fatalf("expected a=2, got %d", got)
	}
	if got := s.Current("b"); got != 1 {
		t.Fatalf("expected b=1, got %d", got)
	}
	s.Reset()
	if got := s.Current("a"); got != 0 {
		t.Fatalf("expected reset to drop indices, got %d", got)
	}
}
