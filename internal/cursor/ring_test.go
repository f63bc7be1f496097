package cursor

import "testing"

func TestRingPreviousWraps(t *testing.T) {
	r := NewRing(4)
	want := []int{3, 2, 1, 0}
	for i, w := range want {
		r.Previous()
		if r.Index() != w {
			t.Errorf("Previous #%d: index = %d, want %d", i+1, r.Index(), w)
		}
	}
}

func TestRingNextWraps(t *testing.T) {
	r := NewRing(4)
	want := []int{1, 2, 3, 0}
	for i, w := range want {
		r.Next()
		if r.Index() != w {
			t.Errorf("Next #%d: index = %d, want %d", i+1, r.Index(), w)
		}
	}
}

func TestRingSet(t *testing.T) {
	r := NewRing(4)
	if !r.Set(2) || r.Index() != 2 {
		t.Errorf("Set(2): index = %d", r.Index())
	}
	if r.Set(2) {
		t.Error("Set to current index reported a change")
	}
	if r.Set(4) || r.Set(-1) {
		t.Error("out-of-range Set reported a change")
	}
	if r.Index() != 2 {
		t.Errorf("index = %d after invalid Set", r.Index())
	}
}

func TestRingMinimumSize(t *testing.T) {
	r := NewRing(0)
	if r.Size() != 1 {
		t.Errorf("Size = %d, want 1", r.Size())
	}
	r.Next()
	r.Previous()
	if r.Index() != 0 {
		t.Errorf("Index = %d", r.Index())
	}
}
