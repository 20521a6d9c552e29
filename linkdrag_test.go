package glide

import "testing"

func TestLinkDragSingleActive(t *testing.T) {
	d := NewLinkDrag()
	if _, ok := d.Current(); ok {
		t.Fatal("new drag context should be idle")
	}
	if !d.Begin("rose.out", Vec2{X: 10, Y: 20}) {
		t.Fatal("first Begin should succeed")
	}
	if d.Begin("tulip.out", Vec2{}) {
		t.Error("second Begin should fail while a drag is active")
	}
	cur, ok := d.Current()
	if !ok || cur.Source != "rose.out" || cur.Seq != 1 {
		t.Errorf("Current = %+v, %v", cur, ok)
	}
}

func TestLinkDragCursorInWorldSpace(t *testing.T) {
	d := NewLinkDrag()
	d.Begin("a", Vec2{})
	xf := Transform{X: 100, Y: 50, Scale: 2}
	d.MoveScreen(xf, 300, 250)

	cur, _ := d.Current()
	if cur.Cursor != (Vec2{X: 100, Y: 100}) {
		t.Errorf("Cursor = %+v, want (100, 100)", cur.Cursor)
	}
}

func TestLinkDragEnd(t *testing.T) {
	d := NewLinkDrag()
	d.MoveScreen(IdentityTransform, 5, 5)
	if _, ok := d.End(); ok {
		t.Error("End on idle context should report false")
	}

	d.Begin("a", Vec2{X: 1, Y: 1})
	d.MoveScreen(IdentityTransform, 7, 8)
	st, ok := d.End()
	if !ok || st.Cursor != (Vec2{X: 7, Y: 8}) {
		t.Errorf("End = %+v, %v", st, ok)
	}
	if _, ok := d.Current(); ok {
		t.Error("context should be idle after End")
	}
	d.Begin("b", Vec2{})
	if cur, _ := d.Current(); cur.Seq != 2 {
		t.Errorf("Seq = %d, want 2", cur.Seq)
	}
}
