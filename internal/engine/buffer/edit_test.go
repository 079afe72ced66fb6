package buffer

import "testing"

func TestEditKinds(t *testing.T) {
	ins := NewInsert(Pos(0, 1), "x")
	del := NewDelete(NewRange(Pos(0, 1), Pos(0, 3)))
	rep := NewEdit(NewRange(Pos(0, 1), Pos(0, 3)), "y")

	if !ins.IsInsert() || ins.IsDelete() || ins.IsReplace() {
		t.Error("expected pure insert")
	}
	if !del.IsDelete() || del.IsInsert() {
		t.Error("expected pure delete")
	}
	if !rep.IsReplace() {
		t.Error("expected replace")
	}
	if !NewInsert(Pos(0, 0), "").IsNoOp() {
		t.Error("empty insert should be a no-op")
	}
}

func TestEditInsertedEnd(t *testing.T) {
	tests := []struct {
		name string
		edit Edit
		want Position
	}{
		{"single line", NewInsert(Pos(2, 3), "abc"), Pos(2, 6)},
		{"graphemes", NewInsert(Pos(0, 0), "é"), Pos(0, 1)},
		{"multi line", NewInsert(Pos(1, 4), "ab\ncd\nxyz"), Pos(3, 3)},
		{"delete", NewDelete(NewRange(Pos(1, 1), Pos(3, 0))), Pos(1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.edit.InsertedEnd(); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestEditTranslate(t *testing.T) {
	tests := []struct {
		name string
		edit Edit
		in   Position
		want Position
	}{
		{"before insert", NewInsert(Pos(0, 5), "x"), Pos(0, 2), Pos(0, 2)},
		{"at insert", NewInsert(Pos(0, 5), "x"), Pos(0, 5), Pos(0, 6)},
		{"after insert same line", NewInsert(Pos(0, 2), "xy"), Pos(0, 5), Pos(0, 7)},
		{"later line untouched column", NewInsert(Pos(0, 2), "xy"), Pos(3, 1), Pos(3, 1)},
		{"newline insert shifts line", NewInsert(Pos(0, 2), "\n"), Pos(0, 5), Pos(1, 3)},
		{"newline insert later line", NewInsert(Pos(0, 2), "\n"), Pos(2, 4), Pos(3, 4)},
		{"inside deletion", NewDelete(NewRange(Pos(0, 2), Pos(0, 6))), Pos(0, 4), Pos(0, 2)},
		{"at deletion start", NewDelete(NewRange(Pos(0, 2), Pos(0, 6))), Pos(0, 2), Pos(0, 2)},
		{"after multi-line deletion", NewDelete(NewRange(Pos(1, 3), Pos(3, 2))), Pos(3, 7), Pos(1, 8)},
		{"line after multi-line deletion", NewDelete(NewRange(Pos(1, 3), Pos(3, 2))), Pos(5, 1), Pos(3, 1)},
		{"inside replace", NewEdit(NewRange(Pos(0, 0), Pos(0, 4)), "ab"), Pos(0, 3), Pos(0, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.edit.Translate(tt.in); got != tt.want {
				t.Errorf("Translate(%s) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestEditTranslateSticky(t *testing.T) {
	edit := NewInsert(Pos(1, 2), "abc")

	if got := edit.TranslateSticky(Pos(1, 2), true); got != Pos(1, 2) {
		t.Errorf("sticky position should stay, got %s", got)
	}
	if got := edit.TranslateSticky(Pos(1, 2), false); got != Pos(1, 5) {
		t.Errorf("non-sticky position should move, got %s", got)
	}
}

func TestEditTranslateMatchesBuffer(t *testing.T) {
	b := NewBufferFromString("alpha beta\ngamma delta")
	marker := Pos(1, 6) // 'd'

	edit := NewEdit(NewRange(Pos(0, 6), Pos(1, 2)), "XY\nZ")
	if _, err := b.ApplyEdit(edit); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	p := edit.Translate(marker)
	if c, _ := b.CharAt(p.Line, p.Column); c != "d" {
		t.Errorf("translated marker %s points at %q, want 'd'", p, c)
	}
}
