package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestMemoryInit(t *testing.T) {
	b := NewMemory(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
	if got := b.Cell(0, 0); got != EmptyCell() {
		t.Errorf("fresh cell = %+v, want empty", got)
	}
}

func TestMemorySetCell(t *testing.T) {
	b := NewMemory(10, 2)
	b.Init()

	cell := Cell{Text: "x", Width: 1, Style: StyleSelection}
	b.SetCell(3, 1, cell)
	if got := b.Cell(3, 1); got != cell {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds should be ignored/return empty
	b.SetCell(-1, 0, cell)
	b.SetCell(10, 0, cell)
	if got := b.Cell(-1, 0); got != EmptyCell() {
		t.Error("out of bounds should return empty cell")
	}
}

func TestMemoryRowSkipsContinuation(t *testing.T) {
	b := NewMemory(4, 1)
	b.Init()

	b.SetCell(0, 0, Cell{Text: "世", Width: 2})
	b.SetCell(1, 0, ContinuationCell(StyleDefault))
	b.SetCell(2, 0, Cell{Text: "a", Width: 1})

	if got := b.Row(0); got != "世a " {
		t.Errorf("Row = %q, want %q", got, "世a ")
	}
	if got := b.Row(5); got != "" {
		t.Errorf("Row out of range = %q", got)
	}

	b.Clear()
	if got := b.Row(0); got != "    " {
		t.Errorf("Row after Clear = %q", got)
	}
}

func TestMemoryCursor(t *testing.T) {
	b := NewMemory(10, 10)
	b.Init()

	b.ShowCursor(4, 2)
	x, y, visible := b.CursorPosition()
	if x != 4 || y != 2 || !visible {
		t.Errorf("cursor = (%d, %d, %v)", x, y, visible)
	}

	b.HideCursor()
	if _, _, visible := b.CursorPosition(); visible {
		t.Error("cursor should be hidden")
	}
}

func TestMemoryEvents(t *testing.T) {
	b := NewMemory(10, 10)
	b.Init()

	b.PostEvent(Interrupt("reload"))
	b.Resize(20, 5)

	ev := b.PollEvent()
	if ev.Type != EventInterrupt || ev.Data != "reload" {
		t.Errorf("first event = %+v", ev)
	}
	ev = b.PollEvent()
	if ev.Type != EventResize || ev.Width != 20 || ev.Height != 5 {
		t.Errorf("second event = %+v", ev)
	}
	if w, h := b.Size(); w != 20 || h != 5 {
		t.Errorf("size after resize = (%d, %d)", w, h)
	}
}

func TestCellIsContinuation(t *testing.T) {
	if !ContinuationCell(StyleCursor).IsContinuation() {
		t.Error("continuation cell not detected")
	}
	if EmptyCell().IsContinuation() {
		t.Error("empty cell reported as continuation")
	}
}

func TestStyleString(t *testing.T) {
	tests := []struct {
		style Style
		want  string
	}{
		{StyleDefault, "default"},
		{StyleSelection, "selection"},
		{StyleCursor, "cursor"},
		{StyleRectangle, "rectangle"},
		{StyleStatus, "status"},
		{StyleError, "error"},
		{Style(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.style.String(); got != tt.want {
			t.Errorf("Style(%d).String() = %q, want %q", tt.style, got, tt.want)
		}
	}
}

func TestConvertKeyEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		key  Key
		r    rune
		mod  ModMask
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), KeyRune, 'a', ModNone},
		{"ctrl key", tcell.NewEventKey(tcell.KeyCtrlD, 'd', tcell.ModCtrl), KeyCtrlD, 'd', ModCtrl},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), KeyBackspace, 0, ModNone},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone), KeyBackspace, 0, ModNone},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), KeyEnter, 0, ModNone},
		{"shift left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), KeyLeft, 0, ModShift},
		{"ctrl shift right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModCtrl|tcell.ModShift), KeyRight, 0, ModCtrl | ModShift},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), KeyPageDown, 0, ModNone},
		{"unmapped", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), KeyNone, 0, ModNone},
		{"unbound ctrl", tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), KeyNone, 0, ModCtrl},
		{"meta ignored", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModMeta), KeyUp, 0, ModNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := convertEvent(tt.ev)
			if ev.Type != EventKey {
				t.Fatalf("type = %v, want EventKey", ev.Type)
			}
			if ev.Key != tt.key {
				t.Errorf("key = %v, want %v", ev.Key, tt.key)
			}
			if tt.r != 0 && ev.Rune != tt.r {
				t.Errorf("rune = %q, want %q", ev.Rune, tt.r)
			}
			if ev.Mod != tt.mod {
				t.Errorf("mod = %v, want %v", ev.Mod, tt.mod)
			}
		})
	}
}

func TestConvertMouseAndResize(t *testing.T) {
	ev := convertEvent(tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModAlt))
	if ev.Type != EventMouse || ev.MouseX != 3 || ev.MouseY != 4 {
		t.Errorf("mouse event = %+v", ev)
	}
	if ev.MouseButton != MouseLeft || !ev.Mod.Has(ModAlt) {
		t.Errorf("mouse button/mod = %v/%v", ev.MouseButton, ev.Mod)
	}

	if ev := convertEvent(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone)); ev.MouseButton != MouseWheelDown {
		t.Errorf("wheel = %v", ev.MouseButton)
	}
	if ev := convertEvent(tcell.NewEventMouse(0, 0, tcell.Button1|tcell.WheelUp, tcell.ModNone)); ev.MouseButton != MouseLeft {
		t.Errorf("press with wheel = %v", ev.MouseButton)
	}
	if ev := convertEvent(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone)); ev.MouseButton != MouseNone {
		t.Errorf("release = %v", ev.MouseButton)
	}

	ev = convertEvent(tcell.NewEventResize(100, 30))
	if ev.Type != EventResize || ev.Width != 100 || ev.Height != 30 {
		t.Errorf("resize event = %+v", ev)
	}

	ev = convertEvent(tcell.NewEventInterrupt(42))
	if ev.Type != EventInterrupt || ev.Data != 42 {
		t.Errorf("interrupt event = %+v", ev)
	}
}

func TestTerminalSimulation(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer term.Shutdown()

	screen.SetSize(10, 3)
	if w, h := term.Size(); w != 10 || h != 3 {
		t.Fatalf("size = (%d, %d)", w, h)
	}

	term.Clear()
	term.SetCell(0, 0, Cell{Text: "h", Width: 1})
	term.SetCell(1, 0, Cell{Text: "i", Width: 1, Style: StyleCursor})
	term.SetCell(2, 0, ContinuationCell(StyleDefault))
	term.Show()

	cells, width, _ := screen.GetContents()
	if got := cells[0].Runes; len(got) == 0 || got[0] != 'h' {
		t.Errorf("cell 0 = %q", got)
	}
	if got := cells[1].Runes; len(got) == 0 || got[0] != 'i' {
		t.Errorf("cell 1 = %q", got)
	}
	if _, _, attrs := cells[1].Style.Decompose(); attrs&tcell.AttrReverse == 0 {
		t.Error("cursor cell should be reversed")
	}
	if cells[0].Style != tcell.StyleDefault {
		t.Errorf("plain cell style = %v", cells[0].Style)
	}
	if width != 10 {
		t.Errorf("width = %d", width)
	}

	term.PostEvent(Interrupt("done"))
	for i := 0; i < 5; i++ {
		ev := term.PollEvent()
		if ev.Type == EventInterrupt {
			if ev.Data != "done" {
				t.Errorf("interrupt data = %v", ev.Data)
			}
			return
		}
	}
	t.Error("interrupt not delivered")
}
