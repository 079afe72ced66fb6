package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal draws on a tcell screen. Screen calls are serialized because
// PostEvent may run on another goroutine than the event loop.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
}

// NewTerminal creates a terminal backend on the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing screen, such as a
// tcell.SimulationScreen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) do(f func(tcell.Screen)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	f(t.screen)
}

func (t *Terminal) Init() error {
	var err error
	t.do(func(s tcell.Screen) {
		if err = s.Init(); err != nil {
			return
		}
		s.EnableMouse()
		s.EnablePaste()
		s.SetStyle(tcell.StyleDefault)
	})
	return err
}

func (t *Terminal) Shutdown() { t.do(tcell.Screen.Fini) }
func (t *Terminal) Clear()    { t.do(tcell.Screen.Clear) }
func (t *Terminal) Show()     { t.do(tcell.Screen.Show) }

func (t *Terminal) HideCursor() { t.do(tcell.Screen.HideCursor) }

func (t *Terminal) Size() (w, h int) {
	t.do(func(s tcell.Screen) { w, h = s.Size() })
	return w, h
}

func (t *Terminal) ShowCursor(x, y int) {
	t.do(func(s tcell.Screen) { s.ShowCursor(x, y) })
}

// SetCell skips continuation cells; tcell lays out wide runes itself.
func (t *Terminal) SetCell(x, y int, cell Cell) {
	if cell.IsContinuation() {
		return
	}
	main, combining := ' ', []rune(nil)
	if runes := []rune(cell.Text); len(runes) > 0 {
		main, combining = runes[0], runes[1:]
	}
	style := styles[cell.Style]
	t.do(func(s tcell.Screen) { s.SetContent(x, y, main, combining, style) })
}

// PollEvent blocks on the screen's queue, so it does not take the lock.
func (t *Terminal) PollEvent() Event {
	return convertEvent(t.screen.PollEvent())
}

// PostEvent forwards interrupts only; other events are dropped.
func (t *Terminal) PostEvent(event Event) {
	if event.Type != EventInterrupt {
		return
	}
	// A full queue loses the wakeup; the next input event redraws anyway.
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(event.Data))
}

// styles maps each logical style to its terminal attributes. Missing
// entries draw with the zero tcell.Style, which is the default style.
var styles = map[Style]tcell.Style{
	StyleSelection: tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite),
	StyleCursor:    tcell.StyleDefault.Reverse(true),
	StyleRectangle: tcell.StyleDefault.Background(tcell.ColorTeal).Foreground(tcell.ColorBlack),
	StyleStatus:    tcell.StyleDefault.Reverse(true),
	StyleError:     tcell.StyleDefault.Reverse(true).Foreground(tcell.ColorMaroon),
}

// keys lists the tcell keys the editor reacts to. Anything else arrives
// as KeyNone.
var keys = map[tcell.Key]Key{
	tcell.KeyRune:       KeyRune,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyCtrlA:      KeyCtrlA,
	tcell.KeyCtrlD:      KeyCtrlD,
	tcell.KeyCtrlG:      KeyCtrlG,
	tcell.KeyCtrlK:      KeyCtrlK,
	tcell.KeyCtrlL:      KeyCtrlL,
	tcell.KeyCtrlQ:      KeyCtrlQ,
	tcell.KeyCtrlR:      KeyCtrlR,
	tcell.KeyCtrlS:      KeyCtrlS,
	tcell.KeyCtrlU:      KeyCtrlU,
	tcell.KeyCtrlW:      KeyCtrlW,
}

var mods = []struct {
	from tcell.ModMask
	to   ModMask
}{
	{tcell.ModShift, ModShift},
	{tcell.ModCtrl, ModCtrl},
	{tcell.ModAlt, ModAlt},
}

// buttons is checked in order; the first pressed button wins.
var buttons = []struct {
	from tcell.ButtonMask
	to   MouseButton
}{
	{tcell.Button1, MouseLeft},
	{tcell.Button2, MouseMiddle},
	{tcell.Button3, MouseRight},
	{tcell.WheelUp, MouseWheelUp},
	{tcell.WheelDown, MouseWheelDown},
	{tcell.WheelLeft, MouseWheelLeft},
	{tcell.WheelRight, MouseWheelRight},
}

func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{Type: EventKey, Key: keys[e.Key()], Rune: e.Rune(), Mod: convertMod(e.Modifiers())}
	case *tcell.EventMouse:
		x, y := e.Position()
		return Event{
			Type:        EventMouse,
			MouseX:      x,
			MouseY:      y,
			MouseButton: convertButton(e.Buttons()),
			Mod:         convertMod(e.Modifiers()),
		}
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	case *tcell.EventInterrupt:
		return Interrupt(e.Data())
	}
	return Event{Type: EventNone}
}

func convertMod(m tcell.ModMask) ModMask {
	var out ModMask
	for _, mod := range mods {
		if m&mod.from != 0 {
			out |= mod.to
		}
	}
	return out
}

func convertButton(b tcell.ButtonMask) MouseButton {
	for _, btn := range buttons {
		if b&btn.from != 0 {
			return btn.to
		}
	}
	return MouseNone
}
