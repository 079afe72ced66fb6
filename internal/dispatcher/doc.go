// Package dispatcher is the host command interface of cursorcore.
//
// A host translates raw input into an Action (a Command plus Modifiers and
// optional Args) and hands it to Dispatcher.Execute. The dispatcher looks the
// command up in its Registry, runs the handler against the view state and
// document, and reports the outcome as a Result:
//
//	d := dispatcher.New(v, buf, dispatcher.DefaultConfig())
//	res := d.Execute(dispatcher.Action{
//		Command:   dispatcher.CmdCursorRight,
//		Modifiers: dispatcher.Modifiers{Shift: true},
//	})
//
// Shift turns every cursor motion into a selection extension. The dispatcher
// is not safe for concurrent use; hosts call it from their event loop.
package dispatcher
