package dispatcher

import (
	"slices"

	"github.com/dshills/cursorcore/internal/engine/buffer"
	"github.com/dshills/cursorcore/internal/view"
)

// Document is the text store a dispatcher works on. *buffer.Buffer
// implements it.
type Document interface {
	buffer.Reader
	view.Finder
	view.Editor
}

// Context is what a handler sees while executing one action.
type Context struct {
	View   *view.State
	Doc    Document
	Action Action
	Config Config
}

// Mode returns the selection mode implied by the modifiers.
func (c *Context) Mode() view.SelectionMode {
	if c.Action.Modifiers.Shift {
		return view.Extend
	}
	return view.Move
}

// Position returns the action's position argument.
func (c *Context) Position() (buffer.Position, error) {
	if c.Action.Args.Position == nil {
		return buffer.Position{}, missing(c.Action.Command, "position")
	}
	return *c.Action.Args.Position, nil
}

// HandlerFunc executes a command.
type HandlerFunc func(ctx *Context) Result

// Registry maps command names to handlers.
type Registry struct {
	handlers map[Command]HandlerFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[Command]HandlerFunc)}
}

// Register sets the handler for cmd, replacing any previous one.
func (r *Registry) Register(cmd Command, h HandlerFunc) {
	r.handlers[cmd] = h
}

// Unregister removes the handler for cmd.
func (r *Registry) Unregister(cmd Command) {
	delete(r.handlers, cmd)
}

// Get returns the handler for cmd, or nil.
func (r *Registry) Get(cmd Command) HandlerFunc {
	return r.handlers[cmd]
}

// Has returns true if a handler is registered for cmd.
func (r *Registry) Has(cmd Command) bool {
	_, ok := r.handlers[cmd]
	return ok
}

// List returns all registered commands in name order.
func (r *Registry) List() []Command {
	cmds := make([]Command, 0, len(r.handlers))
	for cmd := range r.handlers {
		cmds = append(cmds, cmd)
	}
	slices.Sort(cmds)
	return cmds
}

// Count returns the number of registered commands.
func (r *Registry) Count() int {
	return len(r.handlers)
}
