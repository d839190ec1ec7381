package sdl

import (
	"context"
	"maps"
	"slices"
)

// Unbounded marks command without upper limit on argument count.
const Unbounded = -1

// Command describes single script command operating on state S.
type Command[S any] struct {
	Name    string
	MinArgs int
	MaxArgs int
	Run     func(ctx context.Context, state S, args *Args) error
}

func (c *Command[S]) accepts(n int) bool {
	if n < c.MinArgs {
		return false
	}
	return c.MaxArgs == Unbounded || n <= c.MaxArgs
}

// Registry holds set of known commands. It keeps no state of its own and may
// be shared by any number of interpreters.
type Registry[S any] struct {
	commands map[string]*Command[S]
}

// NewRegistry creates registry with given commands. Command names must be
// lower case and unique.
func NewRegistry[S any](cmds ...*Command[S]) *Registry[S] {
	r := &Registry[S]{commands: make(map[string]*Command[S], len(cmds))}
	for _, c := range cmds {
		if _, exists := r.commands[c.Name]; exists {
			// this should never happen
			panic("duplicate command " + c.Name)
		}
		r.commands[c.Name] = c
	}
	return r
}

// Names returns sorted list of registered commands.
func (r *Registry[S]) Names() []string {
	return slices.Sorted(maps.Keys(r.commands))
}

// Dispatch validates statement against registered command and runs it.
func (r *Registry[S]) Dispatch(ctx context.Context, state S, st Statement) error {
	cmd, ok := r.commands[st.Name]
	if !ok {
		return &UnknownCommandError{Command: st.Name, Line: st.Line}
	}
	if !cmd.accepts(len(st.Args)) {
		return &ArgumentCountError{Command: st.Name, Line: st.Line, Got: len(st.Args), Min: cmd.MinArgs, Max: cmd.MaxArgs}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return cmd.Run(ctx, state, &Args{Line: st.Line, Values: st.Args})
}

// Execute dispatches all statements in order stopping on first error.
func (r *Registry[S]) Execute(ctx context.Context, state S, sts []Statement) error {
	for _, st := range sts {
		if err := r.Dispatch(ctx, state, st); err != nil {
			return err
		}
	}
	return nil
}
