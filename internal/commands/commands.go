package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

const prefix = "cmd "

var (
	// ErrMissing is returned for a bare "cmd" line.
	ErrMissing = errors.New("missing subcommand")
	// ErrUnknown is wrapped when the subcommand is not registered.
	ErrUnknown = errors.New("unknown command")
)

// Command is a subcommand with its own flags and a Run function.
// Run is called after the FlagSet parsed and receives the remaining positional arguments.
type Command struct {
	Name    string
	Usage   string
	FlagSet *flag.FlagSet
	Run     func(args []string) error
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. name is the first token after "cmd" (e.g. "timescale").
// A nil fs gets an empty FlagSet. Flag errors are returned, never printed.
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run func(args []string) error) {
	if fs == nil {
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
	}
	fs.SetOutput(io.Discard)
	r.cmds[name] = &Command{Name: name, Usage: usage, FlagSet: fs, Run: run}
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Help returns one "name - usage" line per command.
func (r *Registry) Help() []string {
	names := r.Names()
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, fmt.Sprintf("%s - %s", n, r.cmds[n].Usage))
	}
	return out
}

// Parse interprets line as a console line. If line starts with "cmd " (case-sensitive),
// the rest is tokenized by spaces and returned with ok true. Otherwise nil, false.
func Parse(line string) (args []string, ok bool) {
	if line == strings.TrimSpace(prefix) {
		return nil, true
	}
	if !strings.HasPrefix(line, prefix) {
		return nil, false
	}
	rest := strings.TrimSpace(line[len(prefix):])
	if rest == "" {
		return nil, true
	}
	return strings.Fields(rest), true
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return ErrMissing
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	// Flags start from their defaults on every run.
	cmd.FlagSet.VisitAll(func(f *flag.Flag) {
		_ = f.Value.Set(f.DefValue)
	})
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return cmd.Run(cmd.FlagSet.Args())
}
