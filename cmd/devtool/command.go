package main

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// Command is implemented by every devtool subcommand.
type Command interface {
	Name() string
	Description() string
	Run(args []string) error
}

// Registry maps command names to commands.
type Registry struct {
	commands map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns the commands sorted by name.
func (r *Registry) List() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name() < cmds[j].Name()
	})
	return cmds
}

func (r *Registry) PrintHelp() {
	r.writeHelp(os.Stdout)
}

func (r *Registry) writeHelp(w io.Writer) {
	fmt.Fprintln(w, "Usage: devtool <command> [args...]")
	fmt.Fprintln(w, "\nAvailable Commands:")

	cmds := r.List()
	width := 0
	for _, cmd := range cmds {
		width = max(width, len(cmd.Name()))
	}
	for _, cmd := range cmds {
		fmt.Fprintf(w, "  %-*s  %s\n", width, cmd.Name(), cmd.Description())
	}
}
