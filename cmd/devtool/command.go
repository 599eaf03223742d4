package main

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"time"
)

const (
	appName          = "plotplanner"
	dbRetryAttempts  = 30
	dbRetryInterval  = 2 * time.Second
	dbConnectTimeout = 5 * time.Second
)

// Command is one devtool subcommand
type Command interface {
	Name() string
	Description() string
	Run(args []string) error
}

// Registry maps command names to commands
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

// List returns every registered command sorted by name
func (r *Registry) List() []Command {
	return slices.SortedFunc(maps.Values(r.commands), func(a, b Command) int {
		return cmp.Compare(a.Name(), b.Name())
	})
}

func (r *Registry) PrintHelp() {
	fmt.Printf("Usage: devtool <command> [args...]   (%s developer tasks)\n", appName)
	fmt.Println("\nAvailable Commands:")

	cmds := r.List()
	width := 0
	for _, cmd := range cmds {
		width = max(width, len(cmd.Name()))
	}
	for _, cmd := range cmds {
		fmt.Printf("  %-*s  %s\n", width, cmd.Name(), cmd.Description())
	}
}
