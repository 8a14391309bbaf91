package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/peterh/liner"

	"github.com/moffa90/go-rcx/protocol"
	"github.com/moffa90/go-rcx/script"
)

// runConsole reads script lines interactively and runs each one against r.
func runConsole(ctx context.Context, r script.Runner, historyFile string, out io.Writer) error {
	shell := liner.NewLiner()
	defer func() { _ = shell.Close() }()

	shell.SetCtrlCAborts(true)
	shell.SetCompleter(completeAction)

	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			_, _ = shell.ReadHistory(f)
			_ = f.Close()
		}
	}

	fmt.Fprintln(out, `Interactive mode, type "help" for commands, Ctrl-D to quit.`)

loop:
	for ctx.Err() == nil {
		input, err := shell.Prompt("rcx> ")
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			break
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		shell.AppendHistory(input)

		switch input {
		case "help", "?":
			printConsoleHelp(out)
			continue
		case "quit", "exit", "q":
			break loop
		}

		step, err := script.ParseLine(input)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		if step == nil {
			continue
		}
		if err := step.Run(ctx, r); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}

	if historyFile != "" {
		if f, err := os.Create(historyFile); err == nil {
			_, _ = shell.WriteHistory(f)
			_ = f.Close()
		}
	}

	return nil
}

// completeAction completes the first word of a console line.
func completeAction(line string) []string {
	if strings.ContainsAny(line, " \t") {
		return nil
	}

	words := append(protocol.Actions(), script.WaitAction, "help", "quit")
	sort.Strings(words)

	prefix := strings.ToLower(line)
	var c []string
	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			c = append(c, w)
		}
	}
	return c
}

func printConsoleHelp(out io.Writer) {
	fmt.Fprintln(out, "\nAvailable commands:")
	for _, usage := range actionUsages() {
		fmt.Fprintf(out, "  %s\n", usage)
	}
	fmt.Fprintf(out, "  %s <duration>\n", script.WaitAction)
	fmt.Fprintln(out, "  help")
	fmt.Fprintln(out, "  quit/exit/q")
	fmt.Fprintln(out)
}
