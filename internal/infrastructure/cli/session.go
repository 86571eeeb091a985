package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"reword/internal/app"
)

const msgNoHistory = "No usage history available yet."

// Session drives the interactive formatting loop over a reader/writer pair.
type Session struct {
	container *app.Container
	in        *bufio.Scanner
	out       io.Writer

	// Interactive enables the banner and prompts when attached to a TTY.
	Interactive bool
}

// NewSession constructs a session referencing the given streams.
func NewSession(container *app.Container, in io.Reader, out io.Writer) *Session {
	return &Session{
		container: container,
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// Run executes the interactive loop until the user exits or input ends.
func (s *Session) Run(ctx context.Context) error {
	if s.Interactive {
		fmt.Fprintln(s.out, "=== Text Formatter ===")
		fmt.Fprintln(s.out, "Format your text with AI assistance")
		fmt.Fprintln(s.out)
	}

	for {
		fmt.Fprintln(s.out, "Commands:")
		fmt.Fprintln(s.out, "- Press Enter to start")
		fmt.Fprintln(s.out, "- Type 'exit' to quit")
		fmt.Fprintln(s.out, "- Type 'stats' to view usage statistics")
		fmt.Fprintln(s.out)
		fmt.Fprint(s.out, "> ")

		if !s.in.Scan() {
			return s.in.Err()
		}
		command := strings.ToLower(strings.TrimSpace(s.in.Text()))

		switch command {
		case "exit":
			fmt.Fprintln(s.out, "\nThank you for using Text Formatter!")
			return nil
		case "stats":
			s.showStats()
			continue
		}

		text, ok := s.captureText()
		if !ok {
			continue
		}

		task, ok := s.chooseTask()
		if !ok {
			continue
		}

		fmt.Fprintln(s.out, "\nFormatting your text...")
		output, err := s.container.Formatter.Format(ctx, text, task)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n\n", err)
			continue
		}

		RenderResult(s.out, task, output)
	}
}

// captureText collects multi-line input. It returns ok=false when the user
// cancels or input ends.
func (s *Session) captureText() (string, bool) {
	fmt.Fprintln(s.out, "\n=== TEXT INPUT MODE ===")
	fmt.Fprintln(s.out, "Commands:")
	fmt.Fprintln(s.out, "- Type or paste your text")
	fmt.Fprintln(s.out, "- '/done' to finish")
	fmt.Fprintln(s.out, "- '/cancel' to cancel")
	fmt.Fprintln(s.out, "- '/clear' to clear current input")
	fmt.Fprintln(s.out, "- '/preview' to see current input")
	fmt.Fprintln(s.out)

	var lines []string
	for {
		fmt.Fprint(s.out, "> ")
		if !s.in.Scan() {
			return "", false
		}
		line := strings.TrimSpace(s.in.Text())

		switch strings.ToLower(line) {
		case "/done":
			if len(lines) == 0 {
				fmt.Fprintln(s.out, "No text entered. Please enter some text or '/cancel'")
				continue
			}
			return strings.Join(lines, "\n"), true
		case "/cancel":
			return "", false
		case "/clear":
			lines = nil
			fmt.Fprintln(s.out, "Input cleared")
			continue
		case "/preview":
			if len(lines) == 0 {
				fmt.Fprintln(s.out, "No input yet")
			} else {
				fmt.Fprintln(s.out, "\nCurrent input:")
				fmt.Fprintln(s.out, strings.Join(lines, "\n"))
				fmt.Fprintln(s.out)
			}
			continue
		}

		lines = append(lines, line)
	}
}

// chooseTask asks for a task by ordinal or name. It returns ok=false when
// the user cancels or input ends.
func (s *Session) chooseTask() (string, bool) {
	tasks := s.container.Tasks
	names := tasks.Names()

	for {
		fmt.Fprintln(s.out, "\n=== CHOOSE FORMATTING TASK ===")
		fmt.Fprintln(s.out, "Available options:")
		for i, t := range tasks.All() {
			fmt.Fprintf(s.out, "%d. %-8s - %s\n", i+1, t.Name, t.Description)
		}
		fmt.Fprint(s.out, "\nEnter your choice (number or name): ")

		if !s.in.Scan() {
			return "", false
		}
		choice := strings.ToLower(strings.TrimSpace(s.in.Text()))

		if choice == "cancel" {
			return "", false
		}

		if index, err := strconv.Atoi(choice); err == nil {
			if index >= 1 && index <= len(names) {
				return names[index-1], true
			}
		} else if _, ok := tasks.Lookup(choice); ok {
			return choice, true
		}

		fmt.Fprintf(s.out, "Invalid choice. Please select a number (1-%d) or one of: %s\n",
			len(names), strings.Join(names, ", "))
	}
}

func (s *Session) showStats() {
	stats, ok, err := s.container.HistoryStore.Stats()
	if err != nil {
		if s.container.Logger != nil {
			s.container.Logger.Error("error loading statistics", err, nil)
		}
		fmt.Fprintln(s.out, "Error loading statistics")
		return
	}
	if !ok {
		fmt.Fprintf(s.out, "\n%s\n\n", msgNoHistory)
		return
	}
	RenderStats(s.out, stats, s.container.Tasks)
}
