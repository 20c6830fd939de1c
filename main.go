package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const appVersion = "1.0.0"

func main() {
	handled, err := handleCLIArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if handled {
		return
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	gitService, err := NewGitService()
	if err != nil {
		return fmt.Errorf("initialize git service: %w", err)
	}

	logger := initLogger(gitService)
	defer func() {
		if closeErr := logger.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "warning: close logger: %v\n", closeErr)
		}
	}()

	logger.Info("better_patch starting", map[string]any{
		"version": appVersion,
	})

	program := tea.NewProgram(
		NewModel(gitService, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := program.Run(); err != nil {
		logger.Error("program error", err, nil)
		return fmt.Errorf("run program: %w", err)
	}

	reportLoggerStats(logger)
	return nil
}

func initLogger(gitService *GitService) *Logger {
	gitRootPath, err := gitService.GetRootPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: get git root path: %v\n", err)
		gitRootPath = ""
	}

	logger, err := NewLogger(INFO, gitRootPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return logger
}

func reportLoggerStats(logger *Logger) {
	if !logger.HasErrors() {
		return
	}

	stats := logger.GetStats()
	fmt.Fprintf(os.Stderr, "\ncompleted with %d error(s)\n", stats.TotalErrors)
	if stats.TotalWarnings > 0 {
		fmt.Fprintf(os.Stderr, "warnings: %d\n", stats.TotalWarnings)
	}
}

// handleCLIArgs dispatches the non-TUI subcommands. Returns true when the
// invocation was handled and the TUI should not start.
func handleCLIArgs(args []string) (bool, error) {
	if len(args) == 0 {
		return false, nil
	}

	if isHelpArg(args[0]) {
		printVersion()
		return true, nil
	}

	switch {
	case strings.EqualFold(args[0], "diff"):
		if len(args) >= 2 && isHelpArg(args[1]) {
			printVersion()
			return true, nil
		}
		return true, runDiffCommand(args[1:])

	case strings.EqualFold(args[0], "patch"):
		if len(args) >= 2 && isHelpArg(args[1]) {
			printVersion()
			return true, nil
		}
		return true, runPatchCommand(args[1:])
	}

	return false, nil
}

// runDiffCommand prints the unified diff of two files to stdout.
func runDiffCommand(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: better_patch diff <old-file> <new-file>")
	}

	oldText, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	newText, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[1], err)
	}

	out, err := diffText(string(oldText), string(newText), "a/"+args[0], "b/"+args[1], DefaultDiffContext)
	if err != nil {
		return err
	}

	fmt.Print(out)
	return nil
}

// runPatchCommand applies a unified diff to a file and prints the result to
// stdout. --lenient downgrades content mismatches to warnings on stderr.
func runPatchCommand(args []string) error {
	opts := ApplyOptions{}
	var paths []string
	for _, arg := range args {
		if arg == "-l" || arg == "--lenient" {
			opts.Lenient = true
			continue
		}
		paths = append(paths, arg)
	}

	if len(paths) != 2 {
		return fmt.Errorf("usage: better_patch patch [--lenient] <original-file> <patch-file>")
	}

	originalText, err := os.ReadFile(paths[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", paths[0], err)
	}
	patchText, err := os.ReadFile(paths[1])
	if err != nil {
		return fmt.Errorf("read %s: %w", paths[1], err)
	}

	if opts.Lenient {
		logger := newDefaultLogger(WARN)
		defer logger.Close()
		opts.Logger = logger
	}

	out, err := applyPatchTextWithOptions(string(originalText), string(patchText), opts)
	if err != nil {
		return err
	}

	fmt.Print(out)
	return nil
}

func printVersion() {
	fmt.Printf("better_patch %s\n", appVersion)
}

func isHelpArg(arg string) bool {
	return strings.EqualFold(arg, "help") || arg == "-h" || arg == "--help"
}
