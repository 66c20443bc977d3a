package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

func setupLogger() zerolog.Logger {
	path, err := xdg.StateFile(filepath.Join("jellypick", "jellypick.log"))
	if err != nil {
		return zerolog.Nop()
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(logFile).With().Timestamp().Logger()
}

// runLastCommand re-executes the previously saved player invocation
func runLastCommand(cfg *Config) {
	if cfg.LastCommand.Cmd == "" {
		fmt.Println("No previous command found in config.")
		os.Exit(1)
	}
	fmt.Printf("Re-running: %s\n", cfg.LastCommand.Cmd)
	execShell(cfg.LastCommand.Cmd)
}

func execShell(command string) {
	if err := syscall.Exec("/bin/sh", []string{"sh", "-c", command}, os.Environ()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// execPlayer replaces this process with mpv on the assembled argv, saving
// it first so --again can repeat it.
func execPlayer(cfg *Config, launch *Launch, log zerolog.Logger) {
	args := buildMPVArgs(launch)

	cfg.LastCommand.Cmd = strings.Join(args, " ")
	if err := cfg.Save(); err != nil {
		log.Warn().Err(err).Msg("failed to persist last command")
	}

	path, err := exec.LookPath("mpv")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: mpv not found: %v\n", err)
		os.Exit(1)
	}

	log.Info().Strs("args", args).Msg("launching player")
	if err := syscall.Exec(path, args, os.Environ()); err != nil {
		fmt.Fprintf(os.Stderr, "Error launching mpv: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	again := flag.Bool("again", false, "re-run the last player command")
	flag.BoolVar(again, "a", *again, "re-run the last player command (shorthand)")
	ttyMode := flag.Bool("tty", false, "force the ASCII glyph set")
	noTTYMode := flag.Bool("no-tty", false, "force the Unicode glyph set")
	setup := flag.Bool("setup", false, "run interactive first-time setup")
	flag.BoolVar(setup, "auth", *setup, "run interactive first-time setup (alias)")
	flag.Parse()

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *again {
		runLastCommand(cfg)
		return
	}

	if *setup {
		if err := interactiveSetup(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Setup failed: %v\n", err)
			os.Exit(1)
		}
	}

	if !cfg.hasCredentials() {
		fmt.Println("No configuration found. Starting setup...")
		fmt.Println()
		if err := interactiveSetup(cfg); err != nil {
			fmt.Println()
			fmt.Println("Setup cancelled.")
			fmt.Println()
			fmt.Printf("Create a config file at %s with:\n", defaultConfigPath())
			fmt.Println()
			fmt.Println("[jellyfin]")
			fmt.Println(`url = "http://your-server:8096"`)
			fmt.Println(`api_key = "your-api-key"`)
			fmt.Println(`user_id = "your-user-id"`)
			os.Exit(1)
		}
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "Error: jellypick requires a terminal")
		os.Exit(1)
	}

	// Glyph set is fixed for the process lifetime
	console := isConsoleTTY()
	if *ttyMode {
		console = true
	} else if *noTTYMode {
		console = false
	}
	chars := charsetFor(console)

	log := setupLogger()
	client := NewClient(cfg.Jellyfin.URL, cfg.Jellyfin.APIKey, cfg.Jellyfin.UserID, log)
	app := NewApp(cfg, client, chars, log)

	p := tea.NewProgram(app, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if final, ok := finalModel.(*App); ok && final.result != nil {
		execPlayer(cfg, final.result, log)
	}
}
