// Package kvsh contains the interactive loop of the kvsh key/value shell. It
// wires together configuration, logging, the readline terminal with prompt
// and completion, and the Session that dispatches each line.
package kvsh

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"

	"Kvsh/internal/command"
	"Kvsh/internal/completer"
	"Kvsh/internal/config"
	"Kvsh/internal/logger"
	"Kvsh/internal/painter"
	"Kvsh/internal/prompt"
)

// keyedCommands take a key as their first argument and complete stored keys.
var keyedCommands = map[string]bool{
	command.Get.String(): true,
	command.Set.String(): true,
	command.Del.String(): true,
}

// lineTerminal is the part of readline.Instance the Shell uses.
type lineTerminal interface {
	SetPrompt(prompt string)
	Readline() (string, error)
	Stdout() io.Writer
	Close() error
}

// Shell is the terminal side of a run: the readline instance, prompt
// styling, completion, and the Session being served.
type Shell struct {
	terminal    lineTerminal         // readline instance used to read user input
	interactive bool                 // stdin is a terminal; readline draws the prompt itself
	completer   *completer.Completer // rebuilt before every read
	painter     painter.Painter      // prompt styling
	promptText  string               // unstyled prompt
	session     *Session             // store, registry and dispatcher
	logger      *log.Logger          // diagnostics, never on stdout
	logCloser   io.Closer            // releases the log file, if any
}

// Run boots the shell and serves lines until end of input. It returns an
// error only when booting fails or reading input or writing output fails.
func Run() error {

	shell, err := boot()
	if err != nil {
		return err
	}

	defer shell.exit()

	shell.logger.Info("session started", "interactive", shell.interactive)

	return shell.session.Serve(shell)

}

// boot loads configuration (falling back to defaults on error), sets up the
// logger, creates the readline terminal and the Session.
func boot() (*Shell, error) {

	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	diagnostics, logCloser, err := logger.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("kvsh: boot: %w", err)
	}

	comp := completer.NewCompleter()
	interactive := readline.DefaultIsTerminal()

	terminal, err := readline.NewEx(readlineConfig(cfg.Terminal, comp, interactive))
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("kvsh: boot: failed to create new terminal instance: %w", err)
	}

	session, err := NewSession(terminal.Stdout(), diagnostics)
	if err != nil {
		_ = terminal.Close()
		_ = logCloser.Close()
		return nil, err
	}

	diagnostics.Debug("booted", "history", cfg.Terminal.HistoryFile, "prompt", cfg.Prompt.Text)

	return &Shell{
		terminal:    terminal,
		interactive: interactive,
		completer:   comp,
		painter:     painter.NewPainter(cfg.Prompt),
		promptText:  cfg.Prompt.Text,
		session:     session,
		logger:      diagnostics,
		logCloser:   logCloser,
	}, nil

}

// readlineConfig maps the terminal settings onto a readline.Config. History
// is only kept for interactive input, so piped scripts leave no file behind.
func readlineConfig(cfg config.Terminal, comp readline.AutoCompleter, interactive bool) *readline.Config {
	historyFile := cfg.HistoryFile
	if !interactive {
		historyFile = ""
	}
	return &readline.Config{
		HistoryFile:     historyFile,
		HistoryLimit:    cfg.HistoryLimit,
		InterruptPrompt: cfg.InterruptPrompt,
		EOFPrompt:       cfg.EOFPrompt,
		AutoComplete:    comp,
	}
}

// Readline refreshes completion and the prompt, then reads one line from
// the terminal. readline only draws the prompt on a terminal, so for piped
// input the prompt is written to stdout here.
func (shell *Shell) Readline() (string, error) {

	shell.completer.Update(shell.session.registry.Names(), keyedCommands, shell.session.store.Keys())

	text := prompt.Update(shell.painter, shell.promptText)
	if shell.interactive {
		shell.terminal.SetPrompt(text)
	} else {
		shell.terminal.SetPrompt("")
		if _, err := io.WriteString(shell.terminal.Stdout(), text); err != nil {
			return "", fmt.Errorf("kvsh: prompt: write operation failed: %w", err)
		}
	}

	return shell.terminal.Readline()

}

// exit closes the readline terminal and the log file.
func (shell *Shell) exit() {
	shell.logger.Debug("session ended")
	_ = shell.terminal.Close()
	_ = shell.logCloser.Close()
}
