package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/MKhiriev/go-business-card/internal/adapter"
	"github.com/MKhiriev/go-business-card/internal/logger"
	"github.com/MKhiriev/go-business-card/internal/utils"
)

type command func(ctx context.Context, args []string) error

type App struct {
	api adapter.CardAPI
	ids *utils.UUIDGenerator
	out io.Writer

	commands map[string]command

	logger *logger.Logger
}

func NewApp(api adapter.CardAPI, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		api:    api,
		ids:    utils.NewUUIDGenerator(),
		out:    out,
		logger: logger,
	}

	a.commands = map[string]command{
		"card-create": a.createCard,
		"card-update": a.updateCard,
		"card-get":    a.getCard,
		"card-delete": a.deleteCard,
		"register":    a.register,
		"login":       a.login,
	}

	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: expected one of %s", ErrUsage, a.commandNames())
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %q, expected one of %s", ErrUnknownCommand, args[0], a.commandNames())
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd(ctx, args[1:])
}

func (a *App) commandNames() string {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// newFlagSet returns a flag set that reports errors instead of exiting.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUsage, fs.Name(), err)
	}
	return nil
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readJSON decodes path, or stdin when path is "-".
func readJSON(path string, v any) error {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("error decoding %s: %w", path, err)
	}
	return nil
}

// result is printed by commands that produce no resource.
type result struct {
	Message string `json:"message"`
	CardID  string `json:"card_id,omitempty"`
}
