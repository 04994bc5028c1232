package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/vidyasagar/navhist/internal/app"
	"github.com/vidyasagar/navhist/internal/browser"
	"github.com/vidyasagar/navhist/internal/logger"
	"github.com/vidyasagar/navhist/internal/storage"
	"github.com/vidyasagar/navhist/internal/theme"
)

var version = "0.1.0"

// loadConfig reads the config file and applies command line overrides.
func loadConfig(cmd *cli.Command) (*storage.Config, error) {
	cfg, err := storage.LoadConfig(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if f := cmd.String("history"); f != "" {
		cfg.History.File = f
	}
	if t := cmd.String("theme"); t != "" {
		cfg.UI.Theme = t
	}
	if l := cmd.String("log-level"); l != "" {
		cfg.App.LogLevel = l
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newNavigator(cfg *storage.Config, log logger.Logger) *browser.Navigator {
	return browser.NewNavigator(
		browser.WithDelimiter(cfg.History.DelimiterRune()),
		browser.WithMalformedPolicy(cfg.History.Policy()),
		browser.WithClearForwardOnVisit(cfg.History.ClearForwardOnVisit),
		browser.WithLocation(cfg.UI.Location()),
		browser.WithLogger(log),
	)
}

// session is the state shared by the TUI and the show command.
type session struct {
	cfg       *storage.Config
	log       *logger.ZapLogger
	nav       *browser.Navigator
	status    string
	statusErr bool
}

// setup loads config, builds the logger and loads the seed file.
func setup(cmd *cli.Command) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log, err := logger.NewLogger(cfg.App.LogFormat, cfg.App.LogLevel, cfg.App.LogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	theme.Set(cfg.UI.Theme)

	nav := newNavigator(cfg, log)
	res, loadErr := nav.LoadFile(cfg.History.File)
	status, statusErr := app.DescribeLoad(res, loadErr)

	return &session{cfg: cfg, log: log, nav: nav, status: status, statusErr: statusErr}, nil
}

func run(ctx context.Context, cmd *cli.Command) error {
	s, err := setup(cmd)
	if err != nil {
		return err
	}
	defer s.log.Sync() //nolint:errcheck

	m := app.New(s.nav,
		app.WithSessionStore(
			storage.NewSessionStore(s.cfg.History.File, s.cfg.History.DelimiterRune()),
			s.cfg.History.SaveOnExit,
		),
		app.WithRecentSize(s.cfg.UI.RecentURLs),
		app.WithLogger(s.log),
		app.WithStatus(s.status, s.statusErr),
	)

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("app run error: %w", err)
	}
	if fm, ok := final.(app.Model); ok && fm.Farewell() != "" {
		fmt.Println(fm.Farewell())
	}
	return nil
}

func show(_ context.Context, cmd *cli.Command) error {
	s, err := setup(cmd)
	if err != nil {
		return err
	}
	defer s.log.Sync() //nolint:errcheck

	if s.statusErr {
		fmt.Fprintln(os.Stderr, s.status)
	}
	return s.nav.Display(os.Stdout)
}

func printVersion(_ context.Context, _ *cli.Command) error {
	fmt.Printf("navhist %s\n", version)
	return nil
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:   "navhist",
		Usage:  "Browser history simulator with back and forward stacks",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "<config dir>/navhist.yaml",
				Sources:     cli.EnvVars("NAVHIST_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "history",
				Aliases: []string{"f"},
				Usage:   "Seed history file (overrides history.file)",
				Sources: cli.EnvVars("NAVHIST_HISTORY_FILE"),
			},
			&cli.StringFlag{
				Name:  "theme",
				Usage: "Color theme (default, gruvbox, nord, dracula)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error, none)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Load the history file and print the back and forward stacks",
				Action: show,
			},
			{
				Name:   "version",
				Usage:  "Print the version",
				Action: printVersion,
			},
		},
	}
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log, _ := logger.NewLogger("text", "error", "")
		if log == nil {
			log = logger.NewNoopLogger()
		}
		log.Error("application error", zap.Error(err))
		os.Exit(1)
	}
}
