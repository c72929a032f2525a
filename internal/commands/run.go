package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/rog-golang-buddies/userboard/internal/store"
	"github.com/rog-golang-buddies/userboard/internal/users/api"
	"github.com/rog-golang-buddies/userboard/ui/terminal/shell"
	"github.com/rog-golang-buddies/userboard/ui/terminal/tui"
	"github.com/rog-golang-buddies/userboard/ui/terminal/tui/tableui"
)

func signalContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(
		ctx,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
}

// runTUI opens the board, or prints the list when stdout is not a terminal.
func runTUI(cCtx *cli.Context) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return runList(cCtx)
	}

	cfg, err := loadConfig(cCtx)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg, defaultLogFile)
	if err != nil {
		return err
	}
	defer log.Sync()

	sCtx, cancel := signalContext(cCtx.Context)
	defer cancel()

	st := store.New(store.WithLogger(log))
	m := tui.New(sCtx, st, newAPI(cfg, log),
		tui.WithMutationDelay(cfg.UI.MutationDelay),
		tui.WithLogger(log),
	)

	p := tea.NewProgram(m, tea.WithAltScreen())

	g, gCtx := errgroup.WithContext(sCtx)

	g.Go(func() error {
		defer cancel()
		log.Info("board starting", zap.String("base_url", cfg.API.BaseURL))
		if _, err := p.Run(); err != nil {
			return errors.Wrap(err, "board exited")
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		p.Quit()
		return nil
	})

	return g.Wait()
}

func runList(cCtx *cli.Context) error {
	cfg, err := loadConfig(cCtx)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg, "stderr")
	if err != nil {
		return err
	}
	defer log.Sync()

	sCtx, cancel := signalContext(cCtx.Context)
	defer cancel()

	st := store.New(store.WithLogger(log))
	if err := st.Run(sCtx, store.FetchUsers(newAPI(cfg, log))); err != nil {
		log.Debug("fetching users failed", zap.Error(err))
		return errors.New(api.Message(err))
	}

	_, err = fmt.Fprint(cCtx.App.Writer, tableui.Render(st.State().Users))
	return err
}

func runShell(cCtx *cli.Context) error {
	cfg, err := loadConfig(cCtx)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg, defaultLogFile)
	if err != nil {
		return err
	}
	defer log.Sync()

	sCtx, cancel := signalContext(cCtx.Context)
	defer cancel()

	st := store.New(store.WithLogger(log))
	sh := shell.New(st, newAPI(cfg, log),
		shell.WithOutput(cCtx.App.Writer),
		shell.WithMutationDelay(cfg.UI.MutationDelay),
		shell.WithLogger(log),
	)

	return sh.Run(sCtx)
}
