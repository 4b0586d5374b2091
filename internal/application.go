package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/rocketscienceinc/connectfour/internal/config"
	"github.com/rocketscienceinc/connectfour/internal/usecase"
	"github.com/rocketscienceinc/connectfour/transport/console"
)

// RunApp - runs the game on the process terminal until the players quit,
// stdin closes or a signal arrives.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	tty := isTerminal(os.Stdout)
	color := useColor(conf.Color, tty)

	var out io.Writer = os.Stdout
	if color {
		out = colorable.NewColorableStdout()
	}

	log.Debug("terminal detected", "tty", tty, "color", color)

	// the console blocks on stdin, so a signal must not wait for it
	errCh := make(chan error, 1)
	go func() {
		errCh <- Play(ctx, logger, os.Stdin, out, console.Options{Color: color, ClearScreen: tty})
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// Play wires a fresh game manager to a console over the given streams.
// Running out of input ends the session normally.
func Play(ctx context.Context, logger *slog.Logger, in io.Reader, out io.Writer, opts console.Options) error {
	gameUseCase := usecase.NewGameManager(logger)
	terminal := console.New(logger, gameUseCase, in, out, opts)

	err := terminal.Run(ctx)
	switch {
	case err == nil, errors.Is(err, console.ErrInputClosed):
		logger.Info("session ended", "matches", gameUseCase.Matches())
		return nil
	case errors.Is(err, context.Canceled):
		return nil
	default:
		return fmt.Errorf("console failed: %w", err)
	}
}

func isTerminal(file *os.File) bool {
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

func useColor(mode string, tty bool) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return tty
	}
}
