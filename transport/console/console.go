package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
	"github.com/rocketscienceinc/connectfour/internal/usecase"
)

var ErrInputClosed = errors.New("input closed")

const (
	modeOriginal = 1
	modeCustom   = 2

	// input lines are cut at this length
	maxLineLength = 256

	ansiClearScreen = "\x1b[2J\x1b[H"
	ansiClearLine   = "\x1b[2K"
	ansiUpTwoLines  = "\x1b[2A"
)

// Options controls terminal behaviour.
type Options struct {
	// Color enables ANSI colors and bold winning cells.
	Color bool
	// ClearScreen redraws every frame on a clean screen.
	ClearScreen bool
}

// Console runs matches over a line-oriented terminal.
type Console struct {
	logger   *slog.Logger
	useCase  usecase.GameUseCase
	reader   *bufio.Reader
	out      io.Writer
	renderer *Renderer
	clear    bool
}

func New(logger *slog.Logger, useCase usecase.GameUseCase, in io.Reader, out io.Writer, opts Options) *Console {
	return &Console{
		logger:   logger.With("component", "console"),
		useCase:  useCase,
		reader:   bufio.NewReader(in),
		out:      out,
		renderer: NewRenderer(opts.Color),
		clear:    opts.ClearScreen,
	}
}

// Run plays matches until the players decline a replay. It returns
// ErrInputClosed when input ends first.
func (that *Console) Run(ctx context.Context) error {
	for {
		settings, err := that.selectSettings(ctx)
		if err != nil {
			return err
		}

		game, err := that.useCase.StartGame(settings)
		if err != nil {
			return fmt.Errorf("failed to start game: %w", err)
		}

		if err = that.playGame(ctx, game); err != nil {
			return err
		}

		again, err := that.askReplay(ctx)
		if err != nil {
			return err
		}

		if !again {
			that.println("Thanks for playing.")
			return nil
		}
	}
}

func (that *Console) selectSettings(ctx context.Context) (entity.Settings, error) {
	that.clearScreen()
	that.println("Welcome to connect four!")
	that.println("Select the game mode you'd like to play:")
	that.printf("  1. Original. (%dx%d grid. Connect %d tokens to win)\n",
		entity.OriginalRows, entity.OriginalCols, entity.OriginalSeq)
	that.println("  2. Custom. (Select your own grid size and required number of connected tokens to win)")

	mode, err := that.readMode(ctx)
	if err != nil {
		return entity.Settings{}, err
	}

	if mode == modeOriginal {
		return entity.OriginalSettings(), nil
	}

	rows, err := that.readDimension(ctx, "rows", "Minimum 3 rows required")
	if err != nil {
		return entity.Settings{}, err
	}

	cols, err := that.readDimension(ctx, "columns", "Minimum 3 columns required.")
	if err != nil {
		return entity.Settings{}, err
	}

	seq, err := that.readSequence(ctx, rows, cols)
	if err != nil {
		return entity.Settings{}, err
	}

	return entity.Settings{Rows: rows, Cols: cols, Seq: seq}, nil
}

func (that *Console) readMode(ctx context.Context) (int, error) {
	for {
		that.print("Mode: ")

		line, err := that.readLine(ctx)
		if err != nil {
			return 0, err
		}

		mode, err := strconv.Atoi(line)
		if err == nil && (mode == modeOriginal || mode == modeCustom) {
			return mode, nil
		}

		that.printError("Please choose a valid option.")
	}
}

func (that *Console) readDimension(ctx context.Context, name, tooSmall string) (int, error) {
	tooLarge := fmt.Sprintf("Maximum %d %s allowed.", entity.MaxDimension, name)

	for {
		that.printf("Number of %s: ", that.renderer.Bold(name))

		n, ok, err := that.readNumber(ctx)
		if err != nil {
			return 0, err
		}

		if !ok {
			continue
		}

		if err = entity.ValidateDimension(n); err != nil {
			if n < entity.MinDimension {
				that.printError(tooSmall)
			} else {
				that.printError(tooLarge)
			}
			continue
		}

		return n, nil
	}
}

func (that *Console) readSequence(ctx context.Context, rows, cols int) (int, error) {
	for {
		that.print("Number of tokens to be connected: ")

		seq, ok, err := that.readNumber(ctx)
		if err != nil {
			return 0, err
		}

		if !ok {
			continue
		}

		if err = entity.ValidateSequence(seq, rows, cols); err != nil {
			if seq < entity.MinSequence {
				that.printError("Sequence size must be at least 3.")
			} else {
				that.printError("Sequence size cannot be more than the grid sizes.")
			}
			continue
		}

		return seq, nil
	}
}

func (that *Console) playGame(ctx context.Context, game *entity.Game) error {
	for {
		that.clearScreen()
		that.print(that.renderer.Board(game.Board))
		that.printf("\nIt's Player %s's turn.\n", that.renderer.Player(game.CurrentMark()))

		result, err := that.readTurn(ctx)
		if err != nil {
			return err
		}

		switch result.Outcome {
		case entity.OutcomeWin:
			that.clearScreen()
			that.print(that.renderer.Board(game.Board))
			that.printf("\nPlayer %s wins.\n", that.renderer.Player(result.Winner))
			return nil
		case entity.OutcomeTie:
			that.clearScreen()
			that.print(that.renderer.Board(game.Board))
			that.println("\nIt's a tie.")
			return nil
		}
	}
}

// readTurn prompts until the current player makes a legal move.
func (that *Console) readTurn(ctx context.Context) (entity.Result, error) {
	for {
		that.print("Enter a column: ")

		column, ok, err := that.readNumber(ctx)
		if err != nil {
			return entity.Result{}, err
		}

		if !ok {
			continue
		}

		result, err := that.useCase.MakeTurn(column)
		switch {
		case err == nil:
			return result, nil
		case errors.Is(err, apperror.ErrInvalidColumn), errors.Is(err, apperror.ErrColumnFull):
			that.printError("Please enter a valid column number.")
		default:
			return entity.Result{}, fmt.Errorf("failed to make turn: %w", err)
		}
	}
}

func (that *Console) askReplay(ctx context.Context) (bool, error) {
	for {
		that.print("Would you like to play again? (y/n): ")

		line, err := that.readLine(ctx)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

// readNumber reads an integer, reporting ok=false after telling the player
// the input was not a number.
func (that *Console) readNumber(ctx context.Context) (int, bool, error) {
	line, err := that.readLine(ctx)
	if err != nil {
		return 0, false, err
	}

	n, err := strconv.Atoi(line)
	if err != nil {
		that.logger.Debug("non-numeric input", "input", line)
		that.printError("Please enter a valid number.")

		return 0, false, nil
	}

	return n, true, nil
}

func (that *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var line []byte
	for {
		chunk, err := that.reader.ReadSlice('\n')
		if room := maxLineLength - len(line); room > 0 {
			line = append(line, chunk[:min(len(chunk), room)]...)
		}

		switch {
		case err == nil:
			return that.finishLine(line), nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if len(line) == 0 {
				return "", ErrInputClosed
			}

			return that.finishLine(line), nil
		default:
			return "", fmt.Errorf("failed to read input: %w", err)
		}
	}
}

func (that *Console) finishLine(line []byte) string {
	if len(line) == maxLineLength {
		that.logger.Debug("input line truncated", "limit", maxLineLength)
	}

	return strings.TrimSpace(string(line))
}

func (that *Console) clearScreen() {
	if that.clear {
		that.print(ansiClearScreen)
	}
}

// printError shows a re-prompt message. On a terminal the message replaces the
// rejected answer and the cursor goes back to the cleared prompt line.
func (that *Console) printError(text string) {
	if !that.clear {
		that.println(that.renderer.Error(text))
		return
	}

	that.print(ansiClearLine + that.renderer.Error(text) + "\n" + ansiUpTwoLines + ansiClearLine)
}

func (that *Console) print(text string) {
	fmt.Fprint(that.out, text)
}

func (that *Console) println(text string) {
	fmt.Fprintln(that.out, text)
}

func (that *Console) printf(format string, args ...any) {
	fmt.Fprintf(that.out, format, args...)
}
