package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// GameManager owns the match currently being played.
type GameManager struct {
	logger *slog.Logger

	game    *entity.Game
	matches int
}

func NewGameManager(logger *slog.Logger) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
	}
}

// StartGame replaces the current match with a fresh one.
func (that *GameManager) StartGame(settings entity.Settings) (*entity.Game, error) {
	game, err := entity.NewGame(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.game = game
	that.matches++

	that.logger.Info("game started",
		"match", that.matches,
		"rows", settings.Rows,
		"cols", settings.Cols,
		"seq", settings.Seq,
	)

	return game, nil
}

// MakeTurn plays the current player's mark into a 1-based column, as typed by the player.
func (that *GameManager) MakeTurn(column int) (entity.Result, error) {
	log := that.logger.With("method", "MakeTurn", "match", that.matches)

	if that.game == nil {
		return entity.Result{}, apperror.ErrNoActiveGame
	}

	mark := that.game.CurrentMark()

	result, err := that.game.MakeTurn(column - 1)
	if err != nil {
		log.Debug("turn rejected", "column", column, "mark", mark.String(), "error", err)

		return entity.Result{}, fmt.Errorf("failed make turn: %w", err)
	}

	log.Debug("turn applied",
		"column", column,
		"mark", result.Mark.String(),
		"row", result.Landed.Row,
		"turn", that.game.Turn,
	)

	switch result.Outcome {
	case entity.OutcomeWin:
		log.Info("game finished", "winner", result.Winner.String(), "turns", that.game.Turn)
	case entity.OutcomeTie:
		log.Info("game finished in a tie", "turns", that.game.Turn)
	}

	return result, nil
}

// Game returns the current match, or nil before the first StartGame.
func (that *GameManager) Game() *entity.Game {
	return that.game
}

// Matches returns how many matches have been started.
func (that *GameManager) Matches() int {
	return that.matches
}
