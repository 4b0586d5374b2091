package usecase

import (
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// GameUseCase is what a presentation layer needs to run matches.
type GameUseCase interface {
	StartGame(settings entity.Settings) (*entity.Game, error)
	MakeTurn(column int) (entity.Result, error)
}
