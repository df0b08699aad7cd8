package cron

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/attendance-board-go/internal/domain/board"
)

type BoardJobs struct {
	boardService board.BoardService
}

func NewBoardJobs(boardService board.BoardService) *BoardJobs {
	return &BoardJobs{boardService: boardService}
}

// RefreshBoard reloads a loaded board in its current view mode. Boards that
// are idle, mid-edit or saving are left alone so a draft is never discarded.
func (j *BoardJobs) RefreshBoard(ctx context.Context) error {
	state := j.boardService.State()
	if state.Phase != board.PhaseLoaded || state.Grid == nil {
		return nil
	}

	_, err := j.boardService.Load(ctx, state.Grid.Mode)
	if errors.Is(err, board.ErrLoadSuperseded) || errors.Is(err, board.ErrInvalidTransition) {
		return nil
	}
	return err
}
