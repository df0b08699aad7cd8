package board

import "errors"

var (
	ErrInvalidTransition  = errors.New("action is not allowed in the current board phase")
	ErrLoadSuperseded     = errors.New("board load was superseded by a newer one")
	ErrBoardNotLoaded     = errors.New("board has not been loaded yet")
	ErrNoEditSession      = errors.New("no edit session is open")
	ErrEmployeeNotOnBoard = errors.New("employee is not on the board")
	ErrDateNotOnBoard     = errors.New("date is not a column of the board")
	ErrCellNotEditable    = errors.New("cell cannot be edited")
)
