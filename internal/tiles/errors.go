package tiles

import "errors"

var (
	ErrInvalidSymbol       = errors.New("invalid symbol")
	ErrInvalidTileID       = errors.New("invalid tile id")
	ErrInvalidPartialGuess = errors.New("invalid partial guess")
)
