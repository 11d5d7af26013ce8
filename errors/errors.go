package errors

import (
	goerrors "errors"
	"fmt"

	"github.com/pontaoski/cadet/types"
)

// EOF is returned when the grammar needed another token and the stream was
// exhausted.
var EOF = goerrors.New("unexpected end of input")

// ParseError reports a token of the wrong kind at a grammar position.
type ParseError struct {
	Expected string
	Got      types.Token
}

func (e ParseError) Error() string {
	return fmt.Sprintf("got %s, expected %s. offset %d", e.Got, e.Expected, e.Got.Offset)
}
