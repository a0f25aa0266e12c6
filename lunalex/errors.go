package lunalex

import (
	"fmt"

	"github.com/lunalang/lex/token"
)

// ParseError reports an I/O or decode failure encountered while pulling
// chunks from a ChunkSource -- distinct from a lexical defect, which the
// degraded-output model (token.Incorrect, token.StrWrongEsc, token.Unknown)
// always absorbs into the token stream instead of raising an error.
type ParseError struct {
	Pos token.Pos
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("lunalex: at rune %d: %v", e.Pos, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
