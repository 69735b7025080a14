package token

import (
	"fmt"
	"os"
)

// PrintTokens writes toks to stderr, one per line.
func PrintTokens(toks []Token, msg string) {
	fmt.Fprintf(os.Stderr, "%s tokens:\n", msg)
	for i := range toks {
		t := &toks[i]
		fmt.Fprintf(os.Stderr, "\t%s `%s` %s\n", t.Type, t.Text, t.Pos)
	}
}
