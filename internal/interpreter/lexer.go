package interpreter

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Whitespace covers the Unicode space separators and the ASCII control
// separators, not just Go's ASCII \s.
var wordLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Word", Pattern: `[^\s\p{Z}\x0b\x1c-\x1f\x85]+`},
	{Name: "Whitespace", Pattern: `[\s\p{Z}\x0b\x1c-\x1f\x85]+`},
})

var wordType = wordLexer.Symbols()["Word"]

// Lex splits line into whitespace-delimited tokens. Token content is not
// inspected here.
func Lex(line string) ([]string, error) {
	lx, err := wordLexer.LexString("", line)
	if err != nil {
		return nil, err
	}
	all, err := lexer.ConsumeAll(lx)
	if err != nil {
		return nil, err
	}
	var tokens []string
	for _, tok := range all {
		if tok.Type == wordType {
			tokens = append(tokens, tok.Value)
		}
	}
	if len(tokens) == 0 {
		return nil, ErrEmptyCommand
	}
	return tokens, nil
}
