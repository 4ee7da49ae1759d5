package sqlast

import (
	"strings"

	"github.com/alecthomas/participle/v2"
)

var queryParser = participle.MustBuild[Query](
	participle.Lexer(sqlLexer),
	participle.Elide("Comment", "MultilineComment", "Whitespace"),
	participle.CaseInsensitive("Keyword"),
	participle.UseLookahead(1024),
)

// Parse parses a single Trino SELECT/WITH/VALUES statement into its AST.
// It accepts exactly one statement per call; a trailing ';' is
// tolerated but a second statement after it is not.
func Parse(stmt string) (*Query, error) {
	text := strings.TrimSpace(stmt)
	text = strings.TrimSuffix(text, ";")
	return queryParser.ParseString("", text)
}
