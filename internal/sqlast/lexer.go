package sqlast

import "github.com/alecthomas/participle/v2/lexer"

// keywords lists every reserved word in the Trino SELECT grammar this
// package parses. They are tokenized distinctly from Ident (see the
// Keyword lexer rule below) so that, e.g., a CASE expression's optional
// operand can never accidentally swallow a following WHEN token: Ident
// captures only tokens the lexer did NOT already classify as Keyword.
var keywords = []string{
	"WITH", "AS", "SELECT", "DISTINCT", "ALL", "FROM", "WHERE", "GROUP", "BY",
	"HAVING", "ORDER", "ASC", "DESC", "NULLS", "FIRST", "LAST", "LIMIT",
	"OFFSET", "JOIN", "INNER", "LEFT", "RIGHT", "FULL", "CROSS", "OUTER",
	"ON", "USING", "UNION", "INTERSECT", "EXCEPT", "VALUES", "UNNEST",
	"ORDINALITY", "EXISTS", "IN", "NOT", "AND", "OR", "CASE", "WHEN", "THEN",
	"ELSE", "END", "IS", "NULL", "BETWEEN", "LIKE", "TRUE", "FALSE", "CAST",
	"OVER", "PARTITION",
}

// sqlLexer tokenizes Trino SELECT text. Rule order matters: Keyword is
// tried before Ident so reserved words never surface as identifiers.
var sqlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `--[^\n]*`},
	{Name: "MultilineComment", Pattern: `/\*([^*]|\*+[^*/])*\*+/`},
	{Name: "String", Pattern: `'(''|[^'])*'`},
	{Name: "QuotedIdent", Pattern: `"(""|[^"])*"`},
	{Name: "Number", Pattern: `\d+(\.\d+)?([eE][+-]?\d+)?`},
	{Name: "Keyword", Pattern: keywordPattern()},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `<>|<=|>=|!=|[(),.;=<>+\-*/%]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

func keywordPattern() string {
	pattern := `(?i)(`
	for i, kw := range keywords {
		if i > 0 {
			pattern += "|"
		}
		pattern += kw
	}
	pattern += `)\b`
	return pattern
}
