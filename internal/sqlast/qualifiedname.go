package sqlast

import "strings"

// NamePart is a single dot-separated component of a qualified name. An
// unquoted part is normalized to lower case by the parser; a quoted part
// keeps its original case and may contain spaces, dashes, and
// punctuation.
type NamePart struct {
	Unquoted *string `parser:"@Ident"`
	Quoted   *string `parser:"| @QuotedIdent"`
}

// Text returns the part's normalized text.
func (n NamePart) Text() string {
	if n.Unquoted != nil {
		return strings.ToLower(*n.Unquoted)
	}
	if n.Quoted != nil {
		inner := (*n.Quoted)[1 : len(*n.Quoted)-1]
		return strings.ReplaceAll(inner, `""`, `"`)
	}
	return ""
}

// QualifiedName is a dot-separated chain of 1 or more name parts: a table
// reference carries 1–3 parts; column references may carry more. This
// grammar constructs QualifiedName for table, column and CAST type-name
// positions, never for literals.
type QualifiedName struct {
	Parts []NamePart `parser:"@@ ('.' @@)*"`
}

// Strings returns the normalized text of every part, in order.
func (q QualifiedName) Strings() []string {
	out := make([]string, len(q.Parts))
	for i, p := range q.Parts {
		out[i] = p.Text()
	}
	return out
}

// Last returns the simple (rightmost) name, used for CTE-masking
// comparisons.
func (q QualifiedName) Last() string {
	if len(q.Parts) == 0 {
		return ""
	}
	return q.Parts[len(q.Parts)-1].Text()
}
