package sqlast

// Query is the grammar's entry point: an optional WITH clause, a body made
// of one or more set-operation-joined SELECTs/VALUES, and trailing
// ORDER BY/LIMIT/OFFSET. It is reused recursively for every nested query
// position — CTE body, scalar subquery, EXISTS/IN subquery, table
// subquery — so a single Parse call covers all of them.
type (
	Query struct {
		With    *WithClause     `parser:"@@?"`
		Body    SetOperation    `parser:"@@"`
		OrderBy []OrderByColumn `parser:"('ORDER' 'BY' @@ (',' @@)*)?"`
		Limit   *string         `parser:"('LIMIT' @Number)?"`
		Offset  *string         `parser:"('OFFSET' @Number)?"`
	}

	WithClause struct {
		With string                   `parser:"'WITH'"`
		CTEs []CommonTableExpression `parser:"@@ (',' @@)*"`
	}

	// CommonTableExpression is the unit CTE masking scopes against: Name
	// is bound for every CTE body in this WITH clause's list and for the
	// accompanying query body.
	CommonTableExpression struct {
		Name    string   `parser:"@Ident"`
		Columns []string `parser:"('(' @Ident (',' @Ident)* ')')?"`
		As      string   `parser:"'AS'"`
		LParen  string   `parser:"'('"`
		Query   Query    `parser:"@@"`
		RParen  string   `parser:"')'"`
	}

	// SetOperation chains UNION/INTERSECT/EXCEPT query bodies: a query
	// composed of N set-operation-joined SELECTs contributes the union of
	// all N SELECTs' table references.
	SetOperation struct {
		Left QueryPrimary       `parser:"@@"`
		Rest []SetOperationRest `parser:"@@*"`
	}

	SetOperationRest struct {
		Union     bool         `parser:"( @'UNION'"`
		All       bool         `parser:"  @'ALL'?"`
		Intersect bool         `parser:"| @'INTERSECT'"`
		Except    bool         `parser:"| @'EXCEPT' )"`
		Right     QueryPrimary `parser:"@@"`
	}

	QueryPrimary struct {
		Paren  *Query              `parser:"( '(' @@ ')'"`
		Select *QuerySpecification `parser:"| @@"`
		Values *ValuesClause       `parser:"| @@ )"`
	}

	QuerySpecification struct {
		Select   string       `parser:"'SELECT'"`
		Distinct bool         `parser:"@'DISTINCT'?"`
		All      bool         `parser:"@'ALL'?"`
		Items    []SelectItem `parser:"@@ (',' @@)*"`
		From     *FromClause  `parser:"@@?"`
		Where    *Expression  `parser:"('WHERE' @@)?"`
		GroupBy  []Expression `parser:"('GROUP' 'BY' @@ (',' @@)*)?"`
		Having   *Expression  `parser:"('HAVING' @@)?"`
	}

	// SelectItem distinguishes a bare `*`, a qualified `t.*`, and a scalar
	// expression (with an optional explicit alias) in that priority order
	// so `t.*` is never mis-parsed as a column reference named `t`
	// followed by a dangling `.*`.
	SelectItem struct {
		Star          bool           `parser:"( @'*'"`
		QualifiedStar *QualifiedStar `parser:"| @@"`
		Expr          *SelectExpr    `parser:"| @@ )"`
	}

	QualifiedStar struct {
		Parts []NamePart `parser:"(@@ '.')+"`
		Star  string     `parser:"'*'"`
	}

	// SelectExpr requires an explicit AS for its alias — this grammar
	// never infers an alias from a bare trailing identifier, which would
	// otherwise need to be disambiguated from the start of the next
	// select item or clause keyword.
	SelectExpr struct {
		Value Expression `parser:"@@"`
		Alias *string    `parser:"('AS' @Ident)?"`
	}

	FromClause struct {
		From   string      `parser:"'FROM'"`
		Tables []TableExpr `parser:"@@ (',' @@)*"`
	}

	TableExpr struct {
		Primary TablePrimary `parser:"@@"`
		Joins   []JoinClause `parser:"@@*"`
	}

	JoinClause struct {
		Type      *JoinType      `parser:"@@?"`
		Join      string         `parser:"'JOIN'"`
		Table     TablePrimary   `parser:"@@"`
		Condition *JoinCondition `parser:"@@?"`
	}

	JoinType struct {
		Inner bool `parser:"( @'INNER'"`
		Left  bool `parser:"| @'LEFT' 'OUTER'?"`
		Right bool `parser:"| @'RIGHT' 'OUTER'?"`
		Full  bool `parser:"| @'FULL' 'OUTER'?"`
		Cross bool `parser:"| @'CROSS' )"`
	}

	JoinCondition struct {
		On    *Expression `parser:"( 'ON' @@"`
		Using []string    `parser:"| 'USING' '(' @Ident (',' @Ident)* ')' )"`
	}

	// TablePrimary enforces structurally that only Name (a plain, possibly
	// qualified table name) ever yields a TableReference during
	// extraction. Unnest never carries a QualifiedName at all, and
	// Paren's Query may bottom out in a ValuesClause that likewise
	// carries none.
	TablePrimary struct {
		Unnest *UnnestRef    `parser:"( @@"`
		Paren  *ParenTable   `parser:"| @@"`
		Name   *TableNameRef `parser:"| @@ )"`
	}

	UnnestRef struct {
		Unnest     string       `parser:"'UNNEST'"`
		LParen     string       `parser:"'('"`
		Args       []Expression `parser:"@@ (',' @@)*"`
		RParen     string       `parser:"')'"`
		Ordinality bool         `parser:"( 'WITH' @'ORDINALITY' )?"`
		Alias      *TableAlias  `parser:"@@?"`
	}

	ParenTable struct {
		LParen string      `parser:"'('"`
		Query  Query       `parser:"@@"`
		RParen string      `parser:"')'"`
		Alias  *TableAlias `parser:"@@?"`
	}

	TableNameRef struct {
		Name  QualifiedName `parser:"@@"`
		Alias *TableAlias   `parser:"@@?"`
	}

	// TableAlias accepts both an explicit `AS alias` and Trino's implicit
	// `FROM t alias` form: AS is optional, the alias name is not. Because
	// every reserved word is lexed as a distinct Keyword token (never
	// Ident, see lexer.go), a bare trailing identifier can only ever be an
	// alias here — it can't be mistaken for the JOIN/WHERE/GROUP/etc. that
	// would otherwise follow a table reference with no alias at all.
	TableAlias struct {
		As      string   `parser:"'AS'?"`
		Name    string   `parser:"@Ident"`
		Columns []string `parser:"('(' @Ident (',' @Ident)* ')')?"`
	}

	ValuesClause struct {
		Values string      `parser:"'VALUES'"`
		Rows   []ValuesRow `parser:"@@ (',' @@)*"`
	}

	ValuesRow struct {
		LParen string       `parser:"'('"`
		Exprs  []Expression `parser:"@@ (',' @@)*"`
		RParen string       `parser:"')'"`
	}

	OrderByColumn struct {
		Expr       Expression `parser:"@@"`
		Direction  *string    `parser:"@('ASC' | 'DESC')?"`
		NullsOrder *string    `parser:"('NULLS' @('FIRST' | 'LAST'))?"`
	}
)
