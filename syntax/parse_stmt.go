package syntax

import (
	"arcc/ast"
	"arcc/report"
)

// stmt := 'public' (var_decl | const_decl | class_decl)
//       | var_decl | const_decl | assign_stmt | return_stmt | 'break'
//       | import_stmt | class_decl | extends_decl | expr_stmt ;
func (p *Parser) parseStmt() ast.Stmt {
	switch p.tok.Kind {
	case TOK_PUBLIC:
		startSpan := p.want(TOK_PUBLIC).Span

		switch {
		case p.has(TOK_CLASS):
			cd := p.parseClassDecl()
			cd.Public = true
			return cd
		case p.has(TOK_CONST):
			vd := p.parseConstDecl()
			vd.Public = true
			return vd
		case isTypeKeyword(p.tok.Kind), p.has(TOK_IDENT):
			vd := p.parseVarDecl(nil)
			vd.Public = true
			return vd
		}

		panic(report.RaiseSyntax(
			startSpan,
			"only declarations and classes may be marked public",
			"expected a declaration after `public`",
		))
	case TOK_CONST:
		return p.parseConstDecl()
	case TOK_RETURN:
		return p.parseReturnStmt()
	case TOK_BREAK:
		return &ast.Break{ASTBase: ast.NewASTBaseOn(p.want(TOK_BREAK).Span)}
	case TOK_IMPORT:
		return p.parseImportStmt()
	case TOK_CLASS:
		return p.parseClassDecl()
	case TOK_EXTENDS:
		return p.parseExtendsDecl()
	case TOK_IDENT:
		switch p.ahead.Kind {
		case TOK_DECLARE, TOK_IDENT:
			return p.parseVarDecl(nil)
		case TOK_ASSIGN:
			return p.parseAssignStmt()
		case TOK_LBRACKET:
			// Either an array type label beginning a declaration or an index
			// expression: only the token after the `[` can tell.
			identTok := p.want(TOK_IDENT)
			if p.ahead.Kind == TOK_RBRACKET {
				return p.parseVarDecl(p.parseTypeSuffix(identTok))
			}

			ident := &ast.Ident{ASTBase: ast.NewASTBaseOn(identTok.Span), Name: identTok.Value}
			return p.parseExprStmt(p.parseInfixExprs(ident, precLowest))
		}
	default:
		if isTypeKeyword(p.tok.Kind) {
			return p.parseVarDecl(nil)
		}
	}

	return p.parseExprStmt(p.parseExpr())
}

// var_decl := [type_label] IDENT ':=' expr ;
//
// If the type label has already been parsed, it is passed in as typ.
func (p *Parser) parseVarDecl(typ *ast.TypeExpr) *ast.VarDecl {
	var startSpan *report.TextSpan
	if typ != nil {
		startSpan = typ.Span()
	} else if !p.has(TOK_IDENT) || p.ahead.Kind != TOK_DECLARE {
		typ = p.parseTypeLabel()
		startSpan = typ.Span()
	} else {
		startSpan = p.tok.Span
	}

	nameTok := p.want(TOK_IDENT)
	p.want(TOK_DECLARE)
	init := p.parseExpr()

	return &ast.VarDecl{
		ASTBase:  ast.NewASTBaseOver(startSpan, p.lookbehind.Span),
		Name:     nameTok.Value,
		NameSpan: nameTok.Span,
		Type:     typ,
		Init:     init,
	}
}

// const_decl := 'const' var_decl ;
func (p *Parser) parseConstDecl() *ast.VarDecl {
	startSpan := p.want(TOK_CONST).Span

	vd := p.parseVarDecl(nil)
	vd.Constant = true
	vd.ASTBase = ast.NewASTBaseOver(startSpan, vd.Span())
	return vd
}

// assign_stmt := IDENT '=' expr ;
func (p *Parser) parseAssignStmt() *ast.Assign {
	nameTok := p.want(TOK_IDENT)
	p.want(TOK_ASSIGN)
	value := p.parseExpr()

	return &ast.Assign{
		ASTBase:  ast.NewASTBaseOver(nameTok.Span, value.Span()),
		Name:     nameTok.Value,
		NameSpan: nameTok.Span,
		Value:    value,
	}
}

// expr_stmt := expr ['=' expr] ;
//
// The left side of an assignment must be an index or field access.
func (p *Parser) parseExprStmt(expr ast.Expr) ast.Stmt {
	if !p.has(TOK_ASSIGN) {
		return &ast.ExprStmt{ASTBase: ast.NewASTBaseOn(expr.Span()), Expr: expr}
	}

	switch expr.(type) {
	case *ast.Index, *ast.Field:
	default:
		panic(report.RaiseSyntax(
			p.tok.Span,
			"only variables, indices and fields can be assigned to",
			"invalid assignment target",
		))
	}

	p.next()
	value := p.parseExpr()

	return &ast.IndexAssign{
		ASTBase: ast.NewASTBaseOver(expr.Span(), value.Span()),
		Target:  expr,
		Value:   value,
	}
}

// return_stmt := 'return' [expr] ;
func (p *Parser) parseReturnStmt() *ast.Return {
	startSpan := p.want(TOK_RETURN).Span

	switch p.tok.Kind {
	case TOK_SEMI, TOK_RBRACE, TOK_EOF:
		return &ast.Return{ASTBase: ast.NewASTBaseOn(startSpan)}
	}

	value := p.parseExpr()
	return &ast.Return{
		ASTBase: ast.NewASTBaseOver(startSpan, value.Span()),
		Value:   value,
	}
}

// import_stmt := 'import' STRINGLIT 'as' IDENT ;
func (p *Parser) parseImportStmt() *ast.Import {
	startTok := p.want(TOK_IMPORT)
	if p.depth > 0 {
		panic(report.RaiseSyntax(
			startTok.Span,
			"move the import to the top level of the file",
			"imports cannot occur inside a block",
		))
	}

	pathTok := p.want(TOK_STRINGLIT)
	p.want(TOK_AS)
	aliasTok := p.want(TOK_IDENT)

	return &ast.Import{
		ASTBase:   ast.NewASTBaseOver(startTok.Span, aliasTok.Span),
		Path:      pathTok.Value,
		Alias:     aliasTok.Value,
		AliasSpan: aliasTok.Span,
	}
}

// -----------------------------------------------------------------------------

// block := '{' {stmt [';']} '}' ;
func (p *Parser) parseBlock() *ast.Block {
	startSpan := p.want(TOK_LBRACE).Span

	p.depth++
	defer func() { p.depth-- }()

	var stmts []ast.Stmt
	for !p.has(TOK_RBRACE) {
		if p.has(TOK_EOF) {
			p.rejectExpected(TOK_RBRACE)
		}

		stmts = append(stmts, p.parseStmt())

		if p.has(TOK_SEMI) {
			p.next()
		}
	}

	endSpan := p.want(TOK_RBRACE).Span
	return &ast.Block{
		ASTBase: ast.NewASTBaseOver(startSpan, endSpan),
		Stmts:   stmts,
	}
}

// type_label := ('int' | 'float' | 'string' | 'bool' | 'var' | 'void' | IDENT) {'[' ']'} ;
func (p *Parser) parseTypeLabel() *ast.TypeExpr {
	if !isTypeKeyword(p.tok.Kind) && !p.has(TOK_IDENT) {
		panic(report.RaiseUnexpected(p.tok.Span, "type label", p.tokText()))
	}

	nameTok := p.tok
	p.next()

	return p.parseTypeSuffix(nameTok)
}

// parseTypeSuffix parses the array suffixes of a type label whose name token
// has already been consumed.
func (p *Parser) parseTypeSuffix(nameTok *Token) *ast.TypeExpr {
	depth := 0
	for p.has(TOK_LBRACKET) {
		p.next()
		p.want(TOK_RBRACKET)
		depth++
	}

	return &ast.TypeExpr{
		ASTBase: ast.NewASTBaseOver(nameTok.Span, p.lookbehind.Span),
		Name:    nameTok.Value,
		Depth:   depth,
	}
}

// startsTypedName returns whether the parser is positioned on a type label
// followed by a name (as opposed to just a name).
func (p *Parser) startsTypedName() bool {
	if isTypeKeyword(p.tok.Kind) {
		return true
	}

	return p.has(TOK_IDENT) && (p.ahead.Kind == TOK_IDENT || p.ahead.Kind == TOK_LBRACKET)
}
