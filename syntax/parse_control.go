package syntax

import (
	"arcc/ast"
	"arcc/report"
)

// condition := expr ;
//
// parseCondition also reports whether the whole condition was wrapped in a
// single pair of parentheses.
func (p *Parser) parseCondition() (ast.Expr, bool) {
	startTok := p.tok
	cond := p.parseExpr()

	parenthesized := startTok.Kind == TOK_LPAREN &&
		p.lastGroupOpen == startTok &&
		p.lastGroupClose == p.lookbehind

	return cond, parenthesized
}

// if_expr := 'if' condition block {'else' 'if' condition block} ['else' block] ;
//
// Either every condition in the chain is parenthesized or none is.
func (p *Parser) parseIf() ast.Expr {
	startSpan := p.want(TOK_IF).Span

	cond, parenStyle := p.parseCondition()
	ifExpr := &ast.If{
		Branches: []*ast.CondBranch{{Cond: cond, Body: p.parseBlock()}},
	}

	for p.has(TOK_ELSE) {
		p.next()

		if !p.has(TOK_IF) {
			ifExpr.Else = p.parseBlock()
			break
		}

		p.next()
		cond, paren := p.parseCondition()
		if paren != parenStyle {
			note := "remove the parentheses around this condition"
			if parenStyle {
				note = "wrap this condition in parentheses"
			}

			panic(report.RaiseSyntax(cond.Span(), note, "inconsistent parentheses around conditions in if chain"))
		}

		ifExpr.Branches = append(ifExpr.Branches, &ast.CondBranch{Cond: cond, Body: p.parseBlock()})
	}

	ifExpr.ASTBase = ast.NewASTBaseOver(startSpan, p.lookbehind.Span)
	return ifExpr
}

// while_expr := 'while' condition block ;
func (p *Parser) parseWhile() ast.Expr {
	startSpan := p.want(TOK_WHILE).Span

	cond, _ := p.parseCondition()
	body := p.parseBlock()

	return &ast.While{
		ASTBase: ast.NewASTBaseOver(startSpan, body.Span()),
		Cond:    cond,
		Body:    body,
	}
}

// for_expr := 'for' IDENT ('from' expr 'to' expr | 'in' expr) block ;
func (p *Parser) parseFor() ast.Expr {
	startSpan := p.want(TOK_FOR).Span
	varTok := p.want(TOK_IDENT)

	switch p.tok.Kind {
	case TOK_FROM:
		p.next()
		from := p.parseExpr()
		p.want(TOK_TO)
		to := p.parseExpr()
		body := p.parseBlock()

		return &ast.ForRange{
			ASTBase: ast.NewASTBaseOver(startSpan, body.Span()),
			Var:     varTok.Value,
			From:    from,
			To:      to,
			Body:    body,
		}
	case TOK_IN:
		p.next()
		iter := p.parseExpr()
		body := p.parseBlock()

		return &ast.ForEach{
			ASTBase: ast.NewASTBaseOver(startSpan, body.Span()),
			Var:     varTok.Value,
			Iter:    iter,
			Body:    body,
		}
	}

	panic(report.RaiseUnexpected(p.tok.Span, "`from` or `in`", p.tokText()))
}

// -----------------------------------------------------------------------------

// func_lit := 'fn' '(' [param {',' param}] ')' ['->' type_label] block ;
func (p *Parser) parseFuncLit() ast.Expr {
	startSpan := p.want(TOK_FN).Span
	p.want(TOK_LPAREN)

	fl := &ast.FuncLit{}
	for !p.has(TOK_RPAREN) {
		fl.Params = append(fl.Params, p.parseParam())

		if !p.has(TOK_COMMA) {
			break
		}

		p.next()
	}

	p.want(TOK_RPAREN)

	if p.has(TOK_ARROW) {
		p.next()
		fl.ReturnType = p.parseTypeLabel()
	}

	fl.Body = p.parseBlock()
	fl.ASTBase = ast.NewASTBaseOver(startSpan, fl.Body.Span())
	return fl
}

// param := [type_label] IDENT ;
func (p *Parser) parseParam() *ast.Param {
	var typ *ast.TypeExpr
	if p.startsTypedName() {
		typ = p.parseTypeLabel()
	}

	nameTok := p.want(TOK_IDENT)

	param := &ast.Param{
		ASTBase: ast.NewASTBaseOn(nameTok.Span),
		Name:    nameTok.Value,
		Type:    typ,
	}

	if typ != nil {
		param.ASTBase = ast.NewASTBaseOver(typ.Span(), nameTok.Span)
	}

	return param
}
