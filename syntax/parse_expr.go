package syntax

import (
	"strconv"

	"arcc/ast"
	"arcc/report"
)

// Enumeration of binding precedences from lowest to highest.
const (
	precLowest = iota
	precOr
	precAnd
	precEquals
	precCompare
	precSum
	precProduct
	precPower
	precPrefix
	precPostfix
)

// precedences maps infix token kinds to their binding precedence.
var precedences = map[int]int{
	TOK_LOR:      precOr,
	TOK_LAND:     precAnd,
	TOK_EQ:       precEquals,
	TOK_NEQ:      precEquals,
	TOK_LT:       precCompare,
	TOK_GT:       precCompare,
	TOK_LTEQ:     precCompare,
	TOK_GTEQ:     precCompare,
	TOK_PLUS:     precSum,
	TOK_MINUS:    precSum,
	TOK_STAR:     precProduct,
	TOK_DIV:      precProduct,
	TOK_MOD:      precProduct,
	TOK_POW:      precPower,
	TOK_LPAREN:   precPostfix,
	TOK_LBRACKET: precPostfix,
	TOK_DOT:      precPostfix,
}

// binaryOps maps binary operator token kinds to AST operators.
var binaryOps = map[int]int{
	TOK_PLUS:  ast.OpAdd,
	TOK_MINUS: ast.OpSub,
	TOK_STAR:  ast.OpMul,
	TOK_DIV:   ast.OpDiv,
	TOK_MOD:   ast.OpMod,
	TOK_POW:   ast.OpPow,
	TOK_GT:    ast.OpGt,
	TOK_LT:    ast.OpGt,
	TOK_GTEQ:  ast.OpGtEq,
	TOK_LTEQ:  ast.OpLtEq,
	TOK_EQ:    ast.OpEq,
	TOK_NEQ:   ast.OpNotEq,
	TOK_LAND:  ast.OpAnd,
	TOK_LOR:   ast.OpOr,
}

// parseExpr parses an expression at the lowest precedence.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseExprPrec(precLowest)
}

// parseExprPrec parses an expression whose infix operators all bind tighter
// than the given precedence.
func (p *Parser) parseExprPrec(prec int) ast.Expr {
	prefix, ok := p.prefixParsers[p.tok.Kind]
	if !ok {
		panic(report.RaiseNoPrefix(p.tok.Span, p.tokText()))
	}

	return p.parseInfixExprs(prefix(), prec)
}

// parseInfixExprs applies infix parse functions to an already parsed left
// operand for as long as the next operator binds tighter than prec.
func (p *Parser) parseInfixExprs(left ast.Expr, prec int) ast.Expr {
	for prec < precedences[p.tok.Kind] {
		left = p.infixParsers[p.tok.Kind](left)
	}

	return left
}

// -----------------------------------------------------------------------------

// binary_expr := expr binary_op expr ;
//
// `^` is right associative.  `a < b` is parsed as `b > a`.
func (p *Parser) parseBinaryOp(left ast.Expr) ast.Expr {
	opTok := p.tok
	p.next()

	prec := precedences[opTok.Kind]
	if opTok.Kind == TOK_POW {
		prec--
	}

	right := p.parseExprPrec(prec)
	base := ast.NewASTBaseOver(left.Span(), right.Span())

	switch opTok.Kind {
	case TOK_LAND, TOK_LOR:
		return &ast.Logical{ASTBase: base, Op: binaryOps[opTok.Kind], Left: left, Right: right}
	case TOK_LT:
		return &ast.Binary{ASTBase: base, Op: ast.OpGt, Left: right, Right: left}
	default:
		return &ast.Binary{ASTBase: base, Op: binaryOps[opTok.Kind], Left: left, Right: right}
	}
}

// call := expr '(' [expr_list] ')' ;
func (p *Parser) parseCall(callee ast.Expr) ast.Expr {
	args := p.parseArgs()

	return &ast.Call{
		ASTBase: ast.NewASTBaseOver(callee.Span(), p.lookbehind.Span),
		Callee:  callee,
		Args:    args,
	}
}

// index := expr '[' expr ']' ;
func (p *Parser) parseIndex(target ast.Expr) ast.Expr {
	p.want(TOK_LBRACKET)
	index := p.parseExpr()
	endSpan := p.want(TOK_RBRACKET).Span

	return &ast.Index{
		ASTBase: ast.NewASTBaseOver(target.Span(), endSpan),
		Target:  target,
		Index:   index,
	}
}

// dot := expr '.' IDENT ['(' [expr_list] ')'] ;
func (p *Parser) parseDot(target ast.Expr) ast.Expr {
	p.want(TOK_DOT)
	nameTok := p.want(TOK_IDENT)

	if p.has(TOK_LPAREN) {
		args := p.parseArgs()

		return &ast.MethodCall{
			ASTBase:  ast.NewASTBaseOver(target.Span(), p.lookbehind.Span),
			Target:   target,
			Name:     nameTok.Value,
			NameSpan: nameTok.Span,
			Args:     args,
		}
	}

	return &ast.Field{
		ASTBase:  ast.NewASTBaseOver(target.Span(), nameTok.Span),
		Target:   target,
		Name:     nameTok.Value,
		NameSpan: nameTok.Span,
	}
}

// args := '(' [expr {',' expr}] ')' ;
func (p *Parser) parseArgs() []ast.Expr {
	p.want(TOK_LPAREN)

	var args []ast.Expr
	for !p.has(TOK_RPAREN) {
		args = append(args, p.parseExpr())

		if !p.has(TOK_COMMA) {
			break
		}

		p.next()
	}

	p.want(TOK_RPAREN)
	return args
}

// -----------------------------------------------------------------------------

func (p *Parser) parseIntLit() ast.Expr {
	tok := p.want(TOK_INTLIT)

	value, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil {
		panic(report.RaiseSyntax(tok.Span, "", "integer literal `%s` is out of range", tok.Value))
	}

	return &ast.IntLit{ASTBase: ast.NewASTBaseOn(tok.Span), Value: value, Text: tok.Value}
}

func (p *Parser) parseFloatLit() ast.Expr {
	tok := p.want(TOK_FLOATLIT)

	value, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil {
		panic(report.RaiseSyntax(tok.Span, "", "float literal `%s` is out of range", tok.Value))
	}

	return &ast.FloatLit{ASTBase: ast.NewASTBaseOn(tok.Span), Value: value, Text: tok.Value}
}

func (p *Parser) parseStringLit() ast.Expr {
	tok := p.want(TOK_STRINGLIT)
	return &ast.StringLit{ASTBase: ast.NewASTBaseOn(tok.Span), Value: tok.Value}
}

func (p *Parser) parseBoolLit() ast.Expr {
	tok := p.tok
	p.next()
	return &ast.BoolLit{ASTBase: ast.NewASTBaseOn(tok.Span), Value: tok.Kind == TOK_TRUE}
}

// ident_expr := IDENT ['::' IDENT] ;
func (p *Parser) parseIdentOrModuleAccess() ast.Expr {
	tok := p.want(TOK_IDENT)

	if p.has(TOK_DCOLON) {
		p.next()
		memberTok := p.want(TOK_IDENT)

		return &ast.ModuleAccess{
			ASTBase: ast.NewASTBaseOver(tok.Span, memberTok.Span),
			Module:  tok.Value,
			Member:  memberTok.Value,
		}
	}

	return &ast.Ident{ASTBase: ast.NewASTBaseOn(tok.Span), Name: tok.Value}
}

// group := '(' expr ')' ;
func (p *Parser) parseGroup() ast.Expr {
	openTok := p.want(TOK_LPAREN)
	expr := p.parseExpr()
	closeTok := p.want(TOK_RPAREN)

	p.lastGroupOpen, p.lastGroupClose = openTok, closeTok
	return expr
}

// array_lit := '[' [expr {',' expr} [',']] ']' ;
func (p *Parser) parseArrayLit() ast.Expr {
	startSpan := p.want(TOK_LBRACKET).Span

	var elems []ast.Expr
	for !p.has(TOK_RBRACKET) {
		elems = append(elems, p.parseExpr())

		if !p.has(TOK_COMMA) {
			break
		}

		p.next()
	}

	endSpan := p.want(TOK_RBRACKET).Span
	return &ast.ArrayLit{ASTBase: ast.NewASTBaseOver(startSpan, endSpan), Elems: elems}
}

// hash_lit := '{' [hash_entry {',' hash_entry} [',']] '}' ;
// hash_entry := (IDENT | STRINGLIT) ':' expr ;
func (p *Parser) parseHashLit() ast.Expr {
	startSpan := p.want(TOK_LBRACE).Span

	hl := &ast.HashLit{}
	seen := make(map[string]struct{})
	for !p.has(TOK_RBRACE) {
		if !p.has(TOK_IDENT) && !p.has(TOK_STRINGLIT) {
			panic(report.RaiseUnexpected(p.tok.Span, "hashmap key", p.tokText()))
		}

		keyTok := p.tok
		p.next()

		if _, ok := seen[keyTok.Value]; ok {
			panic(report.RaiseSyntax(keyTok.Span, "", "duplicate hashmap key: `%s`", keyTok.Value))
		}
		seen[keyTok.Value] = struct{}{}

		p.want(TOK_COLON)
		hl.Keys = append(hl.Keys, keyTok.Value)
		hl.Values = append(hl.Values, p.parseExpr())

		if !p.has(TOK_COMMA) {
			break
		}

		p.next()
	}

	endSpan := p.want(TOK_RBRACE).Span
	hl.ASTBase = ast.NewASTBaseOver(startSpan, endSpan)
	return hl
}

// prefix_expr := ('-' | '!') expr ;
func (p *Parser) parsePrefixOp() ast.Expr {
	opTok := p.tok
	p.next()

	operand := p.parseExprPrec(precPrefix)

	op := ast.OpNeg
	if opTok.Kind == TOK_NOT {
		op = ast.OpNot
	}

	return &ast.Prefix{
		ASTBase: ast.NewASTBaseOver(opTok.Span, operand.Span()),
		Op:      op,
		Operand: operand,
	}
}
