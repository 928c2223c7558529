package syntax

import (
	"arcc/ast"
)

// class_decl := 'class' IDENT field_body ;
func (p *Parser) parseClassDecl() *ast.ClassDecl {
	startSpan := p.want(TOK_CLASS).Span
	nameTok := p.want(TOK_IDENT)
	fields := p.parseFieldBody()

	return &ast.ClassDecl{
		ASTBase: ast.NewASTBaseOver(startSpan, p.lookbehind.Span),
		Name:    nameTok.Value,
		Fields:  fields,
	}
}

// extends_decl := 'extends' IDENT field_body ;
func (p *Parser) parseExtendsDecl() *ast.ExtendDecl {
	startSpan := p.want(TOK_EXTENDS).Span
	nameTok := p.want(TOK_IDENT)
	fields := p.parseFieldBody()

	return &ast.ExtendDecl{
		ASTBase: ast.NewASTBaseOver(startSpan, p.lookbehind.Span),
		Name:    nameTok.Value,
		Fields:  fields,
	}
}

// field_body := '{' {field [';']} '}' ;
// field := [type_label] IDENT ':=' expr ;
func (p *Parser) parseFieldBody() []*ast.FieldDecl {
	p.want(TOK_LBRACE)

	p.depth++
	defer func() { p.depth-- }()

	var fields []*ast.FieldDecl
	for !p.has(TOK_RBRACE) {
		var typ *ast.TypeExpr
		if p.startsTypedName() {
			typ = p.parseTypeLabel()
		}

		nameTok := p.want(TOK_IDENT)
		p.want(TOK_DECLARE)
		init := p.parseExpr()

		field := &ast.FieldDecl{
			ASTBase: ast.NewASTBaseOver(nameTok.Span, init.Span()),
			Name:    nameTok.Value,
			Type:    typ,
			Init:    init,
		}

		if typ != nil {
			field.ASTBase = ast.NewASTBaseOver(typ.Span(), init.Span())
		}

		fields = append(fields, field)

		if p.has(TOK_SEMI) {
			p.next()
		}
	}

	p.want(TOK_RBRACE)
	return fields
}
