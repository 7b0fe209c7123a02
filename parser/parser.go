/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

// Package parser builds an ast.Program from pseudocode source by
// recursive descent, following the same precedence-climbing shape as
// the expression parser this dialect was generalized from: each
// binding level is its own method, from boolean "or" down through
// comparisons, addition, multiplication, and postfix access.
package parser

import (
	"fmt"
	"strconv"

	"github.com/google/complexitron/ast"
	"github.com/google/complexitron/lexer"
)

// ParseError describes one structural violation found while parsing.
// The parser stops consuming statements once an error is recorded, and
// Parse returns a nil AST together with the errors whenever any are present.
type ParseError struct {
	Line    int
	Column  int
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// Parser turns a token stream into an AST. It never panics on
// malformed input: every failure path returns a ParseError.
type Parser struct {
	lex    *lexer.Lexer
	cur    lexer.Token
	errors []ParseError
}

// New creates a Parser over the given source text.
func New(source string) *Parser {
	p := &Parser{lex: lexer.New(source)}
	p.advance()
	return p
}

// Parse parses a full program. On success it returns (ast, nil). On
// failure it returns (nil, errors) with a best-effort diagnostic list;
// it never returns a partially built AST.
func Parse(source string) (*ast.Program, []ParseError) {
	p := New(source)
	prog := p.parseProgram()
	if len(p.errors) > 0 {
		return nil, p.errors
	}
	return prog, nil
}

func (p *Parser) advance() {
	tok, err := p.lex.NextToken()
	if err != nil {
		p.errors = append(p.errors, ParseError{Message: err.Error()})
		p.cur = lexer.Token{Type: lexer.EOF}
		return
	}
	p.cur = tok
}

func (p *Parser) fail(format string, args ...any) {
	p.errors = append(p.errors, ParseError{
		Line: p.cur.Line, Column: p.cur.Column,
		Message: fmt.Sprintf(format, args...),
	})
}

func (p *Parser) expect(t lexer.TokenType, what string) lexer.Token {
	tok := p.cur
	if p.cur.Type != t {
		p.fail("expected %s, got %q", what, p.cur.Value)
		return tok
	}
	p.advance()
	return tok
}

func (p *Parser) loc() ast.SrcLoc {
	return ast.SrcLoc{Line: p.cur.Line, Column: p.cur.Column}
}

// --- program / declarations ---

func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{}
	for p.cur.Type != lexer.EOF && len(p.errors) == 0 {
		switch p.cur.Type {
		case lexer.CLASS:
			prog.Body = append(prog.Body, p.parseClassDecl())
		case lexer.IDENT:
			if p.looksLikeProcDecl() {
				prog.Body = append(prog.Body, p.parseProcDecl())
				continue
			}
			s := p.parseStmt()
			if s != nil {
				prog.Body = append(prog.Body, ast.AsItem(s))
			}
		default:
			s := p.parseStmt()
			if s != nil {
				prog.Body = append(prog.Body, ast.AsItem(s))
			}
		}
	}
	if len(p.errors) > 0 {
		return nil
	}
	return prog
}

// looksLikeProcDecl reports whether the current IDENT begins a
// procedure definition (name immediately followed by a parameter
// list), rather than an assignment or bare expression statement.
func (p *Parser) looksLikeProcDecl() bool {
	// A single lookahead token suffices: only proc_decl places '('
	// directly after a bare top-level identifier; every statement
	// form that can start with IDENT (assign, object decl, expr_stmt)
	// does not.
	save := *p.lex
	savedCur := p.cur
	p.advance()
	isParen := p.cur.Type == lexer.LPAREN
	*p.lex = save
	p.cur = savedCur
	return isParen
}

func (p *Parser) parseClassDecl() ast.Item {
	loc := p.loc()
	p.expect(lexer.CLASS, "'class'")
	name := p.expect(lexer.IDENT, "class name").Value
	p.expect(lexer.BEGIN, "'begin'")
	var attrs []string
	for p.cur.Type == lexer.IDENT {
		attrs = append(attrs, p.cur.Value)
		p.advance()
		if p.cur.Type == lexer.COMMA {
			p.advance()
		}
	}
	p.expect(lexer.END, "'end'")
	return &ast.Class{Name: name, Attributes: attrs, Loc: loc}
}

func (p *Parser) parseProcDecl() ast.Item {
	loc := p.loc()
	name := p.expect(lexer.IDENT, "procedure name").Value
	p.expect(lexer.LPAREN, "'('")
	var params []ast.Param
	if p.cur.Type != lexer.RPAREN {
		params = append(params, p.parseParam())
		for p.cur.Type == lexer.COMMA {
			p.advance()
			params = append(params, p.parseParam())
		}
	}
	p.expect(lexer.RPAREN, "')'")
	body := p.parseBlock()
	return &ast.Proc{Name: name, Params: params, Body: body, Loc: loc}
}

func (p *Parser) parseParam() ast.Param {
	name := p.expect(lexer.IDENT, "parameter name").Value
	param := ast.Param{Name: name}
	if p.cur.Type == lexer.LBRACKET {
		p.advance()
		param.IsSlice = true
		param.LoBound = p.parseExpr()
		p.expect(lexer.DOTDOT, "'..'")
		param.HiBound = p.parseExpr()
		p.expect(lexer.RBRACKET, "']'")
	}
	return param
}

// --- statements ---

func (p *Parser) parseBlock() *ast.Block {
	loc := p.loc()
	p.expect(lexer.BEGIN, "'begin'")
	b := &ast.Block{L: loc}
	for p.cur.Type != lexer.END && p.cur.Type != lexer.EOF && len(p.errors) == 0 {
		if s := p.parseStmt(); s != nil {
			b.Stmts = append(b.Stmts, s)
		}
	}
	p.expect(lexer.END, "'end'")
	return b
}

// blockOrStmt tolerates either a full begin...end block or a single
// bare statement as a compound statement's body.
func (p *Parser) blockOrStmt() *ast.Block {
	if p.cur.Type == lexer.BEGIN {
		return p.parseBlock()
	}
	loc := p.loc()
	s := p.parseStmt()
	if s == nil {
		return &ast.Block{L: loc}
	}
	return &ast.Block{Stmts: []ast.Stmt{s}, L: loc}
}

func (p *Parser) parseStmt() ast.Stmt {
	loc := p.loc()
	switch p.cur.Type {
	case lexer.BEGIN:
		return p.parseBlock()
	case lexer.FOR:
		return p.parseFor(loc)
	case lexer.WHILE:
		return p.parseWhile(loc)
	case lexer.REPEAT:
		return p.parseRepeat(loc)
	case lexer.IF:
		return p.parseIf(loc)
	case lexer.CALL:
		return p.parseCallStmt(loc)
	case lexer.RETURN:
		return p.parseReturn(loc)
	case lexer.IDENT:
		return p.parseIdentLedStmt(loc)
	default:
		p.fail("unexpected token %q at start of statement", p.cur.Value)
		p.advance()
		return nil
	}
}

func (p *Parser) parseFor(loc ast.SrcLoc) ast.Stmt {
	p.advance() // 'for'
	varName := p.expect(lexer.IDENT, "loop variable").Value
	p.expectArrow()
	start := p.parseExpr()
	p.expect(lexer.TO, "'to'")
	end := p.parseExpr()
	var step ast.Expr
	if p.cur.Type == lexer.STEP {
		p.advance()
		step = p.parseExpr()
	}
	p.expect(lexer.DO, "'do'")
	body := p.blockOrStmt()
	return &ast.For{Var: varName, Start: start, End: end, Step: step, Inclusive: true, Body: body, L: loc}
}

func (p *Parser) parseWhile(loc ast.SrcLoc) ast.Stmt {
	p.advance() // 'while'
	p.expect(lexer.LPAREN, "'('")
	cond := p.parseExpr()
	p.expect(lexer.RPAREN, "')'")
	p.expect(lexer.DO, "'do'")
	body := p.blockOrStmt()
	return &ast.While{Cond: cond, Body: body, L: loc}
}

func (p *Parser) parseRepeat(loc ast.SrcLoc) ast.Stmt {
	p.advance() // 'repeat'
	var stmts []ast.Stmt
	for p.cur.Type != lexer.UNTIL && p.cur.Type != lexer.EOF && len(p.errors) == 0 {
		if s := p.parseStmt(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.expect(lexer.UNTIL, "'until'")
	p.expect(lexer.LPAREN, "'('")
	until := p.parseExpr()
	p.expect(lexer.RPAREN, "')'")
	return &ast.Repeat{Body: stmts, Until: until, L: loc}
}

func (p *Parser) parseIf(loc ast.SrcLoc) ast.Stmt {
	p.advance() // 'if'
	p.expect(lexer.LPAREN, "'('")
	cond := p.parseExpr()
	p.expect(lexer.RPAREN, "')'")
	p.expect(lexer.THEN, "'then'")
	thenBlock := p.blockOrStmt()
	var elseBlock *ast.Block
	if p.cur.Type == lexer.ELSE {
		p.advance()
		elseBlock = p.blockOrStmt()
	}
	return &ast.If{Cond: cond, Then: thenBlock, Else: elseBlock, L: loc}
}

func (p *Parser) parseCallStmt(loc ast.SrcLoc) ast.Stmt {
	p.advance() // 'CALL'
	name := p.expect(lexer.IDENT, "procedure name").Value
	p.expect(lexer.LPAREN, "'('")
	args := p.parseArgs()
	p.expect(lexer.RPAREN, "')'")
	return &ast.Call{Name: name, Args: args, L: loc}
}

func (p *Parser) parseReturn(loc ast.SrcLoc) ast.Stmt {
	p.advance() // 'return'
	var e ast.Expr
	if !p.atStmtTerminator() {
		e = p.parseExpr()
	}
	return &ast.Return{ExprV: e, L: loc}
}

// parseIdentLedStmt disambiguates assign, object declarations
// ("ClassName varName"), and bare expression statements, all of
// which start with a plain identifier.
func (p *Parser) parseIdentLedStmt(loc ast.SrcLoc) ast.Stmt {
	if p.nextIsBareIdent() {
		className := p.cur.Value
		p.advance()
		varName := p.expect(lexer.IDENT, "variable name").Value
		return &ast.ObjectDecl{ClassName: className, VarName: varName, L: loc}
	}
	target := p.parsePostfix()
	if p.cur.Type == lexer.ARROW {
		p.advance()
		lv, ok := target.(ast.LValue)
		if !ok {
			p.fail("left-hand side of assignment is not assignable")
			return nil
		}
		expr := p.parseExpr()
		return &ast.Assign{Target: lv, ExprV: expr, L: loc}
	}
	return &ast.ExprStmt{ExprV: target, L: loc}
}

// nextIsBareIdent reports whether the token after the current IDENT
// is itself a plain IDENT with nothing else between them — the shape
// of an object declaration, "ClassName varName".
func (p *Parser) nextIsBareIdent() bool {
	save := *p.lex
	savedCur := p.cur
	p.advance()
	isIdent := p.cur.Type == lexer.IDENT
	*p.lex = save
	p.cur = savedCur
	return isIdent
}

func (p *Parser) atStmtTerminator() bool {
	switch p.cur.Type {
	case lexer.END, lexer.ELSE, lexer.UNTIL, lexer.EOF:
		return true
	}
	return false
}

func (p *Parser) expectArrow() {
	if p.cur.Type != lexer.ARROW {
		p.fail("expected '<-', got %q", p.cur.Value)
		return
	}
	p.advance()
}

func (p *Parser) parseArgs() []ast.Expr {
	var args []ast.Expr
	if p.cur.Type == lexer.RPAREN {
		return args
	}
	args = append(args, p.parseExpr())
	for p.cur.Type == lexer.COMMA {
		p.advance()
		args = append(args, p.parseExpr())
	}
	return args
}

// --- expressions, precedence-climbing from loosest to tightest ---

func (p *Parser) parseExpr() ast.Expr { return p.parseOr() }

func (p *Parser) parseOr() ast.Expr {
	left := p.parseAnd()
	for p.cur.Type == lexer.OR {
		loc := p.loc()
		p.advance()
		right := p.parseAnd()
		left = &ast.Bin{Op: ast.OpOr, Left: left, Right: right, L: loc}
	}
	return left
}

func (p *Parser) parseAnd() ast.Expr {
	left := p.parseNot()
	for p.cur.Type == lexer.AND {
		loc := p.loc()
		p.advance()
		right := p.parseNot()
		left = &ast.Bin{Op: ast.OpAnd, Left: left, Right: right, L: loc}
	}
	return left
}

func (p *Parser) parseNot() ast.Expr {
	if p.cur.Type == lexer.NOT {
		loc := p.loc()
		p.advance()
		return &ast.Unary{Op: "not", ExprV: p.parseNot(), L: loc}
	}
	return p.parseComparison()
}

var relOps = map[lexer.TokenType]ast.BinOp{
	lexer.EQ: ast.OpEq, lexer.NE: ast.OpNe,
	lexer.LT: ast.OpLt, lexer.LE: ast.OpLe,
	lexer.GT: ast.OpGt, lexer.GE: ast.OpGe,
}

func (p *Parser) parseComparison() ast.Expr {
	left := p.parseAddSub()
	if op, ok := relOps[p.cur.Type]; ok {
		loc := p.loc()
		p.advance()
		right := p.parseAddSub()
		return &ast.Bin{Op: op, Left: left, Right: right, L: loc}
	}
	return left
}

func (p *Parser) parseAddSub() ast.Expr {
	left := p.parseMulDiv()
	for p.cur.Type == lexer.PLUS || p.cur.Type == lexer.MINUS {
		loc := p.loc()
		op := ast.OpAdd
		if p.cur.Type == lexer.MINUS {
			op = ast.OpSub
		}
		p.advance()
		right := p.parseMulDiv()
		left = &ast.Bin{Op: op, Left: left, Right: right, L: loc}
	}
	return left
}

func (p *Parser) parseMulDiv() ast.Expr {
	left := p.parseUnary()
	for p.cur.Type == lexer.STAR || p.cur.Type == lexer.SLASH || p.cur.Type == lexer.DIV || p.cur.Type == lexer.MOD {
		loc := p.loc()
		var op ast.BinOp
		switch p.cur.Type {
		case lexer.STAR:
			op = ast.OpMul
		case lexer.SLASH:
			op = ast.OpDiv
		case lexer.DIV:
			op = ast.OpDivInt
		case lexer.MOD:
			op = ast.OpMod
		}
		p.advance()
		right := p.parseUnary()
		left = &ast.Bin{Op: op, Left: left, Right: right, L: loc}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expr {
	if p.cur.Type == lexer.MINUS {
		loc := p.loc()
		p.advance()
		return &ast.Unary{Op: "-", ExprV: p.parseUnary(), L: loc}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expr {
	base := p.parsePrimary()
	for {
		switch p.cur.Type {
		case lexer.LBRACKET:
			loc := p.loc()
			p.advance()
			lv, ok := base.(ast.LValue)
			if !ok {
				p.fail("indexing a non-addressable expression")
				return base
			}
			first := p.parseSliceOrExpr()
			var indices []ast.Expr
			indices = append(indices, first)
			for p.cur.Type == lexer.COMMA {
				p.advance()
				indices = append(indices, p.parseSliceOrExpr())
			}
			p.expect(lexer.RBRACKET, "']'")
			base = &ast.Index{Base: lv, Indices: indices, L: loc}
		case lexer.DOT:
			loc := p.loc()
			p.advance()
			field := p.expect(lexer.IDENT, "field name").Value
			lv, ok := base.(ast.LValue)
			if !ok {
				p.fail("member access on a non-addressable expression")
				return base
			}
			base = &ast.Member{Base: lv, Field: field, L: loc}
		default:
			return base
		}
	}
}

// parseSliceOrExpr parses a single index or a lo..hi slice, both
// valid inside [...].
func (p *Parser) parseSliceOrExpr() ast.Expr {
	loc := p.loc()
	first := p.parseExpr()
	if p.cur.Type == lexer.DOTDOT {
		p.advance()
		hi := p.parseExpr()
		return &ast.Slice{Lo: first, Hi: hi, L: loc}
	}
	return first
}

func (p *Parser) parsePrimary() ast.Expr {
	loc := p.loc()
	switch p.cur.Type {
	case lexer.NUMBER:
		v, err := strconv.ParseFloat(p.cur.Value, 64)
		if err != nil {
			p.fail("invalid number %q", p.cur.Value)
		}
		p.advance()
		return &ast.Num{Value: v, L: loc}
	case lexer.TRUE:
		p.advance()
		return &ast.Bool{Value: true, L: loc}
	case lexer.FALSE:
		p.advance()
		return &ast.Bool{Value: false, L: loc}
	case lexer.LFLOOR:
		p.advance()
		e := p.parseExpr()
		p.expect(lexer.RFLOOR, "'⌋'")
		return &ast.Floor{ExprV: e, L: loc}
	case lexer.LCEIL:
		p.advance()
		e := p.parseExpr()
		p.expect(lexer.RCEIL, "'⌉'")
		return &ast.Ceil{ExprV: e, L: loc}
	case lexer.LPAREN:
		p.advance()
		e := p.parseExpr()
		p.expect(lexer.RPAREN, "')'")
		return e
	case lexer.IDENT:
		name := p.cur.Value
		p.advance()
		if p.cur.Type == lexer.LPAREN {
			p.advance()
			args := p.parseArgs()
			p.expect(lexer.RPAREN, "')'")
			if name == "ceil" {
				if len(args) == 1 {
					return &ast.Ceil{ExprV: args[0], L: loc}
				}
			}
			if name == "floor" {
				if len(args) == 1 {
					return &ast.Floor{ExprV: args[0], L: loc}
				}
			}
			return &ast.Call{Name: name, Args: args, L: loc}
		}
		return &ast.Var{Name: name, L: loc}
	default:
		p.fail("unexpected token %q in expression", p.cur.Value)
		p.advance()
		return &ast.Num{Value: 0, L: loc}
	}
}
