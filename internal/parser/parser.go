/*
Package parser implements a Pratt (top-down operator precedence) parser
that turns a token stream into an AST, using a prefix/infix function
table keyed by token kind. Every binary operator except &&/|| desugars
to a CallExpression over an operator identifier, so user-defined
operators and builtin operators parse and evaluate through the same
path.
*/
package parser

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/embertide/ember/internal/ast"
	"github.com/embertide/ember/internal/lexer"
	"github.com/embertide/ember/internal/srcpos"
	"github.com/embertide/ember/internal/token"
)

// Error is a parse error carrying the offending token's source location.
type Error struct {
	Message string
	Line    int
	Column  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Message, e.Line, e.Column)
}

// Precedence levels, ascending.
const (
	LOWEST = iota
	ANDOR
	EQUALS
	IDENTITY // if/match and bare literal contexts; carries no infix entries
	LESSGREATER
	COMPOSITION
	SUM
	PRODUCT
	CALL
	PREFIX
	INDEX
)

var precedences = map[token.Kind]int{
	token.AND:         ANDOR,
	token.OR:          ANDOR,
	token.EQ:          EQUALS,
	token.NE:          EQUALS,
	token.ASSIGN:      EQUALS,
	token.LT:          LESSGREATER,
	token.GT:          LESSGREATER,
	token.LE:          LESSGREATER,
	token.GE:          LESSGREATER,
	token.COMPOSE:     COMPOSITION,
	token.PIPELINE:    COMPOSITION,
	token.RANGE:       COMPOSITION,
	token.RANGE_INC:   COMPOSITION,
	token.PLUS:        SUM,
	token.MINUS:       SUM,
	token.STAR:        PRODUCT,
	token.SLASH:       PRODUCT,
	token.PERCENT:     PRODUCT,
	token.INFIX_IDENT:  PRODUCT,
	token.LPAREN:      CALL,
	token.LBRACKET:    INDEX,
}

type prefixParseFn func() ast.Expression
type infixParseFn func(left ast.Expression) ast.Expression

// Parser consumes a token stream and builds a Program, collecting errors
// rather than stopping at the first one.
type Parser struct {
	lx *lexer.Lexer

	curTok  token.Token
	peekTok token.Token

	errors []*Error

	prefixFns map[token.Kind]prefixParseFn
	infixFns  map[token.Kind]infixParseFn
}

// New creates a Parser over src, ready to Parse().
func New(src string) *Parser {
	p := &Parser{lx: lexer.New(src)}
	p.prefixFns = make(map[token.Kind]prefixParseFn)
	p.infixFns = make(map[token.Kind]infixParseFn)

	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.DECIMAL, p.parseDecimalLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.PLACEHOLDER_TOK, p.parsePlaceholder)
	p.registerPrefix(token.TRUE, p.parseBoolean)
	p.registerPrefix(token.FALSE, p.parseBoolean)
	p.registerPrefix(token.NIL, p.parseNil)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.LBRACKET, p.parseListLiteral)
	p.registerPrefix(token.LBRACE, p.parseSetLiteral)
	p.registerPrefix(token.HASH_BRACE, p.parseDictLiteral)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.BANG, p.parsePrefixExpression)
	p.registerPrefix(token.IF, p.parseIfExpression)
	p.registerPrefix(token.MATCH, p.parseMatchExpression)
	p.registerPrefix(token.PIPE, p.parseFunctionLiteral)
	// `||` lexes as a single OR token; in prefix (expression-start) position
	// it can only mean a zero-parameter function literal, never logical-or.
	p.registerPrefix(token.OR, p.parseEmptyParamFunctionLiteral)

	p.registerInfix(token.PLUS, p.parseOperatorCall)
	p.registerInfix(token.MINUS, p.parseOperatorCall)
	p.registerInfix(token.STAR, p.parseOperatorCall)
	p.registerInfix(token.SLASH, p.parseOperatorCall)
	p.registerInfix(token.PERCENT, p.parseOperatorCall)
	p.registerInfix(token.EQ, p.parseOperatorCall)
	p.registerInfix(token.NE, p.parseOperatorCall)
	p.registerInfix(token.LT, p.parseOperatorCall)
	p.registerInfix(token.GT, p.parseOperatorCall)
	p.registerInfix(token.LE, p.parseOperatorCall)
	p.registerInfix(token.GE, p.parseOperatorCall)
	p.registerInfix(token.COMPOSE, p.parseOperatorCall)
	p.registerInfix(token.PIPELINE, p.parsePipeline)
	p.registerInfix(token.INFIX_IDENT, p.parseBacktickInfixCall)
	p.registerInfix(token.RANGE, p.parseRangeLiteral)
	p.registerInfix(token.RANGE_INC, p.parseRangeLiteral)
	p.registerInfix(token.AND, p.parseLogicalExpression)
	p.registerInfix(token.OR, p.parseLogicalExpression)
	p.registerInfix(token.ASSIGN, p.parseAssignExpression)
	p.registerInfix(token.LPAREN, p.parseCallExpression)
	p.registerInfix(token.LBRACKET, p.parseIndexExpression)

	p.advance()
	p.advance()
	return p
}

func (p *Parser) registerPrefix(k token.Kind, fn prefixParseFn) { p.prefixFns[k] = fn }
func (p *Parser) registerInfix(k token.Kind, fn infixParseFn)   { p.infixFns[k] = fn }

// Errors returns every parse error collected during Parse.
func (p *Parser) Errors() []*Error { return p.errors }

func (p *Parser) addError(msg string, line, col int) {
	p.errors = append(p.errors, &Error{Message: msg, Line: line, Column: col})
}

func (p *Parser) advance() {
	p.curTok = p.peekTok
	p.peekTok = p.lx.NextToken()
	if err := p.lx.Err(); err != nil {
		p.addError(err.Message, err.Line, err.Column)
	}
}

func (p *Parser) curIs(k token.Kind) bool  { return p.curTok.Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.peekTok.Kind == k }

func (p *Parser) expectPeek(k token.Kind) bool {
	if p.peekIs(k) {
		p.advance()
		return true
	}
	p.addError(fmt.Sprintf("expected next token to be %s, got %s instead", k, p.peekTok.Kind), p.peekTok.Line, p.peekTok.Column)
	return false
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curTok.Kind]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekTok.Kind]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) loc() srcpos.Location {
	return srcpos.Location{Line: p.curTok.Line, Column: p.curTok.Column}
}

// Parse runs the parser to completion and returns the Program along with
// any collected errors. Semicolons are statement terminators but optional
// immediately before `}` or EOF; each parse* function leaves
// curTok on the last token it consumed, so the statement loops advance
// once more before re-checking for a terminator.
func (p *Parser) Parse() (*ast.Program, []*Error) {
	prog := &ast.Program{Base: ast.Base{Location: p.loc()}, Statements: []ast.Statement{}}
	for !p.curIs(token.EOF) {
		if p.curIs(token.SEMI) {
			p.advance()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		p.advance()
	}
	return prog, p.errors
}

// ---- Statements ----

func (p *Parser) parseStatement() ast.Statement {
	switch p.curTok.Kind {
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.BREAK:
		return p.parseBreakStatement()
	case token.AT:
		return p.parseAnnotatedStatement()
	case token.IDENT:
		if p.peekIs(token.COLON) {
			return p.parseSectionStatement()
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Base: ast.Base{Location: p.loc()}}
	p.advance() // consume `let`

	if p.curIs(token.MUT) {
		stmt.Mutable = true
		p.advance()
	}

	stmt.Target = p.parsePattern()
	if stmt.Target == nil {
		return nil
	}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.advance()

	stmt.Value = p.parseExpression(LOWEST)
	if fl, ok := stmt.Value.(*ast.FunctionLiteral); ok {
		if id, ok := stmt.Target.(*ast.IdentifierPattern); ok {
			fl.Name = id.Name
		}
	}
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Base: ast.Base{Location: p.loc()}}
	if p.peekIs(token.SEMI) || p.peekIs(token.RBRACE) || p.peekIs(token.EOF) {
		return stmt
	}
	p.advance()
	stmt.Value = p.parseExpression(LOWEST)
	return stmt
}

func (p *Parser) parseBreakStatement() ast.Statement {
	stmt := &ast.BreakStatement{Base: ast.Base{Location: p.loc()}}
	if p.peekIs(token.SEMI) || p.peekIs(token.RBRACE) || p.peekIs(token.EOF) {
		return stmt
	}
	p.advance()
	stmt.Value = p.parseExpression(LOWEST)
	return stmt
}

func (p *Parser) parseSectionStatement() ast.Statement {
	stmt := &ast.SectionStatement{Base: ast.Base{Location: p.loc()}, Name: p.curTok.Literal}
	p.advance() // consume name
	p.advance() // consume `:`
	stmt.Body = p.parseBlockOrExpr()
	return stmt
}

// parseAnnotatedStatement parses `@name statement`; the base language only
// recognises `@slow` on test sections.
func (p *Parser) parseAnnotatedStatement() ast.Statement {
	start := p.loc()
	p.advance() // consume `@`
	if !p.curIs(token.IDENT) {
		p.addError("expected annotation name after @", p.curTok.Line, p.curTok.Column)
		return nil
	}
	name := p.curTok.Literal
	p.advance()
	inner := p.parseStatement()
	if inner == nil {
		return nil
	}
	return &ast.AnnotatedStatement{Base: ast.Base{Location: start}, Annotation: name, Inner: inner}
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Base: ast.Base{Location: p.loc()}}
	stmt.Expr = p.parseExpression(LOWEST)
	return stmt
}

// ---- Blocks ----

// parseBlockExpression parses `{ stmt* }`. It leaves curTok on the closing
// `}`, matching the convention that every parse* function ends on the last
// token it consumed (callers that need to move past it do so explicitly).
func (p *Parser) parseBlockExpression() *ast.BlockExpression {
	block := &ast.BlockExpression{Base: ast.Base{Location: p.loc()}, Statements: []ast.Statement{}}
	p.advance() // consume `{`
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		if p.curIs(token.SEMI) {
			p.advance()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.advance()
	}
	if !p.curIs(token.RBRACE) {
		p.addError("missing closing }", p.curTok.Line, p.curTok.Column)
	}
	return block
}

// parseBlockOrExpr accepts either a brace-delimited block or a bare
// expression, wrapping the latter as a single-statement block. Function
// bodies, if/else branches, and section bodies all use this, so a
// bare-expression function body like `|x| x * 2` needs no braces.
func (p *Parser) parseBlockOrExpr() *ast.BlockExpression {
	if p.curIs(token.LBRACE) {
		return p.parseBlockExpression()
	}
	loc := p.loc()
	expr := p.parseExpression(LOWEST)
	return &ast.BlockExpression{
		Base:       ast.Base{Location: loc},
		Statements: []ast.Statement{&ast.ExpressionStatement{Base: ast.Base{Location: loc}, Expr: expr}},
	}
}

// ---- Pratt core ----

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix, ok := p.prefixFns[p.curTok.Kind]
	if !ok {
		p.addError(fmt.Sprintf("no prefix parse function for %s", p.curTok.Kind), p.curTok.Line, p.curTok.Column)
		return nil
	}
	left := prefix()

	for !p.peekIs(token.SEMI) && precedence < p.peekPrecedence() {
		infix, ok := p.infixFns[p.peekTok.Kind]
		if !ok {
			return left
		}
		p.advance()
		left = infix(left)
	}
	return left
}

// parseOperatorCall desugars a binary operator to a CallExpression over an
// Identifier naming the operator, so user-defined and builtin operators
// share one evaluation path.
func (p *Parser) parseOperatorCall(left ast.Expression) ast.Expression {
	opTok := p.curTok
	precedence := p.curPrecedence()
	p.advance()
	right := p.parseExpression(precedence)
	return &ast.CallExpression{
		Base:   ast.Base{Location: srcpos.Location{Line: opTok.Line, Column: opTok.Column}},
		Callee: &ast.Identifier{Base: ast.Base{Location: srcpos.Location{Line: opTok.Line, Column: opTok.Column}}, Name: opTok.Literal},
		Args:   []ast.Expression{left, right},
	}
}

// parseBacktickInfixCall handles `` a `f` b `` as `f(a, b)`.
func (p *Parser) parseBacktickInfixCall(left ast.Expression) ast.Expression {
	opTok := p.curTok
	p.advance()
	right := p.parseExpression(PRODUCT)
	return &ast.CallExpression{
		Base:   ast.Base{Location: srcpos.Location{Line: opTok.Line, Column: opTok.Column}},
		Callee: &ast.Identifier{Base: ast.Base{Location: srcpos.Location{Line: opTok.Line, Column: opTok.Column}}, Name: opTok.Literal},
		Args:   []ast.Expression{left, right},
	}
}

// parsePipeline desugars `x |> f` to `f(x)`.
func (p *Parser) parsePipeline(left ast.Expression) ast.Expression {
	loc := p.loc()
	p.advance()
	callee := p.parseExpression(COMPOSITION)
	return &ast.CallExpression{Base: ast.Base{Location: loc}, Callee: callee, Args: []ast.Expression{left}}
}

func (p *Parser) parseLogicalExpression(left ast.Expression) ast.Expression {
	op := p.curTok
	precedence := p.curPrecedence()
	p.advance()
	right := p.parseExpression(precedence)
	return &ast.LogicalExpression{Base: ast.Base{Location: srcpos.Location{Line: op.Line, Column: op.Column}}, Operator: op.Literal, Left: left, Right: right}
}

// parseAssignExpression desugars `target = value` to a CallExpression whose
// callee is the identifier "="; the evaluator recognises this callee
// specially and treats Args[0] as an assignment target rather than
// evaluating it.
func (p *Parser) parseAssignExpression(left ast.Expression) ast.Expression {
	loc := p.loc()
	p.advance()
	value := p.parseExpression(EQUALS - 1)
	return &ast.CallExpression{
		Base:   ast.Base{Location: loc},
		Callee: &ast.Identifier{Base: ast.Base{Location: loc}, Name: "="},
		Args:   []ast.Expression{left, value},
	}
}

func (p *Parser) parseRangeLiteral(left ast.Expression) ast.Expression {
	loc := p.loc()
	inclusive := p.curIs(token.RANGE_INC)
	p.advance()
	rng := &ast.RangeLiteral{Base: ast.Base{Location: loc}, Start: left, Inclusive: inclusive}
	switch p.curTok.Kind {
	case token.SEMI, token.RBRACE, token.RPAREN, token.RBRACKET, token.COMMA, token.EOF:
		return rng
	}
	rng.End = p.parseExpression(COMPOSITION)
	return rng
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	op := p.curTok
	p.advance()
	right := p.parseExpression(PREFIX)
	return &ast.PrefixExpression{Base: ast.Base{Location: srcpos.Location{Line: op.Line, Column: op.Column}}, Operator: op.Literal, Right: right}
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	loc := p.loc()
	args := p.parseExpressionList(token.RPAREN)
	call := &ast.CallExpression{Base: ast.Base{Location: loc}, Callee: callee, Args: args}
	// Trailing-lambda call sugar: `f(x) |y| body` appends the lambda.
	switch {
	case p.peekIs(token.PIPE):
		p.advance()
		call.Args = append(call.Args, p.parseFunctionLiteral())
	case p.peekIs(token.OR):
		p.advance()
		call.Args = append(call.Args, p.parseEmptyParamFunctionLiteral())
	}
	return call
}

func (p *Parser) parseExpressionList(end token.Kind) []ast.Expression {
	list := []ast.Expression{}
	if p.peekIs(end) {
		p.advance()
		return list
	}
	p.advance()
	list = append(list, p.parseExpression(LOWEST))
	for p.peekIs(token.COMMA) {
		p.advance()
		p.advance()
		list = append(list, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(end) {
		return list
	}
	return list
}

func (p *Parser) parseIndexExpression(collection ast.Expression) ast.Expression {
	loc := p.loc()
	p.advance()
	index := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return &ast.IndexExpression{Base: ast.Base{Location: loc}, Collection: collection, Index: index}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.advance()
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

// ---- Literals ----

func (p *Parser) parseIntegerLiteral() ast.Expression {
	v, ok := new(big.Int).SetString(p.curTok.Literal, 10)
	if !ok {
		p.addError(fmt.Sprintf("invalid integer literal %q", p.curTok.Literal), p.curTok.Line, p.curTok.Column)
		v = big.NewInt(0)
	}
	return &ast.IntegerLiteral{Base: ast.Base{Location: p.loc()}, Value: v}
}

func (p *Parser) parseDecimalLiteral() ast.Expression {
	v, err := strconv.ParseFloat(p.curTok.Literal, 64)
	if err != nil {
		p.addError(fmt.Sprintf("invalid decimal literal %q", p.curTok.Literal), p.curTok.Line, p.curTok.Column)
	}
	return &ast.DecimalLiteral{Base: ast.Base{Location: p.loc()}, Value: v}
}

// parseStringLiteral splits the lexer's raw literal into interpolation
// parts: the lexer only finds the `{...}` boundaries, the parser does
// the actual splitting. Each `{expr}` span is re-lexed and re-parsed as
// a nested expression.
func (p *Parser) parseStringLiteral() ast.Expression {
	loc := p.loc()
	raw := p.curTok.Literal
	lit := &ast.StringLiteral{Base: ast.Base{Location: loc}, Value: raw}

	hasInterp := false
	for i := 0; i < len(raw); i++ {
		if raw[i] == '{' {
			hasInterp = true
			break
		}
	}
	if !hasInterp {
		return lit
	}

	parts := make([]ast.Expression, 0)
	var plain []byte
	i := 0
	for i < len(raw) {
		if raw[i] == '{' {
			if len(plain) > 0 {
				parts = append(parts, &ast.StringLiteral{Base: ast.Base{Location: loc}, Value: string(plain)})
				plain = nil
			}
			depth := 1
			start := i + 1
			i++
			for i < len(raw) && depth > 0 {
				if raw[i] == '{' {
					depth++
				} else if raw[i] == '}' {
					depth--
					if depth == 0 {
						break
					}
				}
				i++
			}
			inner := raw[start:i]
			sub := New(inner)
			expr := sub.parseExpression(LOWEST)
			for _, e := range sub.Errors() {
				p.addError(e.Message, loc.Line, loc.Column)
			}
			parts = append(parts, expr)
			i++ // consume closing `}`
			continue
		}
		plain = append(plain, raw[i])
		i++
	}
	if len(plain) > 0 {
		parts = append(parts, &ast.StringLiteral{Base: ast.Base{Location: loc}, Value: string(plain)})
	}
	lit.Parts = parts
	return lit
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Base: ast.Base{Location: p.loc()}, Name: p.curTok.Literal}
}

func (p *Parser) parsePlaceholder() ast.Expression {
	return &ast.Placeholder{Base: ast.Base{Location: p.loc()}}
}

func (p *Parser) parseBoolean() ast.Expression {
	return &ast.BooleanLiteral{Base: ast.Base{Location: p.loc()}, Value: p.curIs(token.TRUE)}
}

func (p *Parser) parseNil() ast.Expression {
	return &ast.NilLiteral{Base: ast.Base{Location: p.loc()}}
}

func (p *Parser) parseListLiteral() ast.Expression {
	loc := p.loc()
	elems := p.parseExpressionList(token.RBRACKET)
	return &ast.ListLiteral{Base: ast.Base{Location: loc}, Elements: elems}
}

// parseSetLiteral parses `{e1, e2, ...}`. An empty `{}` is a degenerate
// empty set literal; the evaluator treats it distinctly from `#{}` (empty
// dict) only by AST node kind.
func (p *Parser) parseSetLiteral() ast.Expression {
	loc := p.loc()
	elems := p.parseExpressionList(token.RBRACE)
	return &ast.SetLiteral{Base: ast.Base{Location: loc}, Elements: elems}
}

func (p *Parser) parseDictLiteral() ast.Expression {
	loc := p.loc()
	dict := &ast.DictLiteral{Base: ast.Base{Location: loc}, Entries: []ast.DictEntry{}}
	if p.peekIs(token.RBRACE) {
		p.advance()
		return dict
	}
	p.advance()
	for {
		key := p.parseExpression(LOWEST)
		if !p.expectPeek(token.COLON) {
			return dict
		}
		p.advance()
		value := p.parseExpression(LOWEST)
		dict.Entries = append(dict.Entries, ast.DictEntry{Key: key, Value: value})
		if !p.peekIs(token.COMMA) {
			break
		}
		p.advance()
		p.advance()
	}
	if !p.expectPeek(token.RBRACE) {
		return dict
	}
	return dict
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	loc := p.loc()
	fn := &ast.FunctionLiteral{Base: ast.Base{Location: loc}}
	p.advance() // consume opening `|`

	fn.Params = []ast.Pattern{}
	if !p.curIs(token.PIPE) {
		fn.Params = append(fn.Params, p.parsePattern())
		for p.peekIs(token.COMMA) {
			p.advance()
			p.advance()
			fn.Params = append(fn.Params, p.parsePattern())
		}
		if !p.expectPeek(token.PIPE) {
			return fn
		}
	}
	p.advance() // consume closing `|`, move to body
	fn.Body = p.parseBlockOrExpr()
	return fn
}

// parseEmptyParamFunctionLiteral parses `|| body`, the zero-parameter form
// that lexes as a single `||` token rather than two adjacent `|`s.
func (p *Parser) parseEmptyParamFunctionLiteral() ast.Expression {
	loc := p.loc()
	fn := &ast.FunctionLiteral{Base: ast.Base{Location: loc}, Params: []ast.Pattern{}}
	p.advance() // consume `||`, move to body
	fn.Body = p.parseBlockOrExpr()
	return fn
}

func (p *Parser) parseIfExpression() ast.Expression {
	loc := p.loc()
	p.advance()
	expr := &ast.IfExpression{Base: ast.Base{Location: loc}}
	expr.Condition = p.parseExpression(LOWEST)
	p.advance()
	expr.Then = p.parseBlockOrExpr()
	if p.peekIs(token.ELSE) {
		p.advance()
		p.advance()
		expr.Else = p.parseBlockOrExpr()
	}
	return expr
}

func (p *Parser) parseMatchExpression() ast.Expression {
	loc := p.loc()
	p.advance()
	expr := &ast.MatchExpression{Base: ast.Base{Location: loc}}
	expr.Scrutinee = p.parseExpression(LOWEST)
	if !p.expectPeek(token.LBRACE) {
		return expr
	}
	p.advance()
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		arm := ast.MatchArm{}
		arm.Pattern = p.parsePatternCore()
		if p.peekIs(token.IF) {
			p.advance() // cur = `if`
			p.advance() // cur = guard expr start
			arm.Guard = p.parseExpression(LOWEST)
		}
		if !p.expectPeek(token.ARROW) {
			return expr
		}
		p.advance()
		arm.Body = p.parseExpression(LOWEST)
		expr.Arms = append(expr.Arms, arm)
		if p.peekIs(token.COMMA) {
			p.advance()
		}
		p.advance()
	}
	return expr
}

// ---- Patterns ----

// parsePattern parses a pattern and wraps it in a GuardPattern if followed
// by `if expr`. Match arms parse guards separately at the arm
// level instead (see parseMatchExpression), since MatchArm carries its own
// Guard field.
func (p *Parser) parsePattern() ast.Pattern {
	return p.wrapGuard(p.parsePatternCore())
}

func (p *Parser) parsePatternCore() ast.Pattern {
	switch p.curTok.Kind {
	case token.PLACEHOLDER_TOK:
		return &ast.WildcardPattern{Base: ast.Base{Location: p.loc()}}
	case token.IDENT:
		return &ast.IdentifierPattern{Base: ast.Base{Location: p.loc()}, Name: p.curTok.Literal}
	case token.LBRACKET:
		return p.parseListPatternCore()
	case token.HASH_BRACE:
		return p.parseDictPatternCore()
	case token.INT, token.DECIMAL, token.STRING, token.TRUE, token.FALSE, token.NIL, token.MINUS:
		return p.parseLiteralPatternCore()
	default:
		p.addError(fmt.Sprintf("malformed pattern at %s", p.curTok.Kind), p.curTok.Line, p.curTok.Column)
		return nil
	}
}

func (p *Parser) wrapGuard(inner ast.Pattern) ast.Pattern {
	if p.peekIs(token.IF) {
		loc := p.loc()
		p.advance()
		p.advance()
		cond := p.parseExpression(LOWEST)
		return &ast.GuardPattern{Base: ast.Base{Location: loc}, Inner: inner, Condition: cond}
	}
	return inner
}

func (p *Parser) parseLiteralPatternCore() ast.Pattern {
	loc := p.loc()
	expr := p.parseExpression(PREFIX)
	return &ast.LiteralPattern{Base: ast.Base{Location: loc}, Value: expr}
}

func (p *Parser) parseListPatternCore() ast.Pattern {
	loc := p.loc()
	pat := &ast.ListPattern{Base: ast.Base{Location: loc}}
	p.advance() // consume `[`
	for !p.curIs(token.RBRACKET) && !p.curIs(token.EOF) {
		if p.curIs(token.RANGE) {
			p.advance()
			if p.curIs(token.IDENT) {
				pat.Rest = &ast.IdentifierPattern{Base: ast.Base{Location: p.loc()}, Name: p.curTok.Literal}
				p.advance()
			}
			break
		}
		pat.Elements = append(pat.Elements, p.parsePattern())
		p.advance()
		if p.curIs(token.COMMA) {
			p.advance()
		}
	}
	return pat
}

func (p *Parser) parseDictPatternCore() ast.Pattern {
	loc := p.loc()
	pat := &ast.DictPattern{Base: ast.Base{Location: loc}}
	p.advance() // consume `#{`
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		key := p.parseExpression(LOWEST)
		if !p.expectPeek(token.COLON) {
			return pat
		}
		p.advance()
		sub := p.parsePattern()
		pat.Entries = append(pat.Entries, ast.DictPatternEntry{Key: key, Pattern: sub})
		p.advance()
		if p.curIs(token.COMMA) {
			p.advance()
		}
	}
	return pat
}
