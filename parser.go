// parser.go — recursive-descent grammar over the raw token stream.
//
// GRAMMAR
// -------
// Keywords are ordinary Words; the tokenizer knows nothing about them.
//
//	program   = stmt* ;
//	stmt      = "np"                    (nop)
//	          | "nl"                    (newline)
//	          | "pr" expr               (print)
//	          | "ev" expr               (evaluate)
//	          | "do" expr               (do)
//	          | "dh" expr               (do here)
//	          | "fh" expr               (do file here)
//	          | "st" target expr        (assign)
//	          | "if" expr ["th" stmt] ["el" stmt] ;
//	target    = word ;
//	expr      = primary chop* ;
//	chop      = ("+" | "-" | "*" | "/" | "to") primary ;
//	primary   = word | integer | string | block | group ;
//	block     = "{" stmt* "}" ;
//	group     = ("(" | "[") expr (")" | "]" | "}") ;
//
// String literals have no token of their own: the parser drops to character
// level when a primary starts with `"`, resolving escapes itself.
//
// ERROR RECOVERY
// --------------
// Where a production cannot be completed, the parser substitutes the Invalid
// variant at the smallest possible scope, consumes at least one token, and
// continues with the following siblings. Only the two lexical errors
// (EofInComment, UnexpectedCharacter) abort the whole unit.
//
// COMMENT ATTACHMENT
// ------------------
// Comments skipped before a statement's first token become that statement's
// leading comments; comments discovered between a statement's tokens become
// its internal comments; comments after the final statement become trailing
// comments of the last statement. Recoverable oddities (mismatched closing
// brackets, unknown escapes) become ParsingWarnings on the affected node.
package sflk

import "fmt"

// Parse reads the whole source unit into a Program. The returned program may
// contain Invalid nodes; check Program.IsInvalid before lowering. A non-nil
// error is always one of the fatal lexical errors.
func Parse(scu *SourceUnit) (*Program, error) {
	p := &parser{rh: NewReadingHead(scu)}
	prog := &Program{}
	for {
		tok, _, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.IsVoid() {
			break
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		prog.Stmts = append(prog.Stmts, stmt)
	}
	// Comments between the last statement and end of input trail the last
	// statement.
	if len(p.tokComments) > 0 && len(prog.Stmts) > 0 {
		prog.Stmts[len(prog.Stmts)-1].AddTrailingComments(p.tokComments...)
		p.tokComments = nil
	}
	return prog, nil
}

type parser struct {
	rh *ReadingHead

	// one-token lookahead; tokComments holds the comments skipped right
	// before the buffered token, released into collected when the token is
	// consumed
	peeked      bool
	tok         Tok
	tokLoc      Loc
	tokComments []string

	// comments released by tokens consumed within the statement being parsed
	collected []string
}

func (p *parser) peek() (Tok, Loc, error) {
	if !p.peeked {
		tok, loc, err := p.rh.ReadToken()
		if err != nil {
			return Tok{}, Loc{}, err
		}
		p.tok, p.tokLoc = tok, loc
		p.tokComments = p.rh.TakeComments()
		p.peeked = true
	}
	return p.tok, p.tokLoc, nil
}

// consume discards the buffered token, releasing its comments. It must not
// be called on the Void sentinel.
func (p *parser) consume() {
	p.collected = append(p.collected, p.tokComments...)
	p.tokComments = nil
	p.peeked = false
}

func (p *parser) takeCollected() []string {
	out := p.collected
	p.collected = nil
	return out
}

// parseStmt parses one statement and attaches its comments. The caller must
// have checked that the next token is not Void.
func (p *parser) parseStmt() (*Node[Stmt], error) {
	if _, _, err := p.peek(); err != nil {
		return nil, err
	}
	leading := p.tokComments
	p.tokComments = nil

	// Scope comment collection to this statement so nested statements do
	// not steal comments released by this one's tokens.
	saved := p.collected
	p.collected = nil

	node, err := p.parseStmtInner()
	if err != nil {
		return nil, err
	}
	node.AddLeadingComments(leading...)
	node.AddInternalComments(p.takeCollected()...)
	p.collected = saved
	return node, nil
}

func (p *parser) parseStmtInner() (*Node[Stmt], error) {
	tok, loc, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokWord {
		// A statement can only start with a keyword Word.
		if !tok.IsVoid() {
			p.consume()
		}
		return NodeFrom[Stmt](StmtInvalid{}, loc), nil
	}

	switch tok.Raw {
	case "np":
		p.consume()
		return NodeFrom[Stmt](StmtNop{}, loc), nil
	case "nl":
		p.consume()
		return NodeFrom[Stmt](StmtNewline{}, loc), nil
	case "pr":
		p.consume()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return NodeFrom[Stmt](StmtPrint{Expr: expr}, loc.Merge(expr.Loc)), nil
	case "ev":
		p.consume()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return NodeFrom[Stmt](StmtEvaluate{Expr: expr}, loc.Merge(expr.Loc)), nil
	case "do":
		p.consume()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return NodeFrom[Stmt](StmtDo{Expr: expr}, loc.Merge(expr.Loc)), nil
	case "dh":
		p.consume()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return NodeFrom[Stmt](StmtDoHere{Expr: expr}, loc.Merge(expr.Loc)), nil
	case "fh":
		p.consume()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return NodeFrom[Stmt](StmtDoFileHere{Expr: expr}, loc.Merge(expr.Loc)), nil
	case "st":
		p.consume()
		target, err := p.parseTarget()
		if err != nil {
			return nil, err
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		span := loc.Merge(target.Loc).Merge(expr.Loc)
		return NodeFrom[Stmt](StmtAssign{Target: target, Expr: expr}, span), nil
	case "if":
		return p.parseIf(loc)
	default:
		// Unknown keyword: the word itself is the invalid statement.
		p.consume()
		return NodeFrom[Stmt](StmtInvalid{}, loc), nil
	}
}

func (p *parser) parseIf(kwLoc Loc) (*Node[Stmt], error) {
	p.consume() // "if"
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	stmt := StmtIf{Cond: cond}
	span := kwLoc.Merge(cond.Loc)
	for {
		tok, _, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != TokWord {
			break
		}
		switch {
		case tok.Raw == "th" && stmt.Then == nil:
			p.consume()
			branch, err := p.parseStmt()
			if err != nil {
				return nil, err
			}
			stmt.Then = branch
			span = span.Merge(branch.Loc)
		case tok.Raw == "el" && stmt.Else == nil:
			p.consume()
			branch, err := p.parseStmt()
			if err != nil {
				return nil, err
			}
			stmt.Else = branch
			span = span.Merge(branch.Loc)
		default:
			return NodeFrom[Stmt](stmt, span), nil
		}
	}
	return NodeFrom[Stmt](stmt, span), nil
}

func (p *parser) parseTarget() (*Node[TargetExpr], error) {
	tok, loc, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == TokWord {
		p.consume()
		return NodeFrom[TargetExpr](TargetVariable{Name: tok.Raw}, loc), nil
	}
	if !tok.IsVoid() {
		p.consume()
	}
	return NodeFrom[TargetExpr](TargetInvalid{}, loc), nil
}

// chopKindFor maps a chop operator token to its kind. The Word "to" is the
// to-right chop; everything else must be a BinOp.
func chopKindFor(tok Tok) (ChopKind, bool) {
	if tok.Kind == TokWord && tok.Raw == "to" {
		return ChopToRight, true
	}
	if tok.Kind != TokBinOp {
		return 0, false
	}
	switch tok.Raw {
	case "+":
		return ChopPlus, true
	case "-":
		return ChopMinus, true
	case "*":
		return ChopStar, true
	case "/":
		return ChopSlash, true
	}
	return 0, false
}

func (p *parser) parseExpr() (*Node[Expr], error) {
	init, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	var chops []*Node[Chop]
	span := init.Loc
	for {
		tok, opLoc, err := p.peek()
		if err != nil {
			return nil, err
		}
		kind, isChop := chopKindFor(tok)
		if !isChop {
			break
		}
		p.consume()
		operand, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		chop := NodeFrom(Chop{Kind: kind, Operand: operand}, opLoc.Merge(operand.Loc))
		chops = append(chops, chop)
		span = span.Merge(chop.Loc)
	}
	if len(chops) == 0 {
		return init, nil
	}
	return NodeFrom[Expr](ExprChain{Init: init, Chops: chops}, span), nil
}

func (p *parser) parsePrimary() (*Node[Expr], error) {
	// With no buffered token the next primary may be a string literal, which
	// only exists below the token level.
	if !p.peeked {
		if err := p.rh.SkipWhitespaceAndComments(); err != nil {
			return nil, err
		}
		p.collected = append(p.collected, p.rh.TakeComments()...)
		if ch, ok := p.rh.PeekChar(); ok && ch == '"' {
			return p.parseStringLiteral(), nil
		}
	}

	tok, loc, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case TokWord:
		p.consume()
		return NodeFrom[Expr](ExprVariable{Name: tok.Raw}, loc), nil
	case TokInteger:
		p.consume()
		return NodeFrom[Expr](ExprInteger{Digits: tok.Raw}, loc), nil
	case TokLeft:
		if tok.Raw == "{" {
			return p.parseBlockLiteral()
		}
		return p.parseGroup()
	default:
		// Right bracket, lone binop or end of input: no primary here.
		if !tok.IsVoid() {
			p.consume()
		}
		return NodeFrom[Expr](ExprInvalid{}, loc), nil
	}
}

// matchingCloser returns the closing bracket expected for an opener.
func matchingCloser(open string) string {
	switch open {
	case "(":
		return ")"
	case "[":
		return "]"
	}
	return "}"
}

// parseGroup parses a parenthesized expression. A closing bracket of the
// wrong shape still closes the group but leaves a warning on the node; a
// missing closer makes the whole group invalid.
func (p *parser) parseGroup() (*Node[Expr], error) {
	open, openLoc, _ := p.peek()
	p.consume()
	inner, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	tok, closeLoc, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokRight {
		return NodeFrom[Expr](ExprInvalid{}, openLoc.Merge(inner.Loc)), nil
	}
	p.consume()
	inner.AddLoc(openLoc)
	inner.AddLoc(closeLoc)
	if want := matchingCloser(open.Raw); tok.Raw != want {
		inner.AddWarning(ParsingWarning{
			Kind:   WarnMismatchedBracket,
			Loc:    closeLoc,
			Detail: fmt.Sprintf("`%s` (expected `%s`)", tok.Raw, want),
		})
	}
	return inner, nil
}

func (p *parser) parseBlockLiteral() (*Node[Expr], error) {
	_, openLoc, _ := p.peek()
	p.consume()
	var stmts []*Node[Stmt]
	span := openLoc
	for {
		tok, loc, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.IsVoid() {
			// Unterminated block literal.
			return NodeFrom[Expr](ExprInvalid{}, span), nil
		}
		if tok.Kind == TokRight {
			p.consume()
			node := NodeFrom[Expr](ExprBlock{Stmts: stmts}, span.Merge(loc))
			if tok.Raw != "}" {
				node.AddWarning(ParsingWarning{
					Kind:   WarnMismatchedBracket,
					Loc:    loc,
					Detail: fmt.Sprintf("`%s` (expected `}`)", tok.Raw),
				})
			}
			return node, nil
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		span = span.Merge(stmt.Loc)
	}
}

// parseStringLiteral reads a `"`-delimited literal character by character,
// resolving escapes. Unknown escapes keep the escaped character and warn;
// end of input before the closing `"` makes the literal invalid.
func (p *parser) parseStringLiteral() *Node[Expr] {
	startLoc := p.rh.CurLoc()
	p.rh.Advance() // opening quote
	var text []rune
	var warnings []ParsingWarning
	for {
		ch, ok := p.rh.PeekChar()
		if !ok {
			return NodeFrom[Expr](ExprInvalid{}, startLoc.Merge(p.rh.CurLoc()))
		}
		if ch == '"' {
			endLoc := p.rh.CurLoc()
			p.rh.Advance()
			node := NodeFrom[Expr](ExprString{Text: string(text)}, startLoc.Merge(endLoc))
			node.Warnings = append(node.Warnings, warnings...)
			return node
		}
		if ch == '\\' {
			escLoc := p.rh.CurLoc()
			p.rh.Advance()
			esc, ok := p.rh.PeekChar()
			if !ok {
				continue
			}
			switch esc {
			case 'n':
				text = append(text, '\n')
			case 't':
				text = append(text, '\t')
			case 'r':
				text = append(text, '\r')
			case '0':
				text = append(text, 0)
			case '\\', '"':
				text = append(text, esc)
			default:
				warnings = append(warnings, ParsingWarning{
					Kind:   WarnUnknownEscape,
					Loc:    escLoc.Merge(p.rh.CurLoc()),
					Detail: string(esc),
				})
				text = append(text, esc)
			}
			p.rh.Advance()
			continue
		}
		text = append(text, ch)
		p.rh.Advance()
	}
}
