// lexer.go — the reading head: a character cursor and raw tokenizer.
//
// The reading head walks a SourceUnit character by character, tracking the
// current line, and classifies maximal runs of bytes into raw tokens. Tokens
// carry no semantic interpretation: keywords are plain Words, bracket pairing
// is left to the grammar layer (parser.go). Whitespace and `#`...`#` comments
// are skipped before every token; the skipped comment texts are retained so
// the parser can attach them to the nodes it builds.
package sflk

import "unicode/utf8"

// TokKind classifies a raw token.
type TokKind int

const (
	TokVoid    TokKind = iota // end of input
	TokWord                   // maximal run of ASCII letters
	TokInteger                // maximal run of ASCII digits
	TokBinOp                  // one of + - * /
	TokLeft                   // one of ( [ {
	TokRight                  // one of ) ] }
)

func (k TokKind) String() string {
	switch k {
	case TokVoid:
		return "void"
	case TokWord:
		return "word"
	case TokInteger:
		return "integer"
	case TokBinOp:
		return "binop"
	case TokLeft:
		return "left"
	case TokRight:
		return "right"
	}
	return "unknown"
}

// Tok is one raw lexical token. Raw holds the exact consumed text ("" for
// the Void sentinel).
type Tok struct {
	Kind TokKind
	Raw  string
}

// IsVoid reports whether the token is the end-of-input sentinel.
func (t Tok) IsVoid() bool { return t.Kind == TokVoid }

// ReadingHead is a cursor over a SourceUnit. The zero offset is the first
// character; lines are 1-based.
type ReadingHead struct {
	scu  *SourceUnit
	off  int
	line int

	// comments skipped since the last TakeComments call, in source order
	comments []string
}

// NewReadingHead places a fresh cursor at the start of the unit.
func NewReadingHead(scu *SourceUnit) *ReadingHead {
	return &ReadingHead{scu: scu, off: 0, line: 1}
}

// PeekChar returns the character under the cursor without advancing.
// The boolean is false at end of input.
func (rh *ReadingHead) PeekChar() (rune, bool) {
	if rh.off >= len(rh.scu.Content) {
		return 0, false
	}
	ch, _ := utf8.DecodeRuneInString(rh.scu.Content[rh.off:])
	return ch, true
}

// Advance moves past the current character, bumping the line counter on
// '\n'. At end of input it does nothing.
func (rh *ReadingHead) Advance() {
	ch, ok := rh.PeekChar()
	if !ok {
		return
	}
	rh.off += utf8.RuneLen(ch)
	if ch == '\n' {
		rh.line++
	}
}

// CurLoc returns a span covering exactly the character about to be read
// (zero-length at end of input). Used for single-character diagnostics.
func (rh *ReadingHead) CurLoc() Loc {
	length := 0
	if ch, ok := rh.PeekChar(); ok {
		length = utf8.RuneLen(ch)
	}
	return Loc{
		Scu:        rh.scu,
		LineStart:  rh.line,
		ByteStart:  rh.off,
		ByteLength: length,
	}
}

// TakeComments returns the comment texts skipped since the previous call and
// resets the buffer. Texts are the content between the `#` delimiters,
// trimmed of surrounding whitespace.
func (rh *ReadingHead) TakeComments() []string {
	out := rh.comments
	rh.comments = nil
	return out
}

func isASCIIWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f'
}

func isASCIIAlpha(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isASCIIDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// SkipWhitespaceAndComments consumes ASCII whitespace and `#`-delimited
// comments. A `#` toggles comment mode rather than nesting: open, close,
// open again is three separate comments. End of input inside an open comment
// is fatal and reported with the Loc of the opening `#`.
func (rh *ReadingHead) SkipWhitespaceAndComments() error {
	var commentLoc *Loc
	var text []rune
	for {
		ch, ok := rh.PeekChar()
		switch {
		case commentLoc == nil && !ok:
			return nil
		case commentLoc == nil && ch == '#':
			loc := rh.CurLoc()
			commentLoc = &loc
			text = text[:0]
		case commentLoc == nil && !isASCIIWhitespace(ch):
			return nil
		case commentLoc != nil && !ok:
			return &EofInComment{Loc: *commentLoc}
		case commentLoc != nil && ch == '#':
			rh.comments = append(rh.comments, trimComment(string(text)))
			commentLoc = nil
		case commentLoc != nil:
			text = append(text, ch)
		}
		rh.Advance()
	}
}

func trimComment(s string) string {
	start, end := 0, len(s)
	for start < end && isASCIIWhitespace(rune(s[start])) {
		start++
	}
	for end > start && isASCIIWhitespace(rune(s[end-1])) {
		end--
	}
	return s[start:end]
}

// ReadToken skips whitespace and comments, then reads and returns the next
// raw token with its exact span. At end of input it returns the Void token
// with a zero-length Loc. Unclassifiable characters are fatal.
func (rh *ReadingHead) ReadToken() (Tok, Loc, error) {
	if err := rh.SkipWhitespaceAndComments(); err != nil {
		return Tok{}, Loc{}, err
	}
	ch, ok := rh.PeekChar()
	if !ok {
		return Tok{Kind: TokVoid}, rh.CurLoc(), nil
	}
	switch {
	case isASCIIAlpha(ch):
		word, loc := rh.readRun(isASCIIAlpha)
		return Tok{Kind: TokWord, Raw: word}, loc, nil
	case isASCIIDigit(ch):
		digits, loc := rh.readRun(isASCIIDigit)
		return Tok{Kind: TokInteger, Raw: digits}, loc, nil
	case ch == '+' || ch == '-' || ch == '*' || ch == '/':
		loc := rh.CurLoc()
		rh.Advance()
		return Tok{Kind: TokBinOp, Raw: string(ch)}, loc, nil
	case ch == '(' || ch == '[' || ch == '{':
		loc := rh.CurLoc()
		rh.Advance()
		return Tok{Kind: TokLeft, Raw: string(ch)}, loc, nil
	case ch == ')' || ch == ']' || ch == '}':
		loc := rh.CurLoc()
		rh.Advance()
		return Tok{Kind: TokRight, Raw: string(ch)}, loc, nil
	default:
		return Tok{}, Loc{}, &UnexpectedCharacter{Ch: ch, Loc: rh.CurLoc()}
	}
}

// readRun consumes the maximal run of characters in the given class,
// returning the run and its span. The caller guarantees at least one
// character matches.
func (rh *ReadingHead) readRun(class func(rune) bool) (string, Loc) {
	loc := rh.CurLoc()
	start := rh.off
	for {
		ch, ok := rh.PeekChar()
		if !ok || !class(ch) {
			break
		}
		rh.Advance()
	}
	run := rh.scu.Content[start:rh.off]
	loc.ByteLength = len(run)
	return run, loc
}
