package lexer

import "fmt"

// Kind discriminates the token classes of the notation.
type Kind int

const (
	KindAtom     Kind = iota // lowercase-initial identifier
	KindVariable             // uppercase-initial identifier
	KindOp                   // one of ( ) , . :-
)

// Token is a single lexical unit. Tokens are ephemeral values: they are
// produced and consumed within one parse and never stored in the AST.
type Token struct {
	Kind Kind
	Text string
}

// Atom builds an atom token.
func Atom(text string) Token { return Token{Kind: KindAtom, Text: text} }

// Variable builds a variable token.
func Variable(text string) Token { return Token{Kind: KindVariable, Text: text} }

// Op builds an operator token for one of the symbols ( ) , . :-
func Op(symbol string) Token { return Token{Kind: KindOp, Text: symbol} }

func (k Kind) String() string {
	switch k {
	case KindAtom:
		return "Atom"
	case KindVariable:
		return "Variable"
	case KindOp:
		return "Op"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}
