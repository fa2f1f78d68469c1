package puzzle

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Line is the parse tree of one puzzle line.
type Line struct {
	Pattern *Pattern `@@?`
	Edges   []*Wire  `@@*`
	Targets *Targets `@@?`
}

// Pattern is the bracketed light pattern.
type Pattern struct {
	Lights []string `"[" @Light+ "]"`
}

// Wire is one parenthesised edge.
type Wire struct {
	Indices []int `"(" @Int ("," @Int)* ")"`
}

// Targets is the braced list of counter targets.
type Targets struct {
	Values []int `"{" @Int ("," @Int)* "}"`
}

var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `\d+`},
	{Name: "Light", Pattern: `[.#]`},
	{Name: "Punct", Pattern: `[\[\](){},]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parseLine = participle.MustBuild[Line](
	participle.Lexer(lineLexer),
	participle.Elide("Whitespace"),
)

// lit converts the pattern into the toggle target.
func (p *Pattern) lit() []bool {
	out := make([]bool, len(p.Lights))
	for i, l := range p.Lights {
		out[i] = l == "#"
	}

	return out
}
