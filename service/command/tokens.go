package command

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceCode = iota
	bangCode
	filetypeCode
)

var (
	whitespaceToken = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	bangToken       = parsly.NewToken(bangCode, "!", matcher.NewByte('!'))
	filetypeToken   = parsly.NewToken(filetypeCode, "Filetype", newFiletypeMatcher())
)

// filetypeMatcher matches one run of non-whitespace characters.
type filetypeMatcher struct{}

func (m *filetypeMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	matched := 0
	for i := pos; i < size; i++ {
		switch input[i] {
		case ' ', '\t', '\n', '\r':
			return matched
		}
		matched++
	}
	return matched
}

func newFiletypeMatcher() parsly.Matcher {
	return &filetypeMatcher{}
}
