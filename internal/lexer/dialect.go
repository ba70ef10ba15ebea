package lexer

import (
	"fmt"
	"sort"
)

// Dialect maps keyword spellings to token kinds. Punctuation is shared by
// every dialect.
type Dialect struct {
	Name     string
	Keywords map[string]TokenKind
}

var (
	ASCII = Dialect{
		Name: "ascii",
		Keywords: map[string]TokenKind{
			"print": LOG,
		},
	}

	Russian = Dialect{
		Name: "ru",
		Keywords: map[string]TokenKind{
			"КОНСОЛЬ": LOG,
			"РАВНО":   ASSIGN,
			"ПЛЮС":    PLUS,
			"МИНУС":   MINUS,
		},
	}
)

var dialects = map[string]Dialect{
	ASCII.Name:   ASCII,
	Russian.Name: Russian,
}

func LookupDialect(name string) (Dialect, error) {
	if name == "" {
		return ASCII, nil
	}

	d, ok := dialects[name]
	if !ok {
		return Dialect{}, fmt.Errorf("unknown dialect %q, expected one of %v", name, DialectNames())
	}

	return d, nil
}

func DialectNames() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func (d Dialect) keyword(word string) (TokenKind, bool) {
	kind, ok := d.Keywords[word]
	return kind, ok
}
