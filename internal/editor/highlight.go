package editor

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// TokenKind classifies a highlighted run of a shell line.
type TokenKind int

const (
	TokenPlain TokenKind = iota
	TokenComment
	TokenString
	TokenVariable
	TokenKeyword
	TokenBuiltin
	TokenNumber
	TokenOperator
)

// Span is a highlighted range of a line in rune columns, half-open [StartCol, EndCol).
type Span struct {
	StartCol int
	EndCol   int
	Kind     TokenKind
}

// Highlighter produces spans for one line of text.
type Highlighter interface {
	HighlightLine(line string) []Span
}

// ShellHighlighter is a line-based highlighter for POSIX shell and bash.
// Strings spanning several lines are highlighted per line only.
type ShellHighlighter struct{}

var shellKeywords = toSet(
	"if", "then", "else", "elif", "fi", "for", "while", "until", "do", "done",
	"case", "esac", "in", "function", "select", "time", "return", "break", "continue",
)

var shellBuiltins = toSet(
	"echo", "read", "cd", "export", "local", "cat", "printf", "test", "exit",
	"source", "set", "unset", "shift", "eval", "exec", "trap", "declare", "let", "pwd",
)

const shellOperators = "|&;<>()[]{}=!%*+-"

func toSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// HighlightLine tokenizes line. Plain runs are not reported.
func (ShellHighlighter) HighlightLine(line string) []Span {
	rs := []rune(line)
	var spans []Span
	add := func(start, end int, kind TokenKind) {
		if end > start {
			spans = append(spans, Span{StartCol: start, EndCol: end, Kind: kind})
		}
	}

	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			i++

		case r == '#' && (i == 0 || unicode.IsSpace(rs[i-1])):
			add(i, len(rs), TokenComment)
			i = len(rs)

		case r == '"' || r == '\'':
			end := scanString(rs, i)
			add(i, end, TokenString)
			i = end

		case r == '$':
			end := scanVariable(rs, i)
			add(i, end, TokenVariable)
			i = end

		case r == '\\':
			// Escaped character: skip it so `\"` does not open a string.
			i += 2
			if i > len(rs) {
				i = len(rs)
			}

		case strings.ContainsRune(shellOperators, r):
			start := i
			for i < len(rs) && strings.ContainsRune(shellOperators, rs[i]) {
				i++
			}
			add(start, i, TokenOperator)

		default:
			start := i
			for i < len(rs) && isWordRune(rs[i]) {
				i++
			}
			if i == start {
				i++
				continue
			}
			word := string(rs[start:i])
			switch {
			case shellKeywords[word]:
				add(start, i, TokenKeyword)
			case shellBuiltins[word]:
				add(start, i, TokenBuiltin)
			case isNumber(word):
				add(start, i, TokenNumber)
			}
		}
	}
	return spans
}

func scanString(rs []rune, start int) int {
	quote := rs[start]
	for i := start + 1; i < len(rs); i++ {
		if quote == '"' && rs[i] == '\\' {
			i++
			continue
		}
		if rs[i] == quote {
			return i + 1
		}
	}
	return len(rs)
}

func scanVariable(rs []rune, start int) int {
	i := start + 1
	if i >= len(rs) {
		return i
	}
	switch {
	case rs[i] == '{':
		for i < len(rs) && rs[i] != '}' {
			i++
		}
		if i < len(rs) {
			i++
		}
		return i
	case rs[i] == '(':
		// Command substitution: only the sigil is a variable.
		return i
	case strings.ContainsRune("?#@*!$-", rs[i]) || unicode.IsDigit(rs[i]):
		return i + 1
	}
	for i < len(rs) && (rs[i] == '_' || unicode.IsLetter(rs[i]) || unicode.IsDigit(rs[i])) {
		i++
	}
	return i
}

func isWordRune(r rune) bool {
	if unicode.IsSpace(r) || r == '"' || r == '\'' || r == '$' || r == '\\' {
		return false
	}
	return !strings.ContainsRune(shellOperators, r)
}

func isNumber(word string) bool {
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return word != ""
}

// Style maps token kinds to lipgloss styles.
type Style struct {
	Comment  lipgloss.Style
	String   lipgloss.Style
	Variable lipgloss.Style
	Keyword  lipgloss.Style
	Builtin  lipgloss.Style
	Number   lipgloss.Style
	Operator lipgloss.Style
	LineNum  lipgloss.Style
	Status   lipgloss.Style
}

// DefaultStyle uses the 16-colour ANSI palette.
func DefaultStyle() Style {
	return Style{
		Comment:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		String:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Variable: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Keyword:  lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		Builtin:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Number:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Operator: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		LineNum:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Reverse(true),
	}
}

func (s Style) forKind(k TokenKind) (lipgloss.Style, bool) {
	switch k {
	case TokenComment:
		return s.Comment, true
	case TokenString:
		return s.String, true
	case TokenVariable:
		return s.Variable, true
	case TokenKeyword:
		return s.Keyword, true
	case TokenBuiltin:
		return s.Builtin, true
	case TokenNumber:
		return s.Number, true
	case TokenOperator:
		return s.Operator, true
	}
	return lipgloss.Style{}, false
}

// RenderLine applies spans to line. Spans are expected sorted and non-overlapping,
// as HighlightLine returns them.
func (s Style) RenderLine(line string, spans []Span) string {
	rs := []rune(line)
	var b strings.Builder
	pos := 0
	for _, sp := range spans {
		start := clamp(sp.StartCol, pos, len(rs))
		end := clamp(sp.EndCol, start, len(rs))
		b.WriteString(string(rs[pos:start]))
		if st, ok := s.forKind(sp.Kind); ok {
			b.WriteString(st.Render(string(rs[start:end])))
		} else {
			b.WriteString(string(rs[start:end]))
		}
		pos = end
	}
	b.WriteString(string(rs[pos:]))
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
