package sdl

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

const commentPrefix = "//"

// Parser holds the state of an in-progress parse. Open blocks live on an
// explicit stack so deeply nested documents never grow the call stack.
type Parser struct {
	stack []*Node // innermost open node last; stack[0] is the sentinel root
	line  int
}

// NewParser creates a parser with an empty sentinel context
func NewParser() *Parser {
	return &Parser{
		stack: []*Node{{Name: "(document)"}},
	}
}

// Parse parses a complete SDL document held in a string
func Parse(text string) (*Node, error) {
	return ParseReader(strings.NewReader(text))
}

// ParseReader parses a complete SDL document from an io.Reader
func ParseReader(reader io.Reader) (*Node, error) {
	parser := NewParser()

	// Lines may be arbitrarily long, so no bufio.Scanner token limit
	buffered := bufio.NewReader(reader)
	for {
		line, err := buffered.ReadString('\n')
		if line != "" {
			if lineErr := parser.ProcessLine(strings.TrimRight(line, "\r\n")); lineErr != nil {
				return nil, lineErr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading input: %w", err)
		}
	}

	return parser.Finish()
}

// LoadSDL loads and parses an SDL scene file
func LoadSDL(filename string) (*Node, error) {
	if filename == "" {
		return nil, fmt.Errorf("filename cannot be empty")
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open SDL file: %w", err)
	}
	defer file.Close()

	root, err := ParseReader(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return root, nil
}

// ProcessLine feeds one line of input to the parser
func (p *Parser) ProcessLine(line string) error {
	p.line++

	if idx := strings.Index(line, commentPrefix); idx >= 0 {
		line = line[:idx]
	}

	tokens := strings.Fields(line)
	closed := false
	for len(tokens) > 0 {
		if tokens[0] == "}" {
			if err := p.closeBlock(); err != nil {
				return err
			}
			closed = true
			tokens = tokens[1:]
			continue
		}
		// Only further '}' may follow a '}' on the same line
		if closed {
			return syntaxErrorf(p.line, "unexpected %q after '}'", tokens[0])
		}

		rest, err := p.parseNode(tokens)
		if err != nil {
			return err
		}
		tokens = rest
	}
	return nil
}

// parseNode consumes one node header (name, values and an optional '{')
// from the front of tokens and returns whatever follows it on the line.
func (p *Parser) parseNode(tokens []string) ([]string, error) {
	name := tokens[0]
	if !IsValidName(name) {
		return nil, syntaxErrorf(p.line, "invalid node name: %q", name)
	}
	node := NewNode(name)

	i := 1
	for ; i < len(tokens); i++ {
		token := tokens[i]
		if token == "{" || token == "}" {
			break
		}
		value, err := strconv.ParseFloat(token, 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, syntaxErrorf(p.line, "node %q: invalid number %q", name, token)
		}
		node.Values = append(node.Values, value)
	}

	if i < len(tokens) && tokens[i] == "{" {
		p.stack = append(p.stack, node)
		return tokens[i+1:], nil
	}

	p.current().Children = append(p.current().Children, node)
	return tokens[i:], nil
}

// closeBlock pops the innermost open node onto its parent's children
func (p *Parser) closeBlock() error {
	if len(p.stack) < 2 {
		return syntaxErrorf(p.line, "unexpected '}' with no open block")
	}
	closed := p.current()
	p.stack = p.stack[:len(p.stack)-1]
	p.current().Children = append(p.current().Children, closed)
	return nil
}

func (p *Parser) current() *Node {
	return p.stack[len(p.stack)-1]
}

// Finish validates the document structure and returns the single top-level node
func (p *Parser) Finish() (*Node, error) {
	if len(p.stack) != 1 {
		return nil, syntaxErrorf(p.line, "unclosed block %q at end of input", p.current().Name)
	}

	root := p.stack[0]
	if len(root.Children) != 1 {
		return nil, syntaxErrorf(0, "document has %d top-level nodes (expected 1)", len(root.Children))
	}

	top := root.Children[0]
	root.Children = nil
	return top, nil
}

// IsValidName reports whether name is a legal node name: ASCII letters,
// digits, '-' and '_', not starting with a digit.
func IsValidName(name string) bool {
	if name == "" {
		return false
	}
	if name[0] >= '0' && name[0] <= '9' {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}
