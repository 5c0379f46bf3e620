package pipeline

import (
	"fmt"

	"github.com/ardenvale/shoe/internal/token"
)

// ParseError reports an unexpected Special token encountered while
// assembling a pipeline.
type ParseError struct {
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unexpected token %q", e.Text)
}

// Assemble walks a post-substitution token stream and produces the ordered
// list of Commands it describes, or a *ParseError naming the first
// unrecognized Special token.
func Assemble(tokens []token.Token) ([]Command, error) {
	var commands []Command
	var cur *Command
	pendingCondition := Any

	newCommand := func() *Command {
		return &Command{RunCondition: pendingCondition}
	}

	closeCommand := func(nextCondition RunCondition) {
		if cur != nil {
			commands = append(commands, *cur)
			cur = nil
		}
		pendingCondition = nextCondition
	}

	i := 0
	n := len(tokens)
	for i < n {
		t := tokens[i]

		if t.Kind != token.Special {
			if cur == nil {
				cur = newCommand()
				cur.Keyword = t.Text
			} else {
				cur.Args = append(cur.Args, t.Text)
			}
			i++
			continue
		}

		switch t.Text {
		case ";", "&":
			closeCommand(Any)
		case "&&":
			closeCommand(Success)
		case "||":
			closeCommand(Fail)
		case "|":
			if cur == nil {
				cur = newCommand()
			}
			cur.Output = OutputModifier{Kind: OutputPiped}
			closeCommand(Any)
		case ">", ">>":
			if cur == nil {
				cur = newCommand()
			}
			if i+1 >= n {
				return nil, &ParseError{Text: t.Text}
			}
			cur.Output = OutputModifier{
				Kind:   OutputWriteTo,
				Path:   tokens[i+1].Text,
				Append: t.Text == ">>",
			}
			i++
		case "<":
			if cur == nil {
				cur = newCommand()
			}
			if i+1 >= n {
				return nil, &ParseError{Text: t.Text}
			}
			cur.Input = InputModifier{Kind: InputReadFrom, Path: tokens[i+1].Text}
			i++
		default:
			return nil, &ParseError{Text: t.Text}
		}
		i++
	}

	if cur != nil {
		commands = append(commands, *cur)
	}
	return commands, nil
}
