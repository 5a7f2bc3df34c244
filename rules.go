package sheetgrid

import (
	"fmt"
	"image/color"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// RuleEnv is the environment a background rule is evaluated against.
type RuleEnv struct {
	Row    int    `expr:"row"`
	Column int    `expr:"column"`
	Title  string `expr:"title"` // column label, e.g. "AB"
	Text   string `expr:"text"`  // plain text of the cell
	Empty  bool   `expr:"empty"`
}

// BackgroundRule fills cells without an explicit background when its condition
// holds, e.g. `row % 2 == 0` or `title == "A" && !empty`.
type BackgroundRule struct {
	Condition string
	Color     color.RGBA

	program *vm.Program
}

// NewBackgroundRule compiles condition. The condition must evaluate to a bool.
func NewBackgroundRule(condition string, c color.RGBA) (*BackgroundRule, error) {
	if condition == "" {
		return nil, fmt.Errorf("empty rule condition")
	}
	program, err := expr.Compile(condition, expr.Env(RuleEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile rule %q: %w", condition, err)
	}
	return &BackgroundRule{Condition: condition, Color: c, program: program}, nil
}

// Match evaluates the rule for one cell.
func (r *BackgroundRule) Match(env RuleEnv) (bool, error) {
	out, err := expr.Run(r.program, env)
	if err != nil {
		return false, fmt.Errorf("evaluate rule %q: %w", r.Condition, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("rule %q evaluated to %T, expected bool", r.Condition, out)
	}
	return b, nil
}

func newRuleEnv(addr Address, data CellData, ok bool) RuleEnv {
	text := ""
	if ok {
		text = data.PlainText()
	}
	return RuleEnv{
		Row:    addr.Row,
		Column: addr.Column,
		Title:  ColumnTitle(addr.Column),
		Text:   text,
		Empty:  text == "",
	}
}
