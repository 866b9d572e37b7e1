package grammar

import (
	"errors"
	"fmt"
)

// ErrEmptyGrammar is returned for grammar text or builders without any rule.
var ErrEmptyGrammar = errors.New("grammar does not contain any rule")

// MalformedRuleError is returned by Compile for a line lacking the
// separator "->". Line holds the offending line as it appeared in the text
// (without surrounding whitespace).
type MalformedRuleError struct {
	Line   string // text of the offending line
	LineNo int    // 1-based line number
}

func (e *MalformedRuleError) Error() string {
	return fmt.Sprintf("malformed grammar line %d: '%s'; each line must contain '%s'",
		e.LineNo, e.Line, Separator)
}
