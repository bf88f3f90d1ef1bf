package nodes

import (
	"errors"
	"fmt"
)

// ErrMissingAssignment is returned when a variable has no value in the
// assignment used for evaluation.
var ErrMissingAssignment = errors.New("missing truth value")

// Assignment maps variable names to truth values for one truth-table row.
type Assignment map[string]bool

// Equal reports whether both assignments bind the same names to the same
// values.
func (a Assignment) Equal(o Assignment) bool {
	if len(a) != len(o) {
		return false
	}
	for k, v := range a {
		if ov, ok := o[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Eval evaluates the tree under the assignment.
func (n *Node) Eval(a Assignment) (bool, error) {
	var value bool
	switch n.Kind {
	case KindVariable:
		v, ok := a[n.Name]
		if !ok {
			return false, fmt.Errorf("%w for variable %q", ErrMissingAssignment, n.Name)
		}
		value = v
	case KindBinary:
		left, err := n.Left.Eval(a)
		if err != nil {
			return false, err
		}
		right, err := n.Right.Eval(a)
		if err != nil {
			return false, err
		}
		value = n.Op.Apply(left, right)
	default:
		return false, fmt.Errorf("nodes: cannot evaluate node kind %s", n.Kind)
	}
	if n.Negated {
		return !value, nil
	}
	return value, nil
}
