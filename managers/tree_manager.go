package managers

import (
	"github.com/bawdo/proplogic/nodes"
	"github.com/bawdo/proplogic/plugins"
)

// treeManager holds the transformer pipeline applied to a syntax tree
// before it is evaluated or printed.
type treeManager struct {
	transformers []plugins.Transformer
}

// addTransformer appends a transformer plugin to the pipeline.
func (tm *treeManager) addTransformer(t plugins.Transformer) {
	tm.transformers = append(tm.transformers, t)
}

// Transformers returns the registered transformer pipeline.
func (tm *treeManager) Transformers() []plugins.Transformer {
	return tm.transformers
}

// transform runs root through every transformer in registration order.
func (tm *treeManager) transform(root *nodes.Node) (*nodes.Node, error) {
	for _, t := range tm.transformers {
		var err error
		root, err = t.Transform(root)
		if err != nil {
			return nil, err
		}
	}
	return root, nil
}
