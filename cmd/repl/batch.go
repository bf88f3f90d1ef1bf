package main

import (
	"errors"
	"fmt"

	"github.com/valyala/fastjson"
)

var errBatchShape = errors.New(`expected an array or {"expressions": [...]}`)

// batchItem is one expression read from a batch file.
type batchItem struct {
	name string // optional label from {"name": ..., "expression": ...}
	text string
}

// parseBatch reads the expressions of a batch file. Accepted shapes:
//
//	["a ^ b", "~(a v b)"]
//	{"expressions": ["a ^ b", {"name": "demorgan", "expression": "~(a v b)"}]}
func parseBatch(data []byte) ([]batchItem, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	var list []*fastjson.Value
	switch v.Type() {
	case fastjson.TypeArray:
		list, _ = v.Array()
	case fastjson.TypeObject:
		inner := v.Get("expressions")
		if inner == nil || inner.Type() != fastjson.TypeArray {
			return nil, errBatchShape
		}
		list, _ = inner.Array()
	default:
		return nil, errBatchShape
	}

	items := make([]batchItem, 0, len(list))
	for i, val := range list {
		switch val.Type() {
		case fastjson.TypeString:
			items = append(items, batchItem{text: string(val.GetStringBytes())})
		case fastjson.TypeObject:
			text := string(val.GetStringBytes("expression"))
			if text == "" {
				return nil, fmt.Errorf("item %d: missing \"expression\"", i)
			}
			items = append(items, batchItem{name: string(val.GetStringBytes("name")), text: text})
		default:
			return nil, fmt.Errorf("item %d: expected a string or object, got %s", i, val.Type())
		}
	}
	return items, nil
}
