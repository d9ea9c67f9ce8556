package walk

import "github.com/signadot/go-pandoc/ast"

type frame struct {
	node ast.Node
	post bool
}

// Visit calls f on n and every node below it, once before its children
// (isPost false) and once after (isPost true). Returning false from the
// first call skips the children. The first error stops the walk.
func Visit(n ast.Node, f func(n ast.Node, isPost bool) (bool, error)) error {
	stack := []frame{{node: n}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if fr.post {
			if _, err := f(fr.node, true); err != nil {
				return err
			}
			continue
		}
		dive, err := f(fr.node, false)
		if err != nil {
			return err
		}
		stack = append(stack, frame{node: fr.node, post: true})
		if !dive {
			continue
		}
		cs := children(fr.node)
		for i := len(cs) - 1; i >= 0; i-- {
			if c := cs[i].node(); c != nil {
				stack = append(stack, frame{node: c})
			}
		}
	}
	return nil
}
