package input

// Help maps key sequences (in keyspec notation) to explanations of what they
// do.
type Help = map[string]string

// GetHelp returns the help for all sequences of the tree.
func (t *Tree) GetHelp() Help {
	result := Help{}
	t.root.collectHelp("", result)
	return result
}

func (n *node) collectHelp(prefix string, into Help) {
	if n.action != nil {
		into[prefix] = n.action.Explain()
		return
	}
	for k, child := range n.children {
		child.collectHelp(prefix+ToConfigIdentifierString(k), into)
	}
}
