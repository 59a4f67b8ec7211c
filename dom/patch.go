package dom

// Patch updates the live tree rooted at old so that it describes the same
// markup as the freshly built tree rooted at new. Children are matched by
// position; a live node whose type and name match its counterpart is
// updated in place and keeps its identity, anything else is replaced.
//
// substitutes maps nodes of the new tree to live nodes that must be used
// as they are, e.g. the root of a nested component that re-rendered
// itself. old is always updated in place.
func Patch(old, new *Node, substitutes map[*Node]*Node) {
	live := make(map[*Node]bool, len(substitutes))
	for _, s := range substitutes {
		live[s] = true
	}
	patchNode(old, new, substitutes, live)
}

func patchNode(old, new *Node, subs map[*Node]*Node, live map[*Node]bool) {
	switch old.NodeType {
	case TextNode:
		old.Text.SetData(new.Text.Data)
		return
	case CommentNode:
		old.Comment.SetData(new.Comment.Data)
		return
	case ElementNode:
		old.NodeName = new.NodeName
		old.Element.LocalName = new.Element.LocalName
		old.Element.NamespaceURI = new.Element.NamespaceURI
		patchAttributes(old, new)
		patchListeners(old, new)
	}

	want := make(NodeList, 0, len(new.ChildNodes))
	placed := make(map[*Node]bool, len(new.ChildNodes))
	for _, nc := range new.ChildNodes {
		if s, ok := subs[nc]; ok {
			nc = s
		}
		want = append(want, nc)
		placed[nc] = true
	}

	// Substitute may move live nodes out of old, so match against a copy.
	prev := append(NodeList(nil), old.ChildNodes...)
	children := make(NodeList, 0, len(want))
	kept := make(map[*Node]bool, len(want))
	for i, w := range want {
		patched := false
		if i < len(prev) {
			oc := prev[i]
			if oc != w && !placed[oc] && !live[w] && !live[oc] && sameKind(oc, w) {
				patchNode(oc, w, subs, live)
				w, patched = oc, true
			}
		}
		if !patched && !live[w] {
			// inserted as is, so placeholders below it must be swapped here
			Substitute(w, subs)
		}
		children = append(children, w)
		kept[w] = true
	}

	for _, oc := range prev {
		if !kept[oc] && oc.ParentNode == old {
			oc.ParentNode, oc.PreviousSibling, oc.NextSibling = nil, nil, nil
		}
	}
	for _, c := range children {
		if c.ParentNode != nil && c.ParentNode != old {
			c.ParentNode.RemoveChild(c)
		}
		if c.OwnerDocument != old.OwnerDocument {
			c.Walk(func(d *Node) bool {
				d.OwnerDocument = old.OwnerDocument
				return true
			})
		}
	}
	old.ChildNodes = children
	old.relink()
}

// Substitute replaces every node below root that is a key of subs with
// the node it maps to. root itself is never replaced.
func Substitute(root *Node, subs map[*Node]*Node) {
	if len(subs) == 0 {
		return
	}
	var found []*Node
	for _, c := range root.ChildNodes {
		c.Walk(func(d *Node) bool {
			if _, ok := subs[d]; ok {
				found = append(found, d)
				return false
			}
			return true
		})
	}
	for _, d := range found {
		d.ParentNode.ReplaceChild(subs[d], d)
	}
}

func patchListeners(old, new *Node) {
	old.RemoveEventListeners("")
	for eventType, ls := range new.listeners {
		for _, l := range ls {
			old.AddEventListener(eventType, l)
		}
	}
}

func patchAttributes(old, new *Node) {
	for _, name := range old.GetAttributeNames() {
		if !new.HasAttribute(name) {
			old.RemoveAttribute(name)
		}
	}
	for _, name := range new.GetAttributeNames() {
		old.SetAttribute(name, new.GetAttribute(name))
	}
}

func sameKind(a, b *Node) bool {
	if a.NodeType != b.NodeType {
		return false
	}
	if a.NodeType != ElementNode {
		return true
	}
	return a.NodeName == b.NodeName && a.Element.NamespaceURI == b.Element.NamespaceURI
}
