package node

// Seq builds a normalised node from parts: nested sequences are flattened,
// adjacent literals merged, empty literals and Empty sentinels dropped.
// A single remaining child is returned unwrapped; nothing left yields Empty.
func Seq(parts ...Node) Node {
	out := make([]Node, 0, len(parts))
	var pending []byte
	havePending := false

	flushLiteral := func() {
		if havePending && len(pending) > 0 {
			out = append(out, &Literal{Text: string(pending)})
		}
		pending = pending[:0]
		havePending = false
	}

	var walk func(ns []Node)
	walk = func(ns []Node) {
		for _, n := range ns {
			switch v := n.(type) {
			case nil:
			case *Literal:
				pending = append(pending, v.Text...)
				havePending = true
			case *Sequence:
				walk(v.Children)
			default:
				if IsEmpty(n) {
					continue
				}
				flushLiteral()
				out = append(out, n)
			}
		}
	}
	walk(parts)
	flushLiteral()

	switch len(out) {
	case 0:
		return Empty
	case 1:
		return out[0]
	default:
		return &Sequence{Children: out}
	}
}

// Equal compares two trees structurally
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *Literal:
		return x.Text == b.(*Literal).Text
	case *Placeholder:
		y := b.(*Placeholder)
		return x.Name == y.Name && x.Args == y.Args
	case *Sequence:
		y := b.(*Sequence)
		if len(x.Children) != len(y.Children) {
			return false
		}
		for i := range x.Children {
			if !Equal(x.Children[i], y.Children[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// MapLiterals returns a new tree in which every literal has been replaced by
// fn(literal). Other nodes are shared with the input. The result is
// normalised with Seq.
func MapLiterals(n Node, fn func(*Literal) Node) Node {
	switch v := n.(type) {
	case nil:
		return nil
	case *Literal:
		return fn(v)
	case *Sequence:
		children := make([]Node, len(v.Children))
		for i, c := range v.Children {
			children[i] = MapLiterals(c, fn)
		}
		return Seq(children...)
	default:
		return n
	}
}

// Placeholders lists placeholder names in document order, duplicates included
func Placeholders(n Node) []string {
	var names []string
	Walk(n, func(x Node) {
		if p, ok := x.(*Placeholder); ok {
			names = append(names, p.Name)
		}
	})
	return names
}

// Walk calls fn for n and every descendant, depth first
func Walk(n Node, fn func(Node)) {
	if n == nil {
		return
	}
	fn(n)
	if s, ok := n.(*Sequence); ok {
		for _, c := range s.Children {
			Walk(c, fn)
		}
	}
}
