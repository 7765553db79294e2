package tree

import (
	"fmt"
	"io"
	"strings"
)

// String renders t as a bracketed s-expression (spec §6.5). A leaf
// prints as its bare label; an internal node prints as
// `(LABEL child …)`.
func (t *Tree) String() string {
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t *Tree) write(b *strings.Builder) {
	if t.IsLeaf() {
		b.WriteString(t.Label)
		return
	}
	b.WriteByte('(')
	b.WriteString(t.Label)
	for _, c := range t.Children {
		b.WriteByte(' ')
		c.write(b)
	}
	b.WriteByte(')')
}

// WriteTo writes t followed by a newline to w.
func (t *Tree) WriteTo(w io.Writer) error {
	_, err := fmt.Fprintln(w, t.String())
	return err
}
