package node_test

import (
	"testing"

	"github.com/arthur-debert/chatstyle/pkg/node"
	"github.com/stretchr/testify/assert"
)

func TestSeq(t *testing.T) {
	tests := []struct {
		name  string
		parts []node.Node
		want  node.Node
	}{
		{
			name: "nothing yields empty",
			want: node.Empty,
		},
		{
			name:  "empty literals dropped",
			parts: []node.Node{node.Text(""), node.Empty, nil},
			want:  node.Empty,
		},
		{
			name:  "single child unwrapped",
			parts: []node.Node{node.Text("hi")},
			want:  node.Text("hi"),
		},
		{
			name:  "adjacent literals merged",
			parts: []node.Node{node.Text("a"), node.Text("b"), node.Var("p"), node.Text("c")},
			want: &node.Sequence{Children: []node.Node{
				node.Text("ab"), node.Var("p"), node.Text("c"),
			}},
		},
		{
			name: "nested sequences flattened",
			parts: []node.Node{
				node.Text("<"),
				&node.Sequence{Children: []node.Node{node.Text("x"), node.Var("player")}},
				node.Text(">"),
			},
			want: &node.Sequence{Children: []node.Node{
				node.Text("<x"), node.Var("player"), node.Text(">"),
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := node.Seq(tt.parts...)
			assert.True(t, node.Equal(tt.want, got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b node.Node
		want bool
	}{
		{"both nil", nil, nil, true},
		{"nil vs empty", nil, node.Empty, false},
		{"empty vs empty", node.Empty, node.Empty, true},
		{"same literal", node.Text("a"), node.Text("a"), true},
		{"different literal", node.Text("a"), node.Text("b"), false},
		{"literal vs placeholder", node.Text("a"), node.Var("a"), false},
		{"placeholder args differ", &node.Placeholder{Name: "a", Args: "x"}, &node.Placeholder{Name: "a"}, false},
		{
			"sequence length differs",
			&node.Sequence{Children: []node.Node{node.Text("a")}},
			&node.Sequence{Children: []node.Node{node.Text("a"), node.Var("b")}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, node.Equal(tt.a, tt.b))
		})
	}
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, node.IsEmpty(node.Empty))
	assert.False(t, node.IsEmpty(nil))
	assert.False(t, node.IsEmpty(node.Text("")))
}

func TestMapLiterals(t *testing.T) {
	in := &node.Sequence{Children: []node.Node{node.Text("a"), node.Var("p"), node.Text("b")}}

	out := node.MapLiterals(in, func(l *node.Literal) node.Node {
		return node.Text(l.Text + l.Text)
	})

	want := &node.Sequence{Children: []node.Node{node.Text("aa"), node.Var("p"), node.Text("bb")}}
	assert.True(t, node.Equal(want, out), "got %s", out)
	// input untouched
	assert.Equal(t, "a", in.Children[0].(*node.Literal).Text)

	assert.Nil(t, node.MapLiterals(nil, nil))
}

func TestPlaceholders(t *testing.T) {
	n := node.Seq(node.Var("player"), node.Text(": "), node.Var("message"), node.Var("player"))
	assert.Equal(t, []string{"player", "message", "player"}, node.Placeholders(n))
	assert.Empty(t, node.Placeholders(node.Text("x")))
}

func TestString(t *testing.T) {
	n := node.Seq(node.Text("a\x1b\"b"), &node.Placeholder{Name: "emoji", Args: "big"})
	assert.Equal(t, `Sequence[Literal("a\x1b\"b"), Placeholder(emoji "big")]`, n.String())
	assert.Equal(t, "Empty", node.Empty.String())
	assert.Equal(t, "placeholder", node.KindPlaceholder.String())
}
