package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/guidelint/pkg/token"
)

// class C { void M() { int x; } }
func sampleTree() *Node {
	local := &Node{Kind: KindLocal, Span: token.NewSpan(21, 27), Name: &Ident{Text: "x", Span: token.NewSpan(25, 26)}}
	body := &Node{Kind: KindBlock, Span: token.NewSpan(19, 29), Children: []*Node{local}}
	method := &Node{Kind: KindMethod, Span: token.NewSpan(10, 29), Name: &Ident{Text: "M", Span: token.NewSpan(15, 16)}, Children: []*Node{body}}
	class := &Node{Kind: KindClass, Span: token.NewSpan(0, 31), Name: &Ident{Text: "C", Span: token.NewSpan(6, 7)}, Children: []*Node{method}}
	return &Node{Kind: KindUnit, Span: token.NewSpan(0, 31), Children: []*Node{class}}
}

func TestKind(t *testing.T) {
	k, ok := ParseKind("Local_Function")
	assert.True(t, ok)
	assert.Equal(t, KindLocalFunction, k)

	_, ok = ParseKind("lambda")
	assert.False(t, ok)

	assert.True(t, KindAccessor.HostsCode())
	assert.False(t, KindProperty.HostsCode())
	assert.True(t, KindProperty.IsDeclaration())
	assert.True(t, KindNamespace.IsDeclaration())
	assert.False(t, KindLocal.IsDeclaration())
	assert.False(t, KindLocalFunction.IsDeclaration())
	assert.True(t, KindEnum.IsTypeDeclaration())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestWalkStack(t *testing.T) {
	var got []string
	WalkStack(sampleTree(), func(n *Node, ancestors []*Node) bool {
		got = append(got, n.Kind.String()+"/"+string(rune('0'+len(ancestors))))
		return n.Kind != KindBlock
	})
	assert.Equal(t, []string{"unit/0", "class/1", "method/2", "block/3"}, got)
}

func TestEnclosing(t *testing.T) {
	root := sampleTree()

	path := Enclosing(root, 22, 23)
	kinds := make([]Kind, 0, len(path))
	for _, n := range path {
		kinds = append(kinds, n.Kind)
	}
	assert.Equal(t, []Kind{KindUnit, KindClass, KindMethod, KindBlock, KindLocal}, kinds)

	path = Enclosing(root, 8, 9)
	require.Len(t, path, 2)
	assert.Equal(t, KindClass, path[1].Kind)

	assert.Empty(t, Enclosing(root, 40, 41))
}

func TestFind(t *testing.T) {
	n := Find(sampleTree(), func(n *Node) bool { return n.NameText() == "x" })
	require.NotNil(t, n)
	assert.Equal(t, KindLocal, n.Kind)
	assert.Nil(t, Find(sampleTree(), func(n *Node) bool { return n.Kind == KindSwitch }))
}

func TestElement(t *testing.T) {
	root := sampleTree()
	el := Element{Node: root.Children[0], Ancestors: []*Node{root}}
	assert.Equal(t, KindClass, el.Kind())
	assert.Equal(t, root, el.Parent())

	tr := token.Trivia{Kind: token.LineComment, Text: "// c", Span: token.NewSpan(3, 7)}
	el = Element{Trivia: &tr}
	assert.Equal(t, KindTrivia, el.Kind())
	assert.Equal(t, token.NewSpan(3, 7), el.Span())
	assert.Nil(t, el.Parent())
}

func TestConstantKey(t *testing.T) {
	assert.True(t, Integer(1).Equal(Constant{Kind: ConstInteger, Value: "0x01"}))
	assert.True(t, Bool(true).Equal(Constant{Kind: ConstBool, Value: "True"}))
	assert.False(t, Integer(0).Equal(Bool(false)))
	assert.True(t, Null().Equal(Constant{Kind: ConstNull, Value: "ignored"}))
	assert.Equal(t, "integer:18446744073709551615", Constant{Kind: ConstInteger, Value: "18446744073709551615"}.Key())
	assert.Equal(t, `"X"`, String("X").String())
	assert.Equal(t, "'A'", Char('A').String())
}

func TestSemantics(t *testing.T) {
	var nilModel *Semantics
	assert.False(t, nilModel.IsOverrideOrImplementation("C.M"))
	assert.Nil(t, nilModel.Attributes("C.M"))
	_, ok := nilModel.EnumMembers("E")
	assert.False(t, ok)
	assert.False(t, nilModel.IsFlagsEnum("E"))

	model := &Semantics{
		Overrides: []string{"D.P6"},
		Attrs:     map[string][]string{"T.M": {"Xunit.FactAttribute"}},
		Enums: map[string]EnumInfo{
			"App.Status": {Members: []EnumMember{{Name: "Pending", Value: Integer(0)}}},
			"App.Access": {Flags: true},
		},
	}
	assert.True(t, model.IsOverrideOrImplementation("D.P6"))
	assert.False(t, model.IsOverrideOrImplementation(""))
	assert.Equal(t, []string{"Xunit.FactAttribute"}, model.Attributes("T.M"))
	members, ok := model.EnumMembers("App.Status")
	assert.True(t, ok)
	assert.Len(t, members, 1)
	assert.True(t, model.IsFlagsEnum("App.Access"))
	assert.False(t, model.IsFlagsEnum("App.Status"))
}

func TestSwitchLabels(t *testing.T) {
	var nilSwitch *Switch
	assert.Nil(t, nilSwitch.Labels())

	sw := &Switch{Sections: []Section{
		{Labels: []Label{{Kind: LabelConstant, Value: &Constant{Kind: ConstBool, Value: "true"}}}},
		{Labels: []Label{{Kind: LabelDefault}, {Kind: LabelCatchAll}}},
	}}
	labels := sw.Labels()
	require.Len(t, labels, 3)
	assert.Equal(t, LabelCatchAll, labels[2].Kind)
}
