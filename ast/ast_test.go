package ast

import "testing"

func TestCanonicalForm(t *testing.T) {
	cases := []struct {
		name string
		node Node
		want string
	}{
		{
			"precedence",
			Binary(Add, Num("1"), Binary(Mul, Num("2"), Num("3"))),
			"Add{num(1), Mul{num(2), num(3)}}",
		},
		{
			"unary list",
			Unary(Num("1"), Minus, Negate, Move, Minus),
			"[Minus, Negate, Move, Minus]{num(1)}",
		},
		{
			"empty unary list",
			Unary(Ident("a")),
			"id(a)",
		},
		{
			"destroy",
			Binary(Add, Binary(Mul, Unary(Num("1"), Minus), Unary(Num("2"), Minus)), New(Destroy{Ident("a")})),
			"Add{Mul{[Minus]{num(1)}, [Minus]{num(2)}}, Destroy{id(a)}}",
		},
		{"string", Str("hi there"), "str(hi there)"},
		{"bool", New(TerminalBool(false)), "bool(false)"},
		{"nil", New(TerminalNil{}), "nil"},
		{"create", New(Create{Ident("r")}), "Create{id(r)}"},
		{"reference", New(ReferenceExpression{Ident("r")}), "Ref{id(r)}"},
		{"type", New(TypeAnnotation{Inner("a")}), "Type{a}"},
		{"ref type", New(TypeAnnotation{Reference("a")}), "Type{&a}"},
		{"auth type", New(TypeAnnotation{AuthReference("ab")}), "Type{auth &ab}"},
		{"resource type", New(ResourceTypeAnnotation{Inner("a")}), "@Type{a}"},
		{"resource auth type", New(ResourceTypeAnnotation{AuthReference("a")}), "@Type{auth &a}"},
		{"labeled argument", New(Labeled("to", Ident("x"))), "Arg{to: id(x)}"},
		{"unlabeled argument", New(Unlabeled(Num("1"))), "Arg{num(1)}"},
		{
			"cast",
			Binary(As, Ident("x"), New(TypeAnnotation{Reference("T")})),
			"As{id(x), Type{&T}}",
		},
		{
			"invocation",
			New(Invocation{Callee: Ident("f"), Arguments: []Argument{Labeled("a", Num("1")), Unlabeled(Num("2"))}}),
			"Call{id(f), [Arg{a: num(1)}, Arg{num(2)}]}",
		},
		{"empty invocation", New(Invocation{Callee: Ident("f")}), "Call{id(f), []}"},
		{"member", New(MemberAccess{Of: Ident("a"), Name: "b"}), "Member{id(a), b}"},
		{"optional member", New(MemberAccess{Of: Ident("a"), Name: "b", Optional: true}), "OptMember{id(a), b}"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.node.String(); got != c.want {
				t.Fatalf("got %s, want %s", got, c.want)
			}
		})
	}
}

func TestOperatorNames(t *testing.T) {
	want := []string{
		"Add", "Sub", "Mul", "Div", "Mod", "Shil", "Shir", "And", "Or", "Xor",
		"NilCo", "Lt", "Gt", "Lte", "Gte", "Eq", "Neq", "AndAnd", "OrOr",
		"As", "AsQuestion", "AsExclamation",
	}
	for i, name := range want {
		if got := BinaryOperator(i).String(); got != name {
			t.Fatalf("operator %d: got %s, want %s", i, got, name)
		}
	}
	if got := UnaryOperator(7).String(); got != "UnaryOperator(7)" {
		t.Fatalf("got %s", got)
	}
}

func TestEqual(t *testing.T) {
	a := Binary(NilCo, Num("1"), Binary(NilCo, Num("2"), Num("3")))
	b := Binary(NilCo, Num("1"), Binary(NilCo, Num("2"), Num("3")))
	if !Equal(a, b) {
		t.Fatal("identical trees compare unequal")
	}
	c := Binary(NilCo, Binary(NilCo, Num("1"), Num("2")), Num("3"))
	if Equal(a, c) {
		t.Fatal("differently nested trees compare equal")
	}
	if Equal(New(Labeled("x", Num("1"))), New(Labeled("y", Num("1")))) {
		t.Fatal("labels ignored")
	}
}
