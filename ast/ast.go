package ast

import "reflect"

// Node wraps exactly one NodeKind. Children are held by value, so a tree
// never shares or cycles.
type Node struct {
	Kind NodeKind
}

func New(k NodeKind) Node {
	return Node{Kind: k}
}

type NodeKind interface {
	is_NodeKind()
}

type BinaryOperator int

const (
	Add BinaryOperator = iota
	Sub
	Mul
	Div
	Mod
	Shil
	Shir
	And
	Or
	Xor
	NilCo
	Lt
	Gt
	Lte
	Gte
	Eq
	Neq
	AndAnd
	OrOr
	As
	AsQuestion
	AsExclamation
)

type UnaryOperator int

const (
	Minus UnaryOperator = iota
	Negate
	Move
)

type BinaryOperation struct {
	Left  Node
	Right Node
	Op    BinaryOperator
}

func (v BinaryOperation) is_NodeKind() {}

type UnaryOperation struct {
	Operand Node
	Ops     []UnaryOperator
}

func (v UnaryOperation) is_NodeKind() {}

type Destroy struct {
	Operand Node
}

func (v Destroy) is_NodeKind() {}

type Create struct {
	Operand Node
}

func (v Create) is_NodeKind() {}

// ReferenceExpression is the prefix form &expr.
type ReferenceExpression struct {
	Operand Node
}

func (v ReferenceExpression) is_NodeKind() {}

type TerminalString string

func (v TerminalString) is_NodeKind() {}

type TerminalNumber string

func (v TerminalNumber) is_NodeKind() {}

type TerminalIdentifier string

func (v TerminalIdentifier) is_NodeKind() {}

type TerminalBool bool

func (v TerminalBool) is_NodeKind() {}

type TerminalNil struct{}

func (v TerminalNil) is_NodeKind() {}

type TypeAnnotation struct {
	Type FullType
}

func (v TypeAnnotation) is_NodeKind() {}

// ResourceTypeAnnotation marks a linear type, written @Type.
type ResourceTypeAnnotation struct {
	Type FullType
}

func (v ResourceTypeAnnotation) is_NodeKind() {}

type Argument struct {
	Label      *string
	Expression Node
}

func (v Argument) is_NodeKind() {}

type Invocation struct {
	Callee    Node
	Arguments []Argument
}

func (v Invocation) is_NodeKind() {}

// MemberAccess is a.b, or a?.b when Optional is set.
type MemberAccess struct {
	Of       Node
	Name     string
	Optional bool
}

func (v MemberAccess) is_NodeKind() {}

type FullType interface {
	is_FullType()
}

type Inner string

func (v Inner) is_FullType() {}

type Reference string

func (v Reference) is_FullType() {}

type AuthReference string

func (v AuthReference) is_FullType() {}

func Binary(op BinaryOperator, left, right Node) Node {
	return New(BinaryOperation{Left: left, Right: right, Op: op})
}

func Unary(operand Node, ops ...UnaryOperator) Node {
	return New(UnaryOperation{Operand: operand, Ops: ops})
}

func Str(s string) Node {
	return New(TerminalString(s))
}

func Num(s string) Node {
	return New(TerminalNumber(s))
}

func Ident(s string) Node {
	return New(TerminalIdentifier(s))
}

// Labeled builds a labeled call argument.
func Labeled(label string, expr Node) Argument {
	return Argument{Label: &label, Expression: expr}
}

func Unlabeled(expr Node) Argument {
	return Argument{Expression: expr}
}

// Equal reports whether two trees have the same shape and payloads.
func Equal(a, b Node) bool {
	return reflect.DeepEqual(a, b)
}
