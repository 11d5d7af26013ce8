package ast

import (
	"fmt"
	"strings"
)

var binaryNames = map[BinaryOperator]string{
	Add:           "Add",
	Sub:           "Sub",
	Mul:           "Mul",
	Div:           "Div",
	Mod:           "Mod",
	Shil:          "Shil",
	Shir:          "Shir",
	And:           "And",
	Or:            "Or",
	Xor:           "Xor",
	NilCo:         "NilCo",
	Lt:            "Lt",
	Gt:            "Gt",
	Lte:           "Lte",
	Gte:           "Gte",
	Eq:            "Eq",
	Neq:           "Neq",
	AndAnd:        "AndAnd",
	OrOr:          "OrOr",
	As:            "As",
	AsQuestion:    "AsQuestion",
	AsExclamation: "AsExclamation",
}

func (o BinaryOperator) String() string {
	if name, ok := binaryNames[o]; ok {
		return name
	}
	return fmt.Sprintf("BinaryOperator(%d)", int(o))
}

func (o UnaryOperator) String() string {
	switch o {
	case Minus:
		return "Minus"
	case Negate:
		return "Negate"
	case Move:
		return "Move"
	}
	return fmt.Sprintf("UnaryOperator(%d)", int(o))
}

func typeToString(t FullType) string {
	switch v := t.(type) {
	case Inner:
		return "Type{" + string(v) + "}"
	case Reference:
		return "Type{&" + string(v) + "}"
	case AuthReference:
		return "Type{auth &" + string(v) + "}"
	}

	panic("unhandled")
}

func (a Argument) String() string {
	if a.Label != nil {
		return fmt.Sprintf("Arg{%s: %s}", *a.Label, a.Expression)
	}
	return fmt.Sprintf("Arg{%s}", a.Expression)
}

// String renders the canonical form, e.g. Add{num(1), Mul{num(2), num(3)}}.
func (n Node) String() string {
	switch v := n.Kind.(type) {
	case BinaryOperation:
		return fmt.Sprintf("%s{%s, %s}", v.Op, v.Left, v.Right)
	case UnaryOperation:
		if len(v.Ops) == 0 {
			return v.Operand.String()
		}
		ops := make([]string, 0, len(v.Ops))
		for _, op := range v.Ops {
			ops = append(ops, op.String())
		}
		return fmt.Sprintf("[%s]{%s}", strings.Join(ops, ", "), v.Operand)
	case Destroy:
		return fmt.Sprintf("Destroy{%s}", v.Operand)
	case Create:
		return fmt.Sprintf("Create{%s}", v.Operand)
	case ReferenceExpression:
		return fmt.Sprintf("Ref{%s}", v.Operand)
	case TerminalString:
		return "str(" + string(v) + ")"
	case TerminalNumber:
		return "num(" + string(v) + ")"
	case TerminalIdentifier:
		return "id(" + string(v) + ")"
	case TerminalBool:
		return fmt.Sprintf("bool(%t)", bool(v))
	case TerminalNil:
		return "nil"
	case TypeAnnotation:
		return typeToString(v.Type)
	case ResourceTypeAnnotation:
		return "@" + typeToString(v.Type)
	case Argument:
		return v.String()
	case Invocation:
		args := make([]string, 0, len(v.Arguments))
		for _, arg := range v.Arguments {
			args = append(args, arg.String())
		}
		return fmt.Sprintf("Call{%s, [%s]}", v.Callee, strings.Join(args, ", "))
	case MemberAccess:
		if v.Optional {
			return fmt.Sprintf("OptMember{%s, %s}", v.Of, v.Name)
		}
		return fmt.Sprintf("Member{%s, %s}", v.Of, v.Name)
	}

	panic("unhandled")
}
