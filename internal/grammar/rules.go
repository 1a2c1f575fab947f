// Copyright 2026 The Tau Authors
// SPDX-License-Identifier: Apache-2.0

package grammar

// BuildRules constructs Tau's rule set: the declarative grammar that
// Engine.Parse walks to turn a token.Stream into an AST rooted at a Module
// node, expressed as plain data via Lit/Tok/RuleRef/GrabNested.
//
// Binary expression precedence is built as one rule per precedence tier:
// each tier folds its own trailing "op operand" pairs left-associatively
// (see ast.OpChain), so "1 + 2 * 3" parses with Add at the root and Mul as
// its right child without any post-hoc tree rotation.
//
// Template syntax is recognized (so templated declarations can be spotted
// and skipped during emission) but never expanded.

import (
	"fmt"
	"strconv"

	"github.com/Ctl-F/Tau/internal/ast"
	"github.com/Ctl-F/Tau/internal/compilectx"
	"github.com/Ctl-F/Tau/internal/token"
	"github.com/Ctl-F/Tau/internal/types"
)

// tokenText extracts the single captured literal from a step's bound node.
// Literal-match and kind-match steps both bind an *ast.OrphanTokens carrying
// exactly one token (see Engine.evalStep); rule-reference steps never go
// through this helper.
func tokenText(n ast.Node) string {
	ot, ok := n.(*ast.OrphanTokens)
	if !ok || len(ot.Tokens) == 0 {
		return ""
	}
	return ot.Tokens[0]
}

// resolveType looks up a declared type name, recording an action error
// ("Unknown type: X") if it is not registered.
func resolveType(ctx *compilectx.Context, name string) (types.ID, bool) {
	id := ctx.Registry.IDFromName(name)
	if id == types.Unknown {
		ctx.PushError(fmt.Sprintf("Unknown type: %s", name))
		return types.Unknown, false
	}
	return id, true
}

func unquoteString(lit string) string {
	if len(lit) < 2 {
		return ""
	}
	return lit[1 : len(lit)-1]
}

// decodeChar handles the two accepted char-literal shapes: 'x' (single
// visible char) and '\xx' (backslash + two hex digits).
func decodeChar(lit string) byte {
	if len(lit) == 3 {
		return lit[1]
	}
	v, _ := strconv.ParseUint(lit[2:4], 16, 8)
	return byte(v)
}

func visibilityOf(isPublic bool) ast.Visibility {
	if isPublic {
		return ast.Public
	}
	return ast.Private
}

// BuildRules returns the complete Tau rule set, ready to hand to NewEngine.
func BuildRules() RuleSet {
	rules := RuleSet{}

	// ---- Paths (declaration-site) ------------------------------------

	rules["TemplateParams"] = []Alt{
		{
			Steps: []Step{GrabNested("<", ">", "raw")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				raw := v["raw"].(*ast.OrphanTokens).Tokens
				var names []string
				for _, t := range raw {
					if t != "," {
						names = append(names, t)
					}
				}
				return &ast.TemplateParams{Names: names}
			},
		},
	}

	rules["TemplateArgs"] = []Alt{
		{
			Steps: []Step{GrabNested("<", ">", "raw")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				return &ast.TemplateArgs{}
			},
		},
	}

	rules["PathSpecTail"] = []Alt{
		{
			Steps: []Step{Lit("."), Tok(token.Identifier, "head"), RuleRefOpt("PathSpecTail", "tail")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				bit := ast.PathSpecBit{Name: tokenText(v["head"])}
				var rest []ast.PathSpecBit
				if n, ok := v["tail"]; ok {
					rest = n.(*ast.PathSpec).Bits
				}
				return &ast.PathSpec{Bits: append([]ast.PathSpecBit{bit}, rest...)}
			},
		},
	}

	rules["PathSpec"] = []Alt{
		{
			Steps: []Step{
				Tok(token.Identifier, "head"),
				RuleRefOpt("TemplateParams", "tp"),
				RuleRefOpt("PathSpecTail", "tail"),
			},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				var tp *ast.TemplateParams
				if n, ok := v["tp"]; ok {
					tp = n.(*ast.TemplateParams)
				}
				bit := ast.PathSpecBit{Name: tokenText(v["head"]), Template: tp}
				var rest []ast.PathSpecBit
				if n, ok := v["tail"]; ok {
					rest = n.(*ast.PathSpec).Bits
				}
				return &ast.PathSpec{Bits: append([]ast.PathSpecBit{bit}, rest...)}
			},
		},
	}

	// ---- Paths (use-site) ----------------------------------------------

	rules["PathTail"] = []Alt{
		{
			Steps: []Step{
				Lit("."), Tok(token.Identifier, "head"),
				RuleRefOpt("TemplateArgs", "ta"), RuleRefOpt("PathTail", "tail"),
			},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				var ta *ast.TemplateArgs
				if n, ok := v["ta"]; ok {
					ta = n.(*ast.TemplateArgs)
				}
				bit := ast.PathBit{Name: tokenText(v["head"]), Template: ta}
				var rest []ast.PathBit
				if n, ok := v["tail"]; ok {
					rest = n.(*ast.Path).Bits
				}
				return &ast.Path{Bits: append([]ast.PathBit{bit}, rest...)}
			},
		},
	}

	rules["Path"] = []Alt{
		{
			Steps: []Step{
				Tok(token.Identifier, "head"),
				RuleRefOpt("TemplateArgs", "ta"),
				RuleRefOpt("PathTail", "tail"),
			},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				var ta *ast.TemplateArgs
				if n, ok := v["ta"]; ok {
					ta = n.(*ast.TemplateArgs)
				}
				bit := ast.PathBit{Name: tokenText(v["head"]), Template: ta}
				var rest []ast.PathBit
				if n, ok := v["tail"]; ok {
					rest = n.(*ast.Path).Bits
				}
				return &ast.Path{Bits: append([]ast.PathBit{bit}, rest...)}
			},
		},
	}

	// ---- Expressions: precedence tiers, tightest named rules first ----

	rules["PrimaryExpr"] = []Alt{
		{ // parenthesized
			Steps: []Step{Lit("("), RuleRef("Expr", "e"), Lit(")")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				return v["e"]
			},
		},
		{
			Steps: []Step{Lit("true")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				return &ast.BoolLiteral{Value: true}
			},
		},
		{
			Steps: []Step{Lit("false")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				return &ast.BoolLiteral{Value: false}
			},
		},
		{
			Steps: []Step{Tok(token.Integer, "lit")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				text := tokenText(v["lit"])
				val, _ := strconv.ParseInt(text, 10, 64)
				return &ast.IntegerLiteral{Value: val, Text: text}
			},
		},
		{
			Steps: []Step{Tok(token.Float, "lit")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				text := tokenText(v["lit"])
				val, _ := strconv.ParseFloat(text, 64)
				return &ast.FloatLiteral{Value: val, Text: text}
			},
		},
		{
			Steps: []Step{Tok(token.String, "lit")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				return &ast.StringLiteral{Value: unquoteString(tokenText(v["lit"]))}
			},
		},
		{
			Steps: []Step{Tok(token.Char, "lit")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				return &ast.CharLiteral{Value: decodeChar(tokenText(v["lit"]))}
			},
		},
		{ // function call
			Steps: []Step{RuleRef("Path", "path"), Lit("("), RuleRef("ArgList", "args"), Lit(")")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				return &ast.FunctionCall{Name: v["path"].(*ast.Path), Arguments: v["args"].(*ast.Arguments)}
			},
		},
		{ // bare variable reference
			Steps: []Step{RuleRef("Path", "path")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				return &ast.Variable{Name: v["path"].(*ast.Path)}
			},
		},
	}

	rules["ArgListTail"] = []Alt{
		{
			Steps: []Step{Lit(","), RuleRef("Expr", "e"), RuleRefOpt("ArgListTail", "rest")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				var rest []ast.Node
				if n, ok := v["rest"]; ok {
					rest = n.(*ast.Arguments).Exprs
				}
				return &ast.Arguments{Exprs: append([]ast.Node{v["e"]}, rest...)}
			},
		},
	}

	rules["ArgList"] = []Alt{
		{
			Steps: []Step{RuleRef("Expr", "e"), RuleRefOpt("ArgListTail", "rest")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				var rest []ast.Node
				if n, ok := v["rest"]; ok {
					rest = n.(*ast.Arguments).Exprs
				}
				return &ast.Arguments{Exprs: append([]ast.Node{v["e"]}, rest...)}
			},
		},
		{ // empty argument list
			Steps: nil,
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				return &ast.Arguments{}
			},
		},
	}

	rules["PostfixExpr"] = []Alt{
		{ // cast: "expr as Type" — the target type is validated but not
			// stored on the node; emission falls through to the generic
			// unary path.
			Steps: []Step{RuleRef("PrimaryExpr", "base"), Lit("as"), Tok(token.Identifier, "type")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				resolveType(ctx, tokenText(v["type"]))
				return &ast.UnaryOperator{Op: types.OpCast, Prefix: true, Child: v["base"]}
			},
		},
		{
			Steps: []Step{RuleRef("PrimaryExpr", "base"), Lit("++")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				return &ast.UnaryOperator{Op: types.OpPostInc, Prefix: false, Child: v["base"]}
			},
		},
		{
			Steps: []Step{RuleRef("PrimaryExpr", "base"), Lit("--")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				return &ast.UnaryOperator{Op: types.OpPostDec, Prefix: false, Child: v["base"]}
			},
		},
		{
			Steps: []Step{RuleRef("PrimaryExpr", "base")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				return v["base"]
			},
		},
	}

	unaryPrefixOps := []struct {
		lit string
		op  types.Op
	}{
		{"-", types.OpNegative}, {"!", types.OpNot}, {"~", types.OpBinaryNot},
		{"*", types.OpDereference}, {"&", types.OpReference},
		{"++", types.OpPreInc}, {"--", types.OpPreDec},
	}
	var unaryAlts []Alt
	for _, o := range unaryPrefixOps {
		op := o.op
		unaryAlts = append(unaryAlts, Alt{
			Steps: []Step{Lit(o.lit), RuleRef("UnaryExpr", "child")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				return &ast.UnaryOperator{Op: op, Prefix: true, Child: v["child"]}
			},
		})
	}
	unaryAlts = append(unaryAlts, Alt{
		Steps: []Step{RuleRef("PostfixExpr", "e")},
		Action: func(ctx *compilectx.Context, v View) ast.Node {
			return v["e"]
		},
	})
	rules["UnaryExpr"] = unaryAlts

	// binaryTier wires one left-associative precedence level: Head is the
	// next-tighter rule name, ops is (literal, Op) tried in listed order.
	binaryTier := func(name, head string, ops []struct {
		lit string
		op  types.Op
	}) {
		tailName := name + "Tail"
		var tailAlts []Alt
		for _, o := range ops {
			op := o.op
			tailAlts = append(tailAlts, Alt{
				Steps: []Step{Lit(o.lit), RuleRef(head, "rhs"), RuleRefOpt(tailName, "rest")},
				Action: func(ctx *compilectx.Context, v View) ast.Node {
					var rest []ast.OpChainEntry
					if n, ok := v["rest"]; ok {
						rest = n.(*ast.OpChain).Entries
					}
					return &ast.OpChain{Entries: append([]ast.OpChainEntry{{Op: op, Rhs: v["rhs"]}}, rest...)}
				},
			})
		}
		tailAlts = append(tailAlts, Alt{
			Steps: nil,
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				return &ast.OpChain{}
			},
		})
		rules[tailName] = tailAlts

		rules[name] = []Alt{
			{
				Steps: []Step{RuleRef(head, "lhs"), RuleRefOpt(tailName, "tail")},
				Action: func(ctx *compilectx.Context, v View) ast.Node {
					result := v["lhs"]
					if n, ok := v["tail"]; ok {
						for _, e := range n.(*ast.OpChain).Entries {
							result = &ast.BinaryOperator{Op: e.Op, Lhs: result, Rhs: e.Rhs}
						}
					}
					return result
				},
			},
		}
	}

	type opEntry = struct {
		lit string
		op  types.Op
	}
	binaryTier("MulExpr", "UnaryExpr", []opEntry{
		{"*", types.OpMul}, {"/", types.OpDiv}, {"%", types.OpMod},
		{"<<", types.OpLeftShift}, {">>", types.OpRightShift},
	})
	binaryTier("AddExpr", "MulExpr", []opEntry{{"+", types.OpAdd}, {"-", types.OpSub}})
	binaryTier("RelExpr", "AddExpr", []opEntry{
		{"<=", types.OpLessEquals}, {">=", types.OpGreaterEquals},
		{"<", types.OpLessThan}, {">", types.OpGreaterThan},
	})
	binaryTier("EqExpr", "RelExpr", []opEntry{{"==", types.OpEquals}, {"!=", types.OpNotEquals}})
	binaryTier("BitAndExpr", "EqExpr", []opEntry{{"&", types.OpBinaryAnd}})
	binaryTier("BitXorExpr", "BitAndExpr", []opEntry{{"^", types.OpBinaryXor}})
	binaryTier("BitOrExpr", "BitXorExpr", []opEntry{{"|", types.OpBinaryOr}})
	binaryTier("LogicAndExpr", "BitOrExpr", []opEntry{{"&&", types.OpLogicAnd}})
	binaryTier("LogicOrExpr", "LogicAndExpr", []opEntry{{"||", types.OpLogicOr}})

	assignOps := []opEntry{
		{"=", types.OpAssign}, {"+=", types.OpAddAssign}, {"-=", types.OpSubAssign},
		{"*=", types.OpMulAssign}, {"/=", types.OpDivAssign}, {"%=", types.OpModAssign},
		{"&=", types.OpAndAssign}, {"|=", types.OpOrAssign}, {"^=", types.OpXorAssign},
		{"<<=", types.OpLeftShiftAssign}, {">>=", types.OpRightShiftAssign},
	}
	var assignAlts []Alt
	for _, o := range assignOps {
		op := o.op
		assignAlts = append(assignAlts, Alt{
			Steps: []Step{RuleRef("LogicOrExpr", "lhs"), Lit(o.lit), RuleRef("AssignExpr", "rhs")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				return &ast.BinaryOperator{Op: op, Lhs: v["lhs"], Rhs: v["rhs"]}
			},
		})
	}
	rules["AssignExpr"] = assignAlts
	rules["AssignExpr"] = append(rules["AssignExpr"], Alt{
		Steps: []Step{RuleRef("LogicOrExpr", "lhs")},
		Action: func(ctx *compilectx.Context, v View) ast.Node {
			return v["lhs"]
		},
	})

	rules["Expr"] = []Alt{
		{
			Steps: []Step{RuleRef("AssignExpr", "e")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				return v["e"]
			},
		},
	}

	// ---- Statements ------------------------------------------------------

	rules["ReturnStmt"] = []Alt{
		{
			Steps: []Step{Lit("return"), RuleRef("Expr", "val"), Lit(";")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				return &ast.Return{Value: v["val"]}
			},
		},
		{
			Steps: []Step{Lit("return"), Lit(";")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				return &ast.Return{}
			},
		},
	}

	rules["ElseClause"] = []Alt{
		{
			Steps: []Step{Lit("else"), RuleRef("IfStmt", "inner")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				return &ast.Else{If: v["inner"].(*ast.If)}
			},
		},
		{
			Steps: []Step{Lit("else"), Lit("{"), RuleRef("StmtList", "body"), Lit("}")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				return &ast.Else{Body: v["body"].(*ast.StatementBlock)}
			},
		},
	}

	rules["IfStmt"] = []Alt{
		{
			Steps: []Step{
				Lit("if"), Lit("("), RuleRef("Expr", "cond"), Lit(")"),
				Lit("{"), RuleRef("StmtList", "body"), Lit("}"),
				RuleRefOpt("ElseClause", "els"),
			},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				n := &ast.If{Condition: v["cond"], Body: v["body"].(*ast.StatementBlock)}
				if e, ok := v["els"]; ok {
					n.Else = e.(*ast.Else)
				}
				return n
			},
		},
	}

	rules["VariableDeclStmt"] = []Alt{
		{
			Steps: []Step{
				Tok(token.Identifier, "type"), Tok(token.Identifier, "name"),
				Lit("="), RuleRef("Expr", "def"), Lit(";"),
			},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				t, ok := resolveType(ctx, tokenText(v["type"]))
				if !ok {
					return nil
				}
				return &ast.VariableDecl{Name: tokenText(v["name"]), Type: t, Default: v["def"], Visibility: ast.Private}
			},
		},
		{
			Steps: []Step{Tok(token.Identifier, "type"), Tok(token.Identifier, "name"), Lit(";")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				t, ok := resolveType(ctx, tokenText(v["type"]))
				if !ok {
					return nil
				}
				return &ast.VariableDecl{Name: tokenText(v["name"]), Type: t, Visibility: ast.Private}
			},
		},
	}

	rules["InlineCStmt"] = []Alt{
		{
			Steps: []Step{Lit("inline"), Lit("_C"), GrabNested("{", "}", "raw")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				return &ast.InlineCBlock{Tokens: v["raw"].(*ast.OrphanTokens).Tokens}
			},
		},
	}

	rules["ExprStmt"] = []Alt{
		{
			Steps: []Step{RuleRef("Expr", "e"), Lit(";")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				return v["e"]
			},
		},
	}

	rules["Statement"] = []Alt{
		{Steps: []Step{RuleRef("ReturnStmt", "s")}, Action: passThrough("s")},
		{Steps: []Step{RuleRef("IfStmt", "s")}, Action: passThrough("s")},
		{Steps: []Step{RuleRef("VariableDeclStmt", "s")}, Action: passThrough("s")},
		{Steps: []Step{RuleRef("InlineCStmt", "s")}, Action: passThrough("s")},
		{Steps: []Step{RuleRef("ExprStmt", "s")}, Action: passThrough("s")},
	}

	rules["StmtList"] = []Alt{
		{
			Steps: []Step{RuleRef("Statement", "s"), RuleRefOpt("StmtList", "rest")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				var rest []ast.Node
				if n, ok := v["rest"]; ok {
					rest = n.(*ast.StatementBlock).Statements
				}
				return &ast.StatementBlock{Statements: append([]ast.Node{v["s"]}, rest...)}
			},
		},
		{
			Steps: nil,
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				return &ast.StatementBlock{}
			},
		},
	}

	// ---- Declarations ------------------------------------------------

	rules["ParamListTail"] = []Alt{
		{
			Steps: []Step{
				Lit(","), Tok(token.Identifier, "type"), Tok(token.Identifier, "name"),
				RuleRefOpt("ParamListTail", "rest"),
			},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				t, ok := resolveType(ctx, tokenText(v["type"]))
				if !ok {
					return nil
				}
				p := ast.Param{Name: tokenText(v["name"]), Type: t}
				var rest []ast.Param
				if n, ok := v["rest"]; ok {
					rest = n.(*ast.ParameterList).Params
				}
				return &ast.ParameterList{Params: append([]ast.Param{p}, rest...)}
			},
		},
	}

	rules["ParamList"] = []Alt{
		{
			Steps: []Step{
				Tok(token.Identifier, "type"), Tok(token.Identifier, "name"),
				RuleRefOpt("ParamListTail", "rest"),
			},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				t, ok := resolveType(ctx, tokenText(v["type"]))
				if !ok {
					return nil
				}
				p := ast.Param{Name: tokenText(v["name"]), Type: t}
				var rest []ast.Param
				if n, ok := v["rest"]; ok {
					rest = n.(*ast.ParameterList).Params
				}
				return &ast.ParameterList{Params: append([]ast.Param{p}, rest...)}
			},
		},
		{
			Steps: nil,
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				return &ast.ParameterList{}
			},
		},
	}

	funcSig := func(public bool) Alt {
		steps := []Step{}
		if public {
			steps = append(steps, Lit("pub"))
		}
		steps = append(steps,
			Lit("fn"), Tok(token.Identifier, "name"), RuleRefOpt("TemplateParams", "tp"),
			Lit("("), RuleRef("ParamList", "params"), Lit(")"),
			Tok(token.Identifier, "rettype"),
			Lit("{"), RuleRef("StmtList", "stmts"), Lit("}"),
		)
		return Alt{
			Steps: steps,
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				ret, ok := resolveType(ctx, tokenText(v["rettype"]))
				if !ok {
					return nil
				}
				var tp *ast.TemplateParams
				if n, ok := v["tp"]; ok {
					tp = n.(*ast.TemplateParams)
				}
				return &ast.FunctionDef{
					Name:       tokenText(v["name"]),
					Params:     v["params"].(*ast.ParameterList),
					Template:   tp,
					ReturnType: ret,
					Body:       v["stmts"].(*ast.StatementBlock),
					Visibility: visibilityOf(public),
				}
			},
		}
	}
	rules["FunctionDecl"] = []Alt{funcSig(true), funcSig(false)}

	rules["MemberList"] = []Alt{
		{
			Steps: []Step{RuleRef("Member", "m"), RuleRefOpt("MemberList", "rest")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				var rest []*ast.VariableDecl
				if n, ok := v["rest"]; ok {
					rest = n.(*ast.MemberList).Members
				}
				m := v["m"].(*ast.VariableDecl)
				return &ast.MemberList{Members: append([]*ast.VariableDecl{m}, rest...)}
			},
		},
		{
			Steps: nil,
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				return &ast.MemberList{}
			},
		},
	}

	memberAlt := func(public bool) Alt {
		steps := []Step{}
		if public {
			steps = append(steps, Lit("pub"))
		}
		steps = append(steps, Tok(token.Identifier, "type"), Tok(token.Identifier, "name"), Lit(";"))
		return Alt{
			Steps: steps,
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				t, ok := resolveType(ctx, tokenText(v["type"]))
				if !ok {
					return nil
				}
				return &ast.VariableDecl{Name: tokenText(v["name"]), Type: t, Visibility: visibilityOf(public)}
			},
		}
	}
	rules["Member"] = []Alt{memberAlt(true), memberAlt(false)}

	structAlt := func(public bool) Alt {
		steps := []Step{}
		if public {
			steps = append(steps, Lit("pub"))
		}
		steps = append(steps,
			Lit("struct"), Tok(token.Identifier, "name"), RuleRefOpt("TemplateParams", "tp"),
			Lit("{"), RuleRef("MemberList", "members"), Lit("}"),
		)
		return Alt{
			Steps: steps,
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				members := v["members"].(*ast.MemberList).Members
				fields := make([]types.FieldDef, len(members))
				for i, m := range members {
					fields[i] = types.FieldDef{Name: m.Name, Type: m.Type}
				}
				id, err := ctx.Registry.DefineStruct(tokenText(v["name"]), fields)
				if err != nil {
					ctx.PushError(err.Error())
					return nil
				}
				var tp *ast.TemplateParams
				if n, ok := v["tp"]; ok {
					tp = n.(*ast.TemplateParams)
				}
				return &ast.StructDef{
					Name: tokenText(v["name"]), Members: members, Template: tp,
					Visibility: visibilityOf(public), TypeID: id,
				}
			},
		}
	}
	rules["StructDecl"] = []Alt{structAlt(true), structAlt(false)}

	rules["Include"] = []Alt{
		{
			Steps: []Step{Lit("include"), Lit("_C"), Tok(token.String, "path"), Lit(";")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				return &ast.Include{IsCInclude: true, Raw: unquoteString(tokenText(v["path"]))}
			},
		},
		{
			Steps: []Step{Lit("include"), RuleRef("Path", "path"), Lit(";")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				return &ast.Include{Path: v["path"].(*ast.Path)}
			},
		},
	}

	rules["Decl"] = []Alt{
		{Steps: []Step{RuleRef("Include", "d")}, Action: passThrough("d")},
		{Steps: []Step{RuleRef("StructDecl", "d")}, Action: passThrough("d")},
		{Steps: []Step{RuleRef("FunctionDecl", "d")}, Action: passThrough("d")},
	}

	rules["BodyItems"] = []Alt{
		{
			Steps: []Step{RuleRef("Decl", "item"), RuleRefOpt("BodyItems", "rest")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				body := &ast.Body{}
				if n, ok := v["rest"]; ok {
					body = n.(*ast.Body)
				}
				switch d := v["item"].(type) {
				case *ast.Include:
					body.Includes = append([]*ast.Include{d}, body.Includes...)
				case *ast.StructDef:
					body.Structs = append([]*ast.StructDef{d}, body.Structs...)
				case *ast.FunctionDef:
					body.Functions = append([]*ast.FunctionDef{d}, body.Functions...)
				}
				return body
			},
		},
		{
			Steps: nil,
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				return &ast.Body{}
			},
		},
	}

	rules["Body"] = []Alt{
		{
			Steps: []Step{RuleRefOpt("BodyItems", "items")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				if n, ok := v["items"]; ok {
					return n.(*ast.Body)
				}
				return &ast.Body{}
			},
		},
	}

	rules["Module"] = []Alt{
		{
			Steps: []Step{Lit("mod"), RuleRef("PathSpec", "name"), Lit(";"), RuleRef("Body", "body")},
			Action: func(ctx *compilectx.Context, v View) ast.Node {
				body := v["body"].(*ast.Body)
				if len(body.Includes) == 0 && len(body.Structs) == 0 && len(body.Functions) == 0 {
					ctx.PushError("A module cannot be empty")
					return nil
				}
				m := &ast.Module{Name: v["name"].(*ast.PathSpec), Body: body}
				ctx.Module = m
				return m
			},
		},
	}

	return rules
}

// passThrough builds an Action that forwards the single named capture
// unchanged; used by every "one rule dispatching to several alternatives"
// rule (Decl, Statement) where no AST transformation is needed.
func passThrough(key string) ActionFn {
	return func(ctx *compilectx.Context, v View) ast.Node {
		return v[key]
	}
}
