package parser

import (
	"testing"
)

// parseChunk parses a chunk, failing the test on error
func parseChunk(t *testing.T, src string) []Stmt {
	t.Helper()
	stmts, err := NewParser(src).ParseChunk()
	if err != nil {
		t.Fatalf("ParseChunk(%q) failed: %v", src, err)
	}
	return stmts
}

func TestParseChunkSeparators(t *testing.T) {
	t.Run("semicolons separate statements", func(t *testing.T) {
		stmts := parseChunk(t, "local a = 1; local b = 2; local c = 3")
		if len(stmts) != 3 {
			t.Errorf("got %d statements, want 3", len(stmts))
		}
	})

	t.Run("trailing separator allowed", func(t *testing.T) {
		stmts := parseChunk(t, "local a = 1;")
		if len(stmts) != 1 {
			t.Errorf("got %d statements, want 1", len(stmts))
		}
	})

	t.Run("empty chunk", func(t *testing.T) {
		stmts := parseChunk(t, "")
		if len(stmts) != 0 {
			t.Errorf("got %d statements, want 0", len(stmts))
		}
	})

	t.Run("missing separator rejected", func(t *testing.T) {
		if _, err := NewParser("local a = 1 local b = 2").ParseChunk(); err == nil {
			t.Error("parse succeeded, want error")
		}
	})
}

func TestParseLocal(t *testing.T) {
	t.Run("namelist with explist", func(t *testing.T) {
		stmts := parseChunk(t, "local a, b = 1, 2")
		local, ok := stmts[0].(*LocalStmt)
		if !ok {
			t.Fatalf("got %T, want *LocalStmt", stmts[0])
		}
		if len(local.Names) != 2 || len(local.Exprs) != 2 {
			t.Errorf("got %d names, %d exprs, want 2, 2", len(local.Names), len(local.Exprs))
		}
	})

	t.Run("declaration only", func(t *testing.T) {
		local := parseChunk(t, "local a, b")[0].(*LocalStmt)
		if len(local.Names) != 2 || local.Exprs != nil {
			t.Errorf("got %v = %v, want names only", local.Names, local.Exprs)
		}
	})

	t.Run("local function", func(t *testing.T) {
		stmts := parseChunk(t, "local function f() end")
		lf, ok := stmts[0].(*LocalFuncStmt)
		if !ok {
			t.Fatalf("got %T, want *LocalFuncStmt", stmts[0])
		}
		if lf.Name != "f" {
			t.Errorf("name = %q, want f", lf.Name)
		}
	})
}

func TestParseAssignment(t *testing.T) {
	t.Run("multiple targets", func(t *testing.T) {
		stmts := parseChunk(t, "a, b.c, d[1] = 1, 2, 3")
		assign, ok := stmts[0].(*AssignStmt)
		if !ok {
			t.Fatalf("got %T, want *AssignStmt", stmts[0])
		}
		if len(assign.Targets) != 3 || len(assign.Exprs) != 3 {
			t.Errorf("got %d targets, %d exprs, want 3, 3", len(assign.Targets), len(assign.Exprs))
		}
	})

	t.Run("call is not a target", func(t *testing.T) {
		if _, err := NewParser("f() = 1").ParseChunk(); err == nil {
			t.Error("parse succeeded, want error")
		}
	})

	t.Run("bare expression is not a statement", func(t *testing.T) {
		if _, err := NewParser("a.b").ParseChunk(); err == nil {
			t.Error("parse succeeded, want error")
		}
	})
}

func TestParseControlFlow(t *testing.T) {
	t.Run("if elseif else", func(t *testing.T) {
		src := "if a then f() elseif b then g() elseif c then h() else i() end"
		stmt := parseChunk(t, src)[0].(*IfStmt)
		if len(stmt.ElseIfs) != 2 {
			t.Errorf("got %d elseifs, want 2", len(stmt.ElseIfs))
		}
		if stmt.Else == nil {
			t.Error("else arm missing")
		}
	})

	t.Run("if without else", func(t *testing.T) {
		stmt := parseChunk(t, "if a then f() end")[0].(*IfStmt)
		if stmt.Else != nil || len(stmt.ElseIfs) != 0 {
			t.Error("unexpected else arms")
		}
	})

	t.Run("while", func(t *testing.T) {
		stmt := parseChunk(t, "while a do f(); g() end")[0].(*WhileStmt)
		if len(stmt.Body) != 2 {
			t.Errorf("got %d body statements, want 2", len(stmt.Body))
		}
	})

	t.Run("repeat", func(t *testing.T) {
		stmt := parseChunk(t, "repeat f() until done")[0].(*RepeatStmt)
		if len(stmt.Body) != 1 {
			t.Errorf("got %d body statements, want 1", len(stmt.Body))
		}
	})

	t.Run("do block", func(t *testing.T) {
		stmt := parseChunk(t, "do f() end")[0].(*BlockStmt)
		if len(stmt.Body) != 1 {
			t.Errorf("got %d body statements, want 1", len(stmt.Body))
		}
	})

	t.Run("break", func(t *testing.T) {
		stmts := parseChunk(t, "while a do break end")
		body := stmts[0].(*WhileStmt).Body
		if _, ok := body[0].(*BreakStmt); !ok {
			t.Errorf("got %T, want *BreakStmt", body[0])
		}
	})
}

func TestParseFor(t *testing.T) {
	t.Run("numeric without step", func(t *testing.T) {
		stmt := parseChunk(t, "for i = 1, 10 do f(i) end")[0].(*NumericForStmt)
		if stmt.Name != "i" || stmt.Step != nil {
			t.Errorf("got name %q step %v, want i with nil step", stmt.Name, stmt.Step)
		}
	})

	t.Run("numeric with step", func(t *testing.T) {
		stmt := parseChunk(t, "for i = 10, 1, -1 do f(i) end")[0].(*NumericForStmt)
		if stmt.Step == nil {
			t.Error("step missing")
		}
	})

	t.Run("generic", func(t *testing.T) {
		stmt := parseChunk(t, "for k, v in iter, state do f(k, v) end")[0].(*GenericForStmt)
		if len(stmt.Names) != 2 || len(stmt.Exprs) != 2 {
			t.Errorf("got %d names, %d exprs, want 2, 2", len(stmt.Names), len(stmt.Exprs))
		}
	})
}

func TestParseFunctionStatement(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		stmt := parseChunk(t, "function f(a) return a end")[0].(*FuncDefStmt)
		if len(stmt.Names) != 1 || stmt.Names[0] != "f" {
			t.Errorf("names = %v, want [f]", stmt.Names)
		}
	})

	t.Run("dotted", func(t *testing.T) {
		stmt := parseChunk(t, "function a.b.c() end")[0].(*FuncDefStmt)
		if len(stmt.Names) != 3 {
			t.Errorf("names = %v, want [a b c]", stmt.Names)
		}
	})

	t.Run("method gets implicit self", func(t *testing.T) {
		stmt := parseChunk(t, "function obj:ping(x) end")[0].(*MethDefStmt)
		if stmt.Method != "ping" {
			t.Errorf("method = %q, want ping", stmt.Method)
		}
		if len(stmt.Fn.Params) != 2 || stmt.Fn.Params[0] != "self" || stmt.Fn.Params[1] != "x" {
			t.Errorf("params = %v, want [self x]", stmt.Fn.Params)
		}
	})

	t.Run("dotted method", func(t *testing.T) {
		stmt := parseChunk(t, "function a.b:m() end")[0].(*MethDefStmt)
		if len(stmt.Names) != 2 || stmt.Method != "m" {
			t.Errorf("got names %v method %q, want [a b] m", stmt.Names, stmt.Method)
		}
	})
}

func TestParseReturn(t *testing.T) {
	t.Run("bare", func(t *testing.T) {
		stmt := parseChunk(t, "return")[0].(*ReturnStmt)
		if stmt.Exprs != nil {
			t.Errorf("exprs = %v, want nil", stmt.Exprs)
		}
	})

	t.Run("explist", func(t *testing.T) {
		stmt := parseChunk(t, "return 1, 2, 3")[0].(*ReturnStmt)
		if len(stmt.Exprs) != 3 {
			t.Errorf("got %d exprs, want 3", len(stmt.Exprs))
		}
	})

	t.Run("bare before end", func(t *testing.T) {
		fn := parseChunk(t, "function f() return end")[0].(*FuncDefStmt)
		ret := fn.Fn.Body[0].(*ReturnStmt)
		if ret.Exprs != nil {
			t.Errorf("exprs = %v, want nil", ret.Exprs)
		}
	})

	t.Run("bare before semicolon", func(t *testing.T) {
		stmts := parseChunk(t, "return;")
		if len(stmts) != 1 {
			t.Errorf("got %d statements, want 1", len(stmts))
		}
	})
}

func TestParseCallStatement(t *testing.T) {
	t.Run("direct call", func(t *testing.T) {
		stmt := parseChunk(t, "f(1)")[0].(*CallStmt)
		if _, ok := stmt.Call.(*CallExpr); !ok {
			t.Errorf("call = %T, want *CallExpr", stmt.Call)
		}
	})

	t.Run("method call", func(t *testing.T) {
		stmt := parseChunk(t, "obj:ping()")[0].(*CallStmt)
		if _, ok := stmt.Call.(*MethodCallExpr); !ok {
			t.Errorf("call = %T, want *MethodCallExpr", stmt.Call)
		}
	})
}
