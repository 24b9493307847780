package interp

import (
	"bytes"
	"testing"

	kaelerrors "github.com/kaelscript/kael/internal/errors"
	"github.com/kaelscript/kael/internal/lexer"
	"github.com/kaelscript/kael/internal/parser"
	"github.com/kaelscript/kael/internal/runtime"
)

func run(t *testing.T, source string) (runtime.Value, error) {
	t.Helper()
	tokens, lexErrs := lexer.Lex(source)
	if len(lexErrs) > 0 {
		t.Fatalf("lex errors: %v", lexErrs)
	}
	program, parseErrs := parser.Parse(tokens)
	if len(parseErrs) > 0 {
		t.Fatalf("parse errors: %v", parseErrs)
	}
	in := New()
	return in.Run(program)
}

func TestVarDeclarationAndArithmetic(t *testing.T) {
	v, err := run(t, "let x = 2 + 3 * 4; x;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "14" {
		t.Fatalf("got %s, want 14", v.String())
	}
}

func TestStringConcatenation(t *testing.T) {
	v, err := run(t, `"a" + "b" + 1;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "ab1" {
		t.Fatalf("got %q", v.String())
	}
}

func TestIfElseBranching(t *testing.T) {
	v, err := run(t, `
		let x = 5;
		let result = "";
		if (x > 3) { result = "big"; } else { result = "small"; }
		result;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "big" {
		t.Fatalf("got %q", v.String())
	}
}

func TestWhileLoopWithBreak(t *testing.T) {
	v, err := run(t, `
		let i = 0;
		let sum = 0;
		while (true) {
			if (i >= 5) { break; }
			sum = sum + i;
			i = i + 1;
		}
		sum;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "10" {
		t.Fatalf("got %q, want 10", v.String())
	}
}

func TestForLoopWithContinue(t *testing.T) {
	v, err := run(t, `
		let sum = 0;
		for (let i = 0; i < 5; i = i + 1) {
			if (i == 2) { continue; }
			sum = sum + i;
		}
		sum;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "8" {
		t.Fatalf("got %q, want 8 (0+1+3+4)", v.String())
	}
}

func TestFunctionClosureCapturesOuterBinding(t *testing.T) {
	v, err := run(t, `
		function makeCounter() {
			let count = 0;
			function increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
		let counter = makeCounter();
		counter();
		counter();
		counter();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "3" {
		t.Fatalf("got %q, want 3", v.String())
	}
}

func TestRecursiveFunctionViaHoisting(t *testing.T) {
	v, err := run(t, `
		function fib(n) {
			if (n < 2) { return n; }
			return fib(n - 1) + fib(n - 2);
		}
		fib(10);
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "55" {
		t.Fatalf("got %q, want 55", v.String())
	}
}

func TestArrayAndRecordSharedReferenceThroughClosures(t *testing.T) {
	v, err := run(t, `
		let arr = [1, 2, 3];
		function mutate(a) { a.push(4); }
		mutate(arr);
		arr.length;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "4" {
		t.Fatalf("got %q, want 4", v.String())
	}
}

func TestThrowUncaughtPropagatesAsError(t *testing.T) {
	_, err := run(t, `throw "boom";`)
	if err == nil {
		t.Fatalf("expected error")
	}
	tv, ok := err.(*ThrownValue)
	if !ok {
		t.Fatalf("expected *ThrownValue, got %T", err)
	}
	if tv.Value.String() != "boom" {
		t.Fatalf("got %q", tv.Value.String())
	}
}

func TestTryCatchBindsThrownValue(t *testing.T) {
	v, err := run(t, `
		let msg = "";
		try {
			throw { code: 42 };
		} catch (e) {
			msg = "code=" + e.code;
		}
		msg;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "code=42" {
		t.Fatalf("got %q", v.String())
	}
}

func TestReferenceErrorIsCatchable(t *testing.T) {
	v, err := run(t, `
		let result = "";
		try {
			undeclaredName;
		} catch (e) {
			result = e.name;
		}
		result;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "ReferenceError" {
		t.Fatalf("got %q", v.String())
	}
}

func TestConstReassignmentIsTypeError(t *testing.T) {
	v, err := run(t, `
		let result = "";
		try {
			const x = 1;
			x = 2;
		} catch (e) {
			result = e.name;
		}
		result;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "TypeError" {
		t.Fatalf("got %q", v.String())
	}
}

func TestConsoleLogWritesToConfiguredOutput(t *testing.T) {
	var buf bytes.Buffer
	tokens, _ := lexer.Lex(`console.log("hi");`)
	program, _ := parser.Parse(tokens)
	in := New(WithStdout(&buf))
	if _, err := in.Run(program); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "hi\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestArrayMethodsPushJoinIndexOf(t *testing.T) {
	v, err := run(t, `
		let a = [1, 2, 3];
		a.push(4);
		a.join("-") + "," + a.indexOf(3);
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "1-2-3-4,2" {
		t.Fatalf("got %q", v.String())
	}
}

func TestStringMethods(t *testing.T) {
	v, err := run(t, `"Hello".toUpperCase() + " " + "WORLD".toLowerCase();`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "HELLO world" {
		t.Fatalf("got %q", v.String())
	}
}

func TestAddCoercesNonStringNonNumberOperandsToNumber(t *testing.T) {
	cases := map[string]string{
		"1 + true;":     "2",
		"null + 1;":     "1",
		"true + false;": "1",
	}
	for source, want := range cases {
		v, err := run(t, source)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", source, err)
		}
		if v.String() != want {
			t.Fatalf("%s: got %q, want %q", source, v.String(), want)
		}
	}
}

func TestAddStillConcatenatesWhenEitherSideIsString(t *testing.T) {
	v, err := run(t, `1 + "x";`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "1x" {
		t.Fatalf("got %q", v.String())
	}
}

func TestArraySliceWithNonIntegerBoundIsRangeError(t *testing.T) {
	v, err := run(t, `
		let a = [1, 2, 3, 4];
		let caught = "";
		try {
			a.slice(0.5);
		} catch (e) {
			caught = e.name;
		}
		caught;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "RangeError" {
		t.Fatalf("got %q, want RangeError", v.String())
	}
}

func TestStringSliceWithNonIntegerBoundIsRangeError(t *testing.T) {
	v, err := run(t, `
		let caught = "";
		try {
			"hello".slice(0, 1.5);
		} catch (e) {
			caught = e.name;
		}
		caught;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "RangeError" {
		t.Fatalf("got %q, want RangeError", v.String())
	}
}

func TestJSONStringifyFunctionCatchesAsTypeError(t *testing.T) {
	v, err := run(t, `
		let json = require("json");
		let caught = "";
		try {
			json.stringify(function () {});
		} catch (e) {
			caught = e.name;
		}
		caught;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "TypeError" {
		t.Fatalf("got %q, want TypeError", v.String())
	}
}

func TestUncaughtErrorCarriesStackTraceWhenTraceEnabled(t *testing.T) {
	tokens, lexErrs := lexer.Lex(`
		function inner() {
			undeclaredName;
		}
		function outer() {
			inner();
		}
		outer();
	`)
	if len(lexErrs) > 0 {
		t.Fatalf("lex errors: %v", lexErrs)
	}
	program, parseErrs := parser.Parse(tokens)
	if len(parseErrs) > 0 {
		t.Fatalf("parse errors: %v", parseErrs)
	}

	in := New(WithTrace(true))
	_, err := in.Run(program)
	if err == nil {
		t.Fatalf("expected error")
	}
	ke, ok := err.(*kaelerrors.KaelError)
	if !ok {
		t.Fatalf("expected *errors.KaelError, got %T", err)
	}
	if ke.Trace.Depth() != 2 {
		t.Fatalf("trace depth = %d, want 2 (inner, outer)", ke.Trace.Depth())
	}
	if top := ke.Trace.Top(); top.FunctionName != "inner" {
		t.Fatalf("top frame = %q, want inner", top.FunctionName)
	}
}

func TestUncaughtErrorHasNoTraceWhenTraceDisabled(t *testing.T) {
	tokens, lexErrs := lexer.Lex(`undeclaredName;`)
	if len(lexErrs) > 0 {
		t.Fatalf("lex errors: %v", lexErrs)
	}
	program, parseErrs := parser.Parse(tokens)
	if len(parseErrs) > 0 {
		t.Fatalf("parse errors: %v", parseErrs)
	}

	in := New()
	_, err := in.Run(program)
	if err == nil {
		t.Fatalf("expected error")
	}
	ke, ok := err.(*kaelerrors.KaelError)
	if !ok {
		t.Fatalf("expected *errors.KaelError, got %T", err)
	}
	if ke.Trace != nil {
		t.Fatalf("expected nil trace, got %v", ke.Trace)
	}
}

func TestAllowedModulesRestrictsRequire(t *testing.T) {
	tokens, lexErrs := lexer.Lex(`require("http");`)
	if len(lexErrs) > 0 {
		t.Fatalf("lex errors: %v", lexErrs)
	}
	program, parseErrs := parser.Parse(tokens)
	if len(parseErrs) > 0 {
		t.Fatalf("parse errors: %v", parseErrs)
	}

	in := New(WithAllowedModules([]string{"fs", "json"}))
	if _, err := in.Run(program); err == nil {
		t.Fatalf("expected require(\"http\") to be rejected by allowlist")
	}

	in = New(WithAllowedModules([]string{"http"}))
	if _, err := in.Run(program); err != nil {
		t.Fatalf("expected require(\"http\") to succeed, got %v", err)
	}
}
