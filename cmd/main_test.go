package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const russianSample = `
    сумма РАВНО 5 МИНУС 9;
    суммадва РАВНО 0 МИНУС 6;
    КОНСОЛЬ сумма;
    КОНСОЛЬ суммадва;
    КОНСОЛЬ сумма МИНУС суммадва ПЛЮС ( 5 ПЛЮС 3 );
`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func captureRun(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr strings.Builder
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunInline(t *testing.T) {
	code, out, errOut := captureRun(t, "-e", "x = 5 - 9; print x;")
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	if out != "-4\n" {
		t.Errorf("stdout = %q, want %q", out, "-4\n")
	}
	if errOut != "" {
		t.Errorf("unexpected stderr:\n%s", errOut)
	}
}

func TestRunFileRussianDialect(t *testing.T) {
	path := writeTempFile(t, "sample.konsol", russianSample)

	code, out, errOut := captureRun(t, "-dialect", "ru", path)
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	if out != "-4\n-6\n10\n" {
		t.Errorf("stdout = %q", out)
	}
}

func TestRunConfigFile(t *testing.T) {
	cfg := writeTempFile(t, "konsol.yml", "dialect: ru\ndump_tokens: true\n")
	path := writeTempFile(t, "sample.konsol", "КОНСОЛЬ 1;")

	code, out, errOut := captureRun(t, "-config", cfg, path)
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	want := "LOG()\nNUMBER(1)\nSEMICOLON()\n1\n"
	if out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestRunFlagsOverrideConfig(t *testing.T) {
	cfg := writeTempFile(t, "konsol.yml", "dialect: ru\ndump_tokens: true\n")

	code, out, errOut := captureRun(t, "-config", cfg, "-dialect", "ascii", "-tokens=false", "-e", "print 2;")
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	if out != "2\n" {
		t.Errorf("stdout = %q, want %q", out, "2\n")
	}
}

func TestRunDumpTokens(t *testing.T) {
	code, out, _ := captureRun(t, "-tokens", "-e", "x = 1;")
	if code != 0 {
		t.Fatalf("exit=%d", code)
	}
	want := "VARIABLE(x)\nASSIGN()\nNUMBER(1)\nSEMICOLON()\n"
	if out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestRunDumpASTText(t *testing.T) {
	code, out, _ := captureRun(t, "-ast", "-ast-format", "text", "-e", "print 1 - 2 + 3;")
	if code != 0 {
		t.Fatalf("exit=%d", code)
	}
	want := "print ((1 - 2) + 3);\n2\n"
	if out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestRunDumpASTLitter(t *testing.T) {
	code, out, _ := captureRun(t, "-ast", "-e", "x = 4;")
	if code != 0 {
		t.Fatalf("exit=%d", code)
	}
	for _, want := range []string{"StatementList", "VariableExpr", "RawText", `"4"`} {
		if !strings.Contains(out, want) {
			t.Errorf("litter dump missing %s:\n%s", want, out)
		}
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"parse", []string{"-e", "print 1"}, 1, "Run failed with errors:\nERROR: unexpected end of input, expected: 'SEMICOLON'\n"},
		{"parse_positioned", []string{"-e", "x 5;"}, 1, "ERROR: 1:3: unexpected token: 'NUMBER', expected: 'ASSIGN'\n"},
		{"undefined", []string{"-e", "print y;"}, 1, "ERROR: 1:7: undefined variable: 'y'\n"},
		{"lex", []string{"-e", "print 1 * 2;"}, 1, "ERROR: 1:9: unexpected character: '*'\n"},
		{"missing_file", []string{filepath.Join(os.TempDir(), "konsol-no-such-file")}, 1, "no such file"},
		{"no_input", nil, 2, "Usage: konsol"},
		{"bad_flag", []string{"-bogus"}, 2, "flag provided but not defined"},
		{"bad_dialect", []string{"-dialect", "klingon", "-e", "print 1;"}, 2, "unknown dialect"},
		{"bad_ast_format", []string{"-ast-format", "xml", "-e", "print 1;"}, 2, "unknown -ast-format"},
		{"bad_config", []string{"-config", filepath.Join(os.TempDir(), "konsol-no-such.yml"), "-e", "print 1;"}, 2, "config: open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := captureRun(t, tt.args...)
			if code != tt.wantCode {
				t.Errorf("exit=%d, want %d\nstderr:\n%s", code, tt.wantCode, errOut)
			}
			if !strings.Contains(errOut, tt.wantErr) {
				t.Errorf("stderr missing %q:\n%s", tt.wantErr, errOut)
			}
		})
	}
}

func TestRunKeepsOutputBeforeRuntimeError(t *testing.T) {
	code, out, _ := captureRun(t, "-e", "print 1; print y; print 2;")
	if code != 1 {
		t.Errorf("exit=%d, want 1", code)
	}
	if out != "1\n" {
		t.Errorf("stdout = %q, want %q", out, "1\n")
	}
}

func TestRunVersion(t *testing.T) {
	code, out, _ := captureRun(t, "-version")
	if code != 0 || !strings.HasPrefix(out, "konsol version ") {
		t.Errorf("exit=%d stdout=%q", code, out)
	}
}
