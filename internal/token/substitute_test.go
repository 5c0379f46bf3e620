package token

import "testing"

func TestSubstituteEnvVarFusion(t *testing.T) {
	toks := Tokenize(`%HOME%/bin`, false)
	lookup := func(name string) (string, bool) {
		if name == "HOME" {
			return "/home/u", true
		}
		return "", false
	}
	out := Substitute(toks, lookup, false, "")
	if len(out) != 1 || out[0].Text != "/home/u/bin" {
		t.Fatalf("expected fused token /home/u/bin, got %v", out)
	}
}

func TestSubstituteUnknownVarBecomesEmpty(t *testing.T) {
	toks := Tokenize(`%NOPE%x`, false)
	out := Substitute(toks, func(string) (string, bool) { return "", false }, false, "")
	if len(out) != 1 || out[0].Text != "x" {
		t.Fatalf("expected x, got %v", out)
	}
}

func TestSubstituteDropsWhitespaceOnlyTokens(t *testing.T) {
	toks := Tokenize(`echo    hi`, false)
	out := Substitute(toks, func(string) (string, bool) { return "", false }, false, "")
	for _, tok := range out {
		if tok.Text == "" {
			t.Fatalf("expected empty tokens dropped, got %v", out)
		}
	}
}

func TestSubstituteKeepsQuotedEmptyString(t *testing.T) {
	toks := Tokenize(`echo ""`, false)
	out := Substitute(toks, func(string) (string, bool) { return "", false }, false, "")
	found := false
	for _, tok := range out {
		if tok.Kind == QuotedArg && tok.Text == "" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected empty quoted token retained, got %v", out)
	}
}

func TestSubstituteTildeExpansion(t *testing.T) {
	toks := Tokenize(`~/project`, false)
	out := Substitute(toks, func(string) (string, bool) { return "", false }, true, "/home/u")
	if len(out) != 1 || out[0].Text != "/home/u/project" {
		t.Fatalf("expected tilde expanded, got %v", out)
	}
}
