package indenter

import "testing"

func TestBlockComposition(t *testing.T) {
	inner := Indenter().
		Start("b {").
		NestStrings("2").
		End("}")

	out := Indenter().
		Start("a {").
		NestStrings("1", inner).
		Else("} else {").
		NestThunked(func() string { return "3\n4" }).
		End("}")

	expected := "a {\n" +
		"    1\n" +
		"    b {\n" +
		"        2\n" +
		"    }\n" +
		"} else {\n" +
		"    3\n" +
		"    4\n" +
		"}"
	if out != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, out)
	}
}
