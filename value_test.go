package tcalc

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestValueNumeric(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcalc")
	defer teardown()
	//
	v := Numeric(-17)
	if v.Type() != NumericType {
		t.Errorf("expected value to be of type numeric, is %s", v.Type())
	}
	if !v.Self().IsNumeric() || v.Self().IsText() {
		t.Error("expected value to identify as numeric, doesn't")
	}
	if v.Self().String() != "-17" {
		t.Errorf("expected numeric to print as '-17', is %q", v.Self().String())
	}
}

func TestValueText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcalc")
	defer teardown()
	//
	v := Text("hello")
	if v.Type() != TextType {
		t.Errorf("expected value to be of type text, is %s", v.Type())
	}
	if !v.Self().IsText() || v.Self().IsNumeric() {
		t.Error("expected value to identify as text, doesn't")
	}
	if v.Self().String() != `"hello"` {
		t.Errorf("expected text to print quoted, is %s", v.Self().String())
	}
}

func TestValueUndefined(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcalc")
	defer teardown()
	//
	b := ValueBase{}
	if b.Type() != Undefined {
		t.Errorf("expected empty value base to be undefined, is %s", b.Type())
	}
}
