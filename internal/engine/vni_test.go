package engine

import "testing"

func TestVni_ToneTriggers(t *testing.T) {
	tests := []struct {
		key  rune
		tone ToneSlot
	}{
		{'1', ToneAcute},
		{'2', ToneGrave},
		{'3', ToneHook},
		{'4', ToneTilde},
		{'5', ToneDot},
	}
	for _, tt := range tests {
		attr := attrFor(ConventionVni, tt.key)
		if attr.ToneTrigger != tt.tone {
			t.Errorf("attrFor(Vni, %c).ToneTrigger = %v, want %v", tt.key, attr.ToneTrigger, tt.tone)
		}
	}
}

func TestVni_ModifierTriggers(t *testing.T) {
	tests := []struct {
		key  rune
		kind ModifierKind
	}{
		{'6', ModifierCircumflex},
		{'7', ModifierHorn},
		{'8', ModifierBreve},
		{'9', ModifierStroke},
	}
	for _, tt := range tests {
		attr := attrFor(ConventionVni, tt.key)
		if attr.ModifierTrigger != tt.kind {
			t.Errorf("attrFor(Vni, %c).ModifierTrigger = %v, want %v", tt.key, attr.ModifierTrigger, tt.kind)
		}
	}
}

func TestVni_DigitZeroIsSeparator(t *testing.T) {
	if got := typeWordConvention(t, ConventionVni, "nam0nam"); got != "nam" {
		t.Errorf("typeWordConvention(Vni, nam0nam) = %q, want nam", got)
	}
}

func TestVni_OtherDigitsAreNotSeparators(t *testing.T) {
	// digits 1-9 all carry tone/modifier meaning under VNI and must
	// never clear the buffer outright
	for _, d := range []rune{'1', '2', '3', '4', '5', '6', '7', '8', '9'} {
		if attr := attrFor(ConventionVni, d); attr.IsSeparator {
			t.Errorf("attrFor(Vni, %c).IsSeparator = true, want false", d)
		}
	}
}

func TestVni_StrokeTogglesD(t *testing.T) {
	if got := typeWordConvention(t, ConventionVni, "d9"); got != "đ" {
		t.Errorf("typeWordConvention(Vni, d9) = %q, want đ", got)
	}
	if got := typeWordConvention(t, ConventionVni, "d99"); got != "d9" {
		t.Errorf("typeWordConvention(Vni, d99) = %q, want d9", got)
	}
}

func TestVni_HornCompound(t *testing.T) {
	// "d9uoc75" -> đ, ươ cluster plus nặng, mirroring Telex's "dduocwj"
	if got := typeWordConvention(t, ConventionVni, "d9uoc75"); got != "được" {
		t.Errorf("typeWordConvention(Vni, d9uoc75) = %q, want được", got)
	}
}

func TestVni_BracketShortcutsShared(t *testing.T) {
	if got := typeWordConvention(t, ConventionVni, "["); got != "ơ" {
		t.Errorf("typeWordConvention(Vni, [) = %q, want ơ", got)
	}
}
