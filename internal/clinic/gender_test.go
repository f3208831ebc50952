package clinic

import "testing"

func TestNormalizeGender(t *testing.T) {
	cases := map[string]string{
		"Male":    GenderMale,
		"male":    GenderMale,
		"FEMALE":  GenderFemale,
		"Female":  GenderFemale,
		" Other ": GenderOther,
		"other":   GenderOther,
	}
	for in, want := range cases {
		got, ok := NormalizeGender(in)
		if !ok || got != want {
			t.Errorf("NormalizeGender(%q) = %q, %v; want %q", in, got, ok, want)
		}
	}

	for _, in := range []string{"", "unknown", "m", "n/a"} {
		if _, ok := NormalizeGender(in); ok {
			t.Errorf("NormalizeGender(%q): expected rejection", in)
		}
	}
}
