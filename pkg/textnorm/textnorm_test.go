package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Bell Peppers (organic)", "bell peppers"},
		{"Milk [check date]", "milk"},
		{"Crème fraîche", "creme fraiche"},
		{"mac_and_cheese", "mac and cheese"},
		{"salt/pepper", "salt pepper"},
		{"Trader Joe's granola", "trader joe granola"},
		{"  spaced   out  ", "spaced out"},
		{"semi-sweet chips!", "semi-sweet chips"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStripModifiers(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2 bell peppers", "bell peppers"},
		{"large green apples", "apples"},
		{"ripe bananas", "bananas"},
		{"can of beans", "of beans"},
		{"2x frozen peas", "peas"},
		{"milk", "milk"},
	}
	for _, tc := range cases {
		if got := StripModifiers(tc.in); got != tc.want {
			t.Fatalf("StripModifiers(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStripModifiersNeverEmpties(t *testing.T) {
	// Every token is a descriptor, so the original text is kept.
	if got := StripModifiers("large green"); got != "large green" {
		t.Fatalf("expected pre-strip text back, got %q", got)
	}
}

func TestSingularize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"berries", "berry"},
		{"tomatoes", "tomato"},
		{"boxes", "box"},
		{"peaches", "peach"},
		{"dishes", "dish"},
		{"quizzes", "quiz"},
		{"hummus", "hummus"},
		{"grass", "grass"},
		{"apples", "apple"},
		{"milk", "milk"},
		{"s", "s"},
	}
	for _, tc := range cases {
		if got := Singularize(tc.in); got != tc.want {
			t.Fatalf("Singularize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
