package fragment

import "testing"

func TestDecode(t *testing.T) {
	p, err := Decode("#list=%23%20Groceries%0A-%20%5B%20%5D%20Milk&print=1")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Text != "# Groceries\n- [ ] Milk" {
		t.Fatalf("text = %q", p.Text)
	}
	if !p.AutoExport {
		t.Fatalf("expected auto export")
	}
}

func TestDecodeEmpty(t *testing.T) {
	p, err := Decode("")
	if err != nil || p.Text != "" || p.AutoExport {
		t.Fatalf("expected empty payload, got %+v err=%v", p, err)
	}
}

func TestDecodeNoPrintFlag(t *testing.T) {
	p, err := Decode("list=hello")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Text != "hello" || p.AutoExport {
		t.Fatalf("payload = %+v", p)
	}
}

func TestRoundTrip(t *testing.T) {
	in := Payload{Text: "# T\n- [ ] a&b", AutoExport: true}
	out, err := Decode(Encode(in))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != in {
		t.Fatalf("round trip: %+v != %+v", out, in)
	}
}
