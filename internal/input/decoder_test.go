package input

import (
	"bytes"
	"io"
	"testing"
)

func decodeOne(t *testing.T, b []byte) Token {
	t.Helper()
	tok, err := NewDecoder(bytes.NewReader(b)).Next()
	if err != nil {
		t.Fatalf("Next(%q) failed: %v", b, err)
	}
	return tok
}

func TestDecodeSingleBytes(t *testing.T) {
	tests := []struct {
		name  string
		in    []byte
		key   Key
		digit int
	}{
		{"left h", []byte{'h'}, KeyLeft, 0},
		{"right l", []byte{'l'}, KeyRight, 0},
		{"space pops", []byte{' '}, KeyPop, 0},
		{"enter pops", []byte{'\r'}, KeyPop, 0},
		{"newline pops", []byte{'\n'}, KeyPop, 0},
		{"p pops", []byte{'p'}, KeyPop, 0},
		{"P pops", []byte{'P'}, KeyPop, 0},
		{"zero is home", []byte{'0'}, KeyHome, 0},
		{"caret is home", []byte{'^'}, KeyHome, 0},
		{"ctrl-a is home", []byte{0x01}, KeyHome, 0},
		{"dollar is end", []byte{'$'}, KeyEnd, 0},
		{"ctrl-e is end", []byte{0x05}, KeyEnd, 0},
		{"q quits", []byte{'q'}, KeyQuit, 0},
		{"Q quits", []byte{'Q'}, KeyQuit, 0},
		{"ctrl-c quits", []byte{0x03}, KeyQuit, 0},
		{"digit one", []byte{'1'}, KeyDigit, 1},
		{"digit nine", []byte{'9'}, KeyDigit, 9},
		{"letter x inert", []byte{'x'}, KeyUnknown, 0},
		{"tab inert", []byte{'\t'}, KeyUnknown, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := decodeOne(t, tt.in)
			if tok.Key != tt.key {
				t.Errorf("key = %v, want %v", tok.Key, tt.key)
			}
			if tok.Digit != tt.digit {
				t.Errorf("digit = %d, want %d", tok.Digit, tt.digit)
			}
		})
	}
}

func TestDecodeEscapeSequences(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		key  Key
	}{
		{"csi right arrow", []byte{0x1b, '[', 'C'}, KeyRight},
		{"csi left arrow", []byte{0x1b, '[', 'D'}, KeyLeft},
		{"csi up pops", []byte{0x1b, '[', 'A'}, KeyPop},
		{"csi down pops", []byte{0x1b, '[', 'B'}, KeyPop},
		{"csi home", []byte{0x1b, '[', 'H'}, KeyHome},
		{"csi end", []byte{0x1b, '[', 'F'}, KeyEnd},
		{"ss3 home", []byte{0x1b, 'O', 'H'}, KeyHome},
		{"ss3 end", []byte{0x1b, 'O', 'F'}, KeyEnd},
		{"ss3 arrow right", []byte{0x1b, 'O', 'C'}, KeyRight},
		{"vt home", []byte{0x1b, '[', '1', '~'}, KeyHome},
		{"vt end", []byte{0x1b, '[', '4', '~'}, KeyEnd},
		{"vt home alt", []byte{0x1b, '[', '7', '~'}, KeyHome},
		{"vt end alt", []byte{0x1b, '[', '8', '~'}, KeyEnd},
		{"double escape quits", []byte{0x1b, 0x1b}, KeyQuit},
		{"unknown csi final", []byte{0x1b, '[', 'Z'}, KeyUnknown},
		{"unknown vt code", []byte{0x1b, '[', '5', '~'}, KeyUnknown},
		{"vt without tilde", []byte{0x1b, '[', '1', 'x'}, KeyUnknown},
		{"bare alt-x", []byte{0x1b, 'x'}, KeyUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := decodeOne(t, tt.in)
			if tok.Key != tt.key {
				t.Errorf("key = %v, want %v", tok.Key, tt.key)
			}
			if !bytes.Equal(tok.Raw, tt.in) {
				t.Errorf("raw = %q, want %q (must consume the whole sequence)", tok.Raw, tt.in)
			}
		})
	}
}

func TestDecoderConsumesExactly(t *testing.T) {
	// Two tokens back to back: the decoder must not over-read.
	r := bytes.NewReader([]byte{0x1b, '[', 'C', 'q'})
	d := NewDecoder(r)

	tok, err := d.Next()
	if err != nil {
		t.Fatalf("first Next() failed: %v", err)
	}
	if tok.Key != KeyRight {
		t.Errorf("first key = %v, want KeyRight", tok.Key)
	}

	tok, err = d.Next()
	if err != nil {
		t.Fatalf("second Next() failed: %v", err)
	}
	if tok.Key != KeyQuit {
		t.Errorf("second key = %v, want KeyQuit", tok.Key)
	}
}

func TestDecoderEOF(t *testing.T) {
	d := NewDecoder(bytes.NewReader(nil))
	if _, err := d.Next(); err != io.EOF {
		t.Errorf("Next() on empty stream = %v, want io.EOF", err)
	}
}
