// Package input decodes raw terminal bytes into canonical key tokens.
// It is deliberately not a general CSI parser: it resolves exactly the
// small set of sequences the game dispatches on, with bounded lookahead
// of at most four bytes, and reports everything else as inert.
package input

import "io"

// Key is the canonical class of a decoded token.
type Key int

const (
	KeyUnknown Key = iota // Recognized by no class; dispatcher ignores it
	KeyDigit              // '1'-'9': direct pop at pair index Digit-1
	KeyLeft
	KeyRight
	KeyPop // Up/down arrows, space, enter, p/P
	KeyHome
	KeyEnd
	KeyQuit // q/Q, Ctrl-C, double-escape
)

// Token is one decoded key press.
type Token struct {
	Key   Key
	Digit int    // Valid only for KeyDigit, in [1,9]
	Raw   []byte // Bytes consumed for this token
}

const esc = 0x1b

// Decoder turns a blocking byte stream into tokens. Each Next call
// reads exactly as many bytes as the sequence at hand needs.
type Decoder struct {
	r   io.Reader
	buf [1]byte
}

// NewDecoder wraps a raw-mode input stream.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

func (d *Decoder) readByte() (byte, error) {
	if _, err := io.ReadFull(d.r, d.buf[:]); err != nil {
		return 0, err
	}
	return d.buf[0], nil
}

// Next blocks until one full key token has been read.
// io.EOF is returned when the stream closes.
func (d *Decoder) Next() (Token, error) {
	b1, err := d.readByte()
	if err != nil {
		return Token{}, err
	}

	if b1 != esc {
		return classifyByte(b1), nil
	}

	b2, err := d.readByte()
	if err != nil {
		return Token{}, err
	}
	if b2 != '[' && b2 != 'O' {
		raw := []byte{b1, b2}
		if b2 == esc {
			return Token{Key: KeyQuit, Raw: raw}, nil
		}
		return Token{Raw: raw}, nil
	}

	b3, err := d.readByte()
	if err != nil {
		return Token{}, err
	}
	if b3 < '0' || b3 > '9' {
		raw := []byte{b1, b2, b3}
		return classifyFinal(b3, raw), nil
	}

	// Extended sequence: ESC [ <digit> <terminator>, the vt-style
	// home/end encoding (ESC[1~ / ESC[4~).
	b4, err := d.readByte()
	if err != nil {
		return Token{}, err
	}
	raw := []byte{b1, b2, b3, b4}
	if b4 != '~' {
		return Token{Raw: raw}, nil
	}
	switch b3 {
	case '1', '7':
		return Token{Key: KeyHome, Raw: raw}, nil
	case '4', '8':
		return Token{Key: KeyEnd, Raw: raw}, nil
	}
	return Token{Raw: raw}, nil
}

// classifyByte maps a single non-escape byte to its token class.
func classifyByte(b byte) Token {
	raw := []byte{b}
	switch b {
	case 'h':
		return Token{Key: KeyLeft, Raw: raw}
	case 'l':
		return Token{Key: KeyRight, Raw: raw}
	case ' ', '\r', '\n', 'p', 'P':
		return Token{Key: KeyPop, Raw: raw}
	case '0', '^', 0x01: // Ctrl-A
		return Token{Key: KeyHome, Raw: raw}
	case '$', 0x05: // Ctrl-E
		return Token{Key: KeyEnd, Raw: raw}
	case 'q', 'Q', 0x03: // Ctrl-C
		return Token{Key: KeyQuit, Raw: raw}
	}
	if b >= '1' && b <= '9' {
		return Token{Key: KeyDigit, Digit: int(b - '0'), Raw: raw}
	}
	return Token{Raw: raw}
}

// classifyFinal maps the final byte of a three-byte CSI/SS3 sequence.
func classifyFinal(final byte, raw []byte) Token {
	switch final {
	case 'D':
		return Token{Key: KeyLeft, Raw: raw}
	case 'C':
		return Token{Key: KeyRight, Raw: raw}
	case 'A', 'B':
		return Token{Key: KeyPop, Raw: raw}
	case 'H':
		return Token{Key: KeyHome, Raw: raw}
	case 'F':
		return Token{Key: KeyEnd, Raw: raw}
	}
	return Token{Raw: raw}
}
