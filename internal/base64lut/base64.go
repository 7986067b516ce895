// Package base64lut decodes the base64 payload of a glTF data URI using a
// precomputed 256-entry classification table, tolerating the whitespace
// characters the glTF spec allows inside a data URI payload. This differs
// from encoding/base64.StdEncoding, which rejects embedded whitespace
// outright, so the stdlib decoder cannot be used directly here.
package base64lut

import "fmt"

type class uint8

const (
	classInvalid class = iota
	classDigit
	classPad
	classSpace
)

// lut classifies every byte value: each of the 64 alphabet bytes is
// classDigit, with its digit value 0..63 stored in digitValue; '=' is
// classPad, and the whitespace set {space, tab, CR, LF, FF, VT} is
// classSpace. Everything else is classInvalid.
var lut [256]class
var digitValue [256]byte

func init() {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	for i := range lut {
		lut[i] = classInvalid
	}
	for i, c := range []byte(alphabet) {
		lut[c] = classDigit
		digitValue[c] = byte(i)
	}
	lut['='] = classPad
	for _, c := range []byte{' ', '\t', '\r', '\n', '\f', '\v'} {
		lut[c] = classSpace
	}
}

// Decode decodes a base64 payload, skipping whitespace and accepting '='
// padding only in the 3rd/4th position of its final quad. A trailing
// partial quad (1 to 3 characters with no closing padding) is an error.
func Decode(payload []byte) ([]byte, error) {
	out := make([]byte, 0, len(payload)*3/4+3)

	var quad [4]byte
	n := 0   // digits collected in the current quad (0..4)
	pad := 0 // padding characters seen in the current quad

	// done is set once a padded quad has been flushed; only whitespace may
	// follow it.
	done := false

	flush := func() error {
		if n == 0 {
			return nil
		}
		if n == 1 {
			return fmt.Errorf("base64lut: truncated quad (1 digit)")
		}
		// Reconstruct bytes from however many digits we saw, minus however
		// many trailing positions were padding rather than real digits.
		b0 := quad[0]<<2 | quad[1]>>4
		out = append(out, b0)
		if n >= 3 && pad < 2 {
			b1 := quad[1]<<4 | quad[2]>>2
			out = append(out, b1)
		}
		if n == 4 && pad == 0 {
			b2 := quad[2]<<6 | quad[3]
			out = append(out, b2)
		}
		if pad > 0 {
			done = true
		}
		n = 0
		pad = 0
		return nil
	}

	for _, c := range payload {
		if done && lut[c] != classSpace {
			return nil, fmt.Errorf("base64lut: data after padded final quad")
		}
		switch lut[c] {
		case classSpace:
			continue
		case classDigit:
			if pad > 0 {
				return nil, fmt.Errorf("base64lut: digit after padding in quad")
			}
			quad[n] = digitValue[c]
			n++
			if n == 4 {
				if err := flush(); err != nil {
					return nil, err
				}
			}
		case classPad:
			// Padding is only valid in position 3 or 4 (0-indexed 2 or 3) of a
			// quad, i.e. after at least 2 digits have been seen.
			if n < 2 {
				return nil, fmt.Errorf("base64lut: padding in position %d", n)
			}
			pad++
			n++
			if n == 4 {
				if err := flush(); err != nil {
					return nil, err
				}
			}
		default:
			return nil, fmt.Errorf("base64lut: invalid byte 0x%02x", c)
		}
	}

	if n != 0 {
		return nil, fmt.Errorf("base64lut: truncated trailing quad (%d digits)", n)
	}

	return out, nil
}
