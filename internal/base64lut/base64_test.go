package base64lut

import (
	"bytes"
	"encoding/base64"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    []byte
		wantErr bool
	}{
		{"empty", "", []byte{}, false},
		{"one_pad_44_bytes", "AAAAAAAAAAAAAAAAAACAPwAAAAAAAAAAAAAAAAAAgD8AAAAAAAABAAIAAAA=", nil, false},
		{"one_pad", "QUI=", []byte{'A', 'B'}, false},
		{"two_pad", "QQ==", []byte{'A'}, false},
		{"unpadded_partial_quad", "QUI", nil, true},
		{"three_bytes", "QUJD", []byte{'A', 'B', 'C'}, false},
		{"whitespace_tolerated", "QU\tJD\n", []byte{'A', 'B', 'C'}, false},
		{"digit_after_padding", "QQ=A", nil, true},
		{"padding_too_early", "Q=AA", nil, true},
		{"invalid_byte", "QQ#A", nil, true},
		{"truncated_one_digit", "Q", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.payload))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Decode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if tt.want != nil && !bytes.Equal(got, tt.want) {
				t.Errorf("Decode() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestDecode_roundTrip checks that decoding a payload produced by the
// standard library's base64 encoder reproduces the original bytes.
func TestDecode_roundTrip(t *testing.T) {
	original := []byte("the quick brown fox jumps over the lazy dog, 0123456789!")
	encoded := base64.StdEncoding.EncodeToString(original)

	got, err := Decode([]byte(encoded))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !bytes.Equal(got, original) {
		t.Errorf("Decode() round trip = %v, want %v", got, original)
	}
}

func TestDecode_paddingByteCount(t *testing.T) {
	// "QQ==" (1 significant byte) must decode to exactly one byte; regression
	// guard for the flush() padding fix. The earlier "QUJD" call fills all
	// four quad positions, but each Decode call starts from fresh quad state,
	// so it cannot affect the second result.
	first, err := Decode([]byte("QUJD")) // "ABC": one full quad, no padding
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !bytes.Equal(first, []byte("ABC")) {
		t.Fatalf("Decode() = %v, want ABC", first)
	}

	got, err := Decode([]byte("QQ=="))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(got) != 1 || got[0] != 'A' {
		t.Errorf("Decode(%q) = %v, want single byte 'A'", "QQ==", got)
	}
}
