package animimage

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestReadBlocks(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"single block", []byte{3, 0xAA, 0xBB, 0xCC, 0}, []byte{0xAA, 0xBB, 0xCC}},
		{"two blocks", []byte{2, 1, 2, 3, 4, 5, 6, 0}, []byte{1, 2, 3, 4, 5, 6}},
		{"lone terminator", []byte{0}, nil},
	}

	for _, tCase := range cases {
		t.Run(tCase.name, func(t *testing.T) {
			got, err := ReadBlocks(bytes.NewReader(tCase.in))
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tCase.want) {
				t.Fatalf("expected(% x) != actual(% x)", tCase.want, got)
			}
		})
	}
}

func TestReadBlocksStopsAtTerminator(t *testing.T) {
	in := []byte{1, 0x7F, 0, 0xDE, 0xAD}
	got, err := ReadBlocks(bytes.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{0x7F}) {
		t.Fatalf("read past the terminator: % x", got)
	}
}

func TestReadBlocksTruncated(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
	}{
		{"no terminator", []byte{2, 1, 2}},
		{"short payload", []byte{5, 1, 2}},
		{"empty stream", nil},
	}

	for _, tCase := range cases {
		t.Run(tCase.name, func(t *testing.T) {
			if _, err := ReadBlocks(bytes.NewReader(tCase.in)); !errors.Is(err, io.ErrUnexpectedEOF) {
				t.Fatalf("expected io.ErrUnexpectedEOF, got %v", err)
			}
		})
	}
}
