package chess

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

func TestFromPosition(t *testing.T) {
	tests := []struct {
		name    string
		file    int
		rank    int
		want    Square
		wantErr bool
	}{
		{"a1", 0, 0, A1, false},
		{"h1", 7, 0, H1, false},
		{"e4", 4, 3, E4, false},
		{"a8", 0, 7, A8, false},
		{"h8", 7, 7, H8, false},
		{"file too low", -1, 0, NoSquare, true},
		{"file too high", 8, 0, NoSquare, true},
		{"rank too low", 0, -1, NoSquare, true},
		{"rank too high", 0, 8, NoSquare, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromPosition(tt.file, tt.rank)
			if got != tt.want {
				t.Errorf("FromPosition(%d, %d) = %v; want %v", tt.file, tt.rank, got, tt.want)
			}
			if tt.wantErr && !errors.Is(err, errors.ErrOutOfBounds) {
				t.Errorf("FromPosition(%d, %d) error = %v; want ErrOutOfBounds", tt.file, tt.rank, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("FromPosition(%d, %d) unexpected error: %v", tt.file, tt.rank, err)
			}
		})
	}
}

func TestFromNotation(t *testing.T) {
	tests := []struct {
		text   string
		want   Square
		wantOK bool
	}{
		{"e4", E4, true},
		{"E4", E4, true},
		{"a1", A1, true},
		{"H8", H8, true},
		{"i1", NoSquare, false},
		{"a9", NoSquare, false},
		{"a0", NoSquare, false},
		{"e", NoSquare, false},
		{"e44", NoSquare, false},
		{"", NoSquare, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := FromNotation(tt.text)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("FromNotation(%q) = (%v, %v); want (%v, %v)", tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSquareCoordinates(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		back, err := FromPosition(sq.File(), sq.Rank())
		if err != nil || back != sq {
			t.Errorf("FromPosition(%d, %d) = %v, %v; want %v", sq.File(), sq.Rank(), back, err, sq)
		}
		parsed, ok := FromNotation(sq.String())
		if !ok || parsed != sq {
			t.Errorf("FromNotation(%q) = %v; want %v", sq.String(), parsed, sq)
		}
	}

	if NoSquare.File() != -1 || NoSquare.Rank() != -1 {
		t.Errorf("NoSquare coordinates = (%d, %d); want (-1, -1)", NoSquare.File(), NoSquare.Rank())
	}
	if got := NoSquare.String(); got != "-" {
		t.Errorf("NoSquare.String() = %q; want \"-\"", got)
	}
}

func TestSquareOffset(t *testing.T) {
	tests := []struct {
		name   string
		sq     Square
		df, dr int
		want   Square
	}{
		{"up", E4, 0, 1, E5},
		{"down", E4, 0, -1, E3},
		{"knight jump", G1, -1, 2, F3},
		{"off left edge", A4, -1, 0, NoSquare},
		{"off right edge", H4, 1, 0, NoSquare},
		{"off top", E8, 0, 1, NoSquare},
		{"off bottom", E1, 0, -1, NoSquare},
		{"no wrap from h to a", H3, 1, 1, NoSquare},
		{"from invalid", NoSquare, 0, 0, NoSquare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sq.Offset(tt.df, tt.dr); got != tt.want {
				t.Errorf("%v.Offset(%d, %d) = %v; want %v", tt.sq, tt.df, tt.dr, got, tt.want)
			}
		})
	}
}

func TestSquareSet(t *testing.T) {
	var s SquareSet
	s = s.Add(E4).Add(A1).Add(H8).Add(E4).Add(NoSquare)

	if got := s.Len(); got != 3 {
		t.Errorf("Len() = %d; want 3", got)
	}
	for _, sq := range []Square{A1, E4, H8} {
		if !s.Has(sq) {
			t.Errorf("Has(%v) = false; want true", sq)
		}
	}
	if s.Has(D4) || s.Has(NoSquare) {
		t.Error("Has reported a square that was never added")
	}

	got := s.Squares()
	want := []Square{A1, E4, H8}
	if len(got) != len(want) {
		t.Fatalf("Squares() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Squares()[%d] = %v; want %v", i, got[i], want[i])
		}
	}
}

func TestColourHelpers(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() did not swap colours")
	}
	tests := []struct {
		colour                          Colour
		offset, back, pawn, promo, eRnk int
	}{
		{White, 1, 0, 1, 7, 4},
		{Black, -1, 7, 6, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.colour.String(), func(t *testing.T) {
			if got := ColourOffset(tt.colour); got != tt.offset {
				t.Errorf("ColourOffset = %d; want %d", got, tt.offset)
			}
			if got := BackRank(tt.colour); got != tt.back {
				t.Errorf("BackRank = %d; want %d", got, tt.back)
			}
			if got := PawnRank(tt.colour); got != tt.pawn {
				t.Errorf("PawnRank = %d; want %d", got, tt.pawn)
			}
			if got := PromotionRank(tt.colour); got != tt.promo {
				t.Errorf("PromotionRank = %d; want %d", got, tt.promo)
			}
			if got := EnPassantRank(tt.colour); got != tt.eRnk {
				t.Errorf("EnPassantRank = %d; want %d", got, tt.eRnk)
			}
		})
	}
}

func TestKindLetters(t *testing.T) {
	for _, kind := range []Kind{Pawn, Knight, Bishop, Rook, Queen, King} {
		got, ok := KindFromLetter(kind.Letter())
		if !ok || got != kind {
			t.Errorf("KindFromLetter(%c) = %v, %v; want %v", kind.Letter(), got, ok, kind)
		}
		lower := kind.Letter() + 'a' - 'A'
		if got, ok := KindFromLetter(lower); !ok || got != kind {
			t.Errorf("KindFromLetter(%c) = %v, %v; want %v", lower, got, ok, kind)
		}
	}
	if _, ok := KindFromLetter('x'); ok {
		t.Error("KindFromLetter('x') ok = true; want false")
	}
}
