// apps/go-server/internal/tiles/codec.go
//
// Tile codec for the Turdle alphabet.
// Every letter is drawn as a tile picked by two attributes:
//   - frame: 1..5, the picture in the tile strip.
//   - color: one of five color codes (W, B, P, R, G).
//
// A tile id is the frame digit followed by the color code, e.g. "3P".
// The alphabet is the keyboard order without 'M', so 5 frames x 5 colors
// covers it exactly and the mapping is a bijection.
package tiles

import (
	"fmt"
	"strings"
)

const (
	NumFrames   = 5
	NumColors   = 5
	GuessLength = 5
)

// Alphabet lists the symbols in keyboard order; index i has frame i%5+1
// and color index i/5+1.
const Alphabet = "QWERTYUIOPASDFGHJKLZXCVBN"

// ColorCodes are the single-letter color codes, indexed by colorIndex-1.
var ColorCodes = [NumColors]byte{'W', 'B', 'P', 'R', 'G'}

// Tile describes one alphabet symbol and its tile attributes.
type Tile struct {
	Symbol     string `json:"symbol"`
	Frame      int    `json:"frame"`
	ColorIndex int    `json:"colorIndex"`
	ColorCode  string `json:"colorCode"`
	ID         string `json:"tileId"`
}

// Normalize upper-cases an ASCII symbol.
func Normalize(sym rune) rune {
	if sym >= 'a' && sym <= 'z' {
		return sym - 'a' + 'A'
	}
	return sym
}

// IndexOf returns the alphabet position of sym (case-insensitive).
func IndexOf(sym rune) (int, error) {
	i := strings.IndexRune(Alphabet, Normalize(sym))
	if i < 0 {
		return -1, fmt.Errorf("%w: %q", ErrInvalidSymbol, sym)
	}
	return i, nil
}

// Frame returns the 1-based frame of sym.
func Frame(sym rune) (int, error) {
	i, err := IndexOf(sym)
	if err != nil {
		return 0, err
	}
	return i%NumFrames + 1, nil
}

// ColorIndex returns the 1-based color index of sym, i.e. ceil((i+1)/5).
func ColorIndex(sym rune) (int, error) {
	i, err := IndexOf(sym)
	if err != nil {
		return 0, err
	}
	return (i+NumFrames)/NumFrames, nil
}

// ColorCode returns the color letter of sym.
func ColorCode(sym rune) (byte, error) {
	c, err := ColorIndex(sym)
	if err != nil {
		return 0, err
	}
	return ColorCodes[c-1], nil
}

// TileID encodes sym as "<frame><color>", e.g. 'Q' -> "1W".
func TileID(sym rune) (string, error) {
	i, err := IndexOf(sym)
	if err != nil {
		return "", err
	}
	return tileIDAt(i), nil
}

func tileIDAt(i int) string {
	return string([]byte{byte('0' + i%NumFrames + 1), ColorCodes[i/NumFrames]})
}

// SymbolAt returns the symbol drawn with the given frame and color index.
func SymbolAt(frame, colorIndex int) (rune, error) {
	if frame < 1 || frame > NumFrames || colorIndex < 1 || colorIndex > NumColors {
		return 0, fmt.Errorf("%w: frame %d color %d", ErrInvalidTileID, frame, colorIndex)
	}
	return rune(Alphabet[(colorIndex-1)*NumFrames+(frame-1)%NumFrames]), nil
}

// Symbol decodes a tile id back to its symbol.
func Symbol(tileID string) (rune, error) {
	if len(tileID) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTileID, tileID)
	}
	d := tileID[0]
	if d < '1' || d > '0'+NumFrames {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTileID, tileID)
	}
	c := colorIndexOf(tileID[1])
	if c == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTileID, tileID)
	}
	return SymbolAt(int(d-'0'), c)
}

// colorIndexOf returns the 1-based index of a color code, 0 if unknown.
func colorIndexOf(code byte) int {
	for i, c := range ColorCodes {
		if c == code {
			return i + 1
		}
	}
	return 0
}

// Tiles returns the codec table in alphabet order.
func Tiles() []Tile {
	out := make([]Tile, len(Alphabet))
	for i := range Alphabet {
		out[i] = Tile{
			Symbol:     Alphabet[i : i+1],
			Frame:      i%NumFrames + 1,
			ColorIndex: i/NumFrames + 1,
			ColorCode:  string(ColorCodes[i/NumFrames]),
			ID:         tileIDAt(i),
		}
	}
	return out
}

// RenderGuess turns a word into space separated tile ids ("QW" -> "1W 2W").
func RenderGuess(guess string) (string, error) {
	ids := make([]string, 0, len(guess))
	for _, r := range guess {
		id, err := TileID(r)
		if err != nil {
			return "", err
		}
		ids = append(ids, id)
	}
	return strings.Join(ids, " "), nil
}
