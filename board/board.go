package board

import (
	"fmt"
	"strconv"
	"strings"
)

// symPos and symVal implement the diagonal reflection used to compute a
// Board's symmetry twin: for every position p, tilesSym[symPos[p]] =
// symVal[tiles[p]]. Both tables are fixed by the geometry of a 4×4 grid
// reflected across its main diagonal and never change.
var symPos = [16]byte{0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15}
var symVal = [16]byte{0, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15, 4, 8, 12}

// Board is an immutable 4×4 sliding-tile puzzle configuration. Cells are
// numbered 0..15 in row-major order; cell value 0 is the blank. Boards are
// produced by New, Goal, Parse, or Shift and are never mutated afterwards.
type Board struct {
	tiles    [16]byte
	tilesSym [16]byte

	zeroX, zeroY int

	hash1, hash2 uint32

	isSolvable          bool
	isIdenticalSymmetry bool

	validMoves [4]bool
}

// New constructs a Board from 16 raw tile values in row-major order.
// Returns ErrInvalidInput if tiles is not a permutation of 0..15.
func New(tiles [16]byte) (Board, error) {
	var seen [16]bool
	for _, v := range tiles {
		if int(v) >= 16 || seen[v] {
			return Board{}, ErrInvalidInput
		}
		seen[v] = true
	}

	b := Board{tiles: tiles}
	b.initDerived()
	b.computeSolvability()

	return b, nil
}

// Goal returns the canonical solved configuration: tiles 1..15 in
// row-major order with the blank in the bottom-right cell.
func Goal() Board {
	var tiles [16]byte
	for i := 0; i < 15; i++ {
		tiles[i] = byte(i + 1)
	}
	tiles[15] = 0

	b, err := New(tiles)
	if err != nil {
		// Unreachable: the literal above is always a permutation of 0..15.
		panic(err)
	}

	return b
}

// Parse reads 16 whitespace-separated decimal tile values (0..15) in
// row-major order. Returns ErrInvalidInput for anything that does not
// parse into a permutation of 0..15.
func Parse(s string) (Board, error) {
	fields := strings.Fields(s)
	if len(fields) != 16 {
		return Board{}, ErrInvalidInput
	}

	var tiles [16]byte
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 || n > 15 {
			return Board{}, ErrInvalidInput
		}
		tiles[i] = byte(n)
	}

	return New(tiles)
}

// initDerived fills tilesSym, zeroX/zeroY, hash1/hash2 and
// isIdenticalSymmetry from b.tiles. Does not touch isSolvable.
func (b *Board) initDerived() {
	for p := 0; p < 16; p++ {
		b.tilesSym[symPos[p]] = symVal[b.tiles[p]]
		if b.tiles[p] == 0 {
			b.zeroX = p % 4
			b.zeroY = p / 4
		}
	}

	b.hash1 = packNibbles(b.tiles[0:8])
	b.hash2 = packNibbles(b.tiles[8:16])

	b.isIdenticalSymmetry = b.tiles == b.tilesSym

	b.computeValidMoves()
}

// packNibbles packs 8 tile values (0..15) into a 32-bit word, most
// significant nibble first, matching the goal board's magic hash words
// (hash1 == 0x12345678, hash2 == 0x9ABCDEF0 for the solved configuration).
func packNibbles(vals []byte) uint32 {
	var w uint32
	for _, v := range vals {
		w = w<<4 | uint32(v&0xF)
	}

	return w
}

// computeValidMoves sets validMoves[d] for each Direction given the
// current blank position and symmetry class. Vertical moves are pruned
// entirely on identical-symmetry boards (spec.md §3, §4.1).
func (b *Board) computeValidMoves() {
	for _, d := range Directions {
		if d.IsVertical() && b.isIdenticalSymmetry {
			b.validMoves[d] = false
			continue
		}
		nx, ny := b.zeroX+dx[d], b.zeroY+dy[d]
		b.validMoves[d] = nx >= 0 && nx < 4 && ny >= 0 && ny < 4
	}
}

// computeSolvability applies the 4×4 inversion-parity rule: count
// inversions over non-blank values in row-major order; let rowFromBottom
// = 3 - zeroY; the board is solvable iff (inversions + rowFromBottom) is
// even.
func (b *Board) computeSolvability() {
	inv := 0
	for i := 0; i < 16; i++ {
		if b.tiles[i] == 0 {
			continue
		}
		for j := i + 1; j < 16; j++ {
			if b.tiles[j] != 0 && b.tiles[j] < b.tiles[i] {
				inv++
			}
		}
	}
	rowFromBottom := 3 - b.zeroY
	b.isSolvable = (inv+rowFromBottom)%2 == 0
}

// shiftInternal builds the successor board reached by moving the blank in
// direction d, without recomputing solvability: isSolvable is set to true
// unconditionally, so a successor of an unsolvable board also reports
// itself solvable.
func (b *Board) shiftInternal(d Direction) Board {
	nx, ny := b.zeroX+dx[d], b.zeroY+dy[d]
	oldPos := b.zeroY*4 + b.zeroX
	newPos := ny*4 + nx

	out := Board{tiles: b.tiles}
	out.tiles[oldPos], out.tiles[newPos] = out.tiles[newPos], out.tiles[oldPos]
	out.initDerived()
	out.isSolvable = true

	return out
}

// Shift returns the Board reached by moving the blank in direction d, and
// true, or the zero Board and false if d is not legal from the current
// blank position.
func (b Board) Shift(d Direction) (Board, bool) {
	if !b.validMoves[d] {
		return Board{}, false
	}

	return b.shiftInternal(d), true
}

// CanMove reports whether d is a legal move from the current state.
func (b Board) CanMove(d Direction) bool {
	return b.validMoves[d]
}

// Neighbors returns the successor boards reachable in one move, in the
// fixed order Right, Down, Left, Up. Down and Up are omitted entirely
// when the board is identical to its symmetry twin, since they would
// only duplicate the horizontal successors under diagonal reflection
// (spec.md §4.1, property S6).
func (b Board) Neighbors() []Board {
	out := make([]Board, 0, 4)
	for _, d := range Directions {
		if n, ok := b.Shift(d); ok {
			out = append(out, n)
		}
	}

	return out
}

// IsGoal reports whether b is the canonical solved configuration. This is
// the cheap equality spec.md §4.5 uses for the DFS goal test: hash1 ==
// 0x12345678 && hash2 == 0x9ABCDEF0.
func (b Board) IsGoal() bool {
	return b.hash1 == 0x12345678 && b.hash2 == 0x9ABCDEF0
}

// IsSolvable reports whether b is reachable from the goal by legal
// blank-moves.
func (b Board) IsSolvable() bool {
	return b.isSolvable
}

// IsIdenticalSymmetry reports whether b equals its own diagonal-reflection
// twin.
func (b Board) IsIdenticalSymmetry() bool {
	return b.isIdenticalSymmetry
}

// Symmetry returns the diagonal-reflection twin of b: an equally-solvable
// configuration whose heuristic value is a second admissible lower bound.
func (b Board) Symmetry() Board {
	out := Board{tiles: b.tilesSym}
	out.initDerived()
	out.isSolvable = b.isSolvable

	return out
}

// Tiles returns a copy of the 16 row-major tile values.
func (b Board) Tiles() [16]byte {
	return b.tiles
}

// TilesSym returns a copy of the symmetry twin's tile values.
func (b Board) TilesSym() [16]byte {
	return b.tilesSym
}

// Hash returns the two 32-bit packed-nibble hash words. Two boards are
// Equal iff both words match.
func (b Board) Hash() (uint32, uint32) {
	return b.hash1, b.hash2
}

// HashCode returns a single combined hash value, hash1 * (hash2 +
// 0x1111), suitable as a map key or fast pre-check before a full Equal.
func (b Board) HashCode() uint64 {
	return uint64(b.hash1) * uint64(b.hash2+0x1111)
}

// ZeroPos returns the blank's (column, row), each in 0..3.
func (b Board) ZeroPos() (int, int) {
	return b.zeroX, b.zeroY
}

// Equal reports whether a and b represent the same configuration.
func (a Board) Equal(b Board) bool {
	return a.HashCode() == b.HashCode() && a.hash1 == b.hash1 && a.hash2 == b.hash2
}

// String renders b as 4 lines of 4 right-aligned decimal numbers.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			fmt.Fprintf(&sb, "%3d", b.tiles[r*4+c])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
