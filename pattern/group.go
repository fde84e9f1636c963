package pattern

import (
	"math/bits"

	"github.com/katalvlaran/puzzle15/internal/bitperm"
)

// noSlot marks a linkFormatMove entry where no group tile is adjacent to
// the blank in that direction: nothing moves, the format is unchanged.
const noSlot = 0xF

// GroupTable holds the generated element tables for one pattern-group
// size g (SPEC_FULL.md §4.2, spec.md §3):
//
//   - KeysToCombo[k]    -> packed-nibble permutation for key index k.
//   - FormatsToCombo[f] -> 16-bit position bitmap for format index f.
//   - RotateKeyByPos    -> flat table, size g! * g * 2*maxShift(g).
//   - LinkFormatCombo   -> flat table, size C(16,g) * g * 4 (generator view).
//   - LinkFormatMove    -> flat table, size C(16,g) * 64 (solver view).
type GroupTable struct {
	G int

	KeysToCombo    []uint32
	FormatsToCombo []uint16
	RotateKeyByPos []int32
	LinkFormatCombo []uint32
	LinkFormatMove  []uint32

	keyIndex    map[uint32]int
	formatIndex map[uint16]int
}

// maxShiftG is the per-table cached maxShift(G) value.
func (gt *GroupTable) maxShiftG() int { return maxShift(gt.G) }

// Generate builds a complete GroupTable for group size g (one of
// {3,5,6,7,8}), following the four-stage recipe of spec.md §4.2: key
// generation, rotation-effect computation, format generation, then
// format-link generation.
func Generate(g int) *GroupTable {
	if !supportedGroupSizes[g] {
		panic("pattern: Generate: unsupported group size")
	}

	gt := &GroupTable{G: g}
	gt.buildKeys()
	gt.buildRotateTable()
	gt.buildFormats()
	gt.buildLinks()

	return gt
}

// buildKeys enumerates all g! permutations of {0,...,g-1}, sorted by
// packed-nibble value, and assigns sequential indices (spec.md §4.2).
func (gt *GroupTable) buildKeys() {
	perms := bitperm.Permutations(gt.G)
	gt.KeysToCombo = make([]uint32, len(perms))
	gt.keyIndex = make(map[uint32]int, len(perms))
	for i, p := range perms {
		packed := bitperm.PackNibbles(p)
		gt.KeysToCombo[i] = packed
		gt.keyIndex[packed] = i
	}
}

// buildFormats enumerates all C(16,g) position bitmaps, sorted
// ascending, and assigns sequential indices (spec.md §4.2).
func (gt *GroupTable) buildFormats() {
	combos := bitperm.Combinations(16, gt.G)
	gt.FormatsToCombo = make([]uint16, len(combos))
	gt.formatIndex = make(map[uint16]int, len(combos))
	for i, bm := range combos {
		gt.FormatsToCombo[i] = bm
		gt.formatIndex[bm] = i
	}
}

// unpackKey returns the g-nibble permutation for key index k.
func (gt *GroupTable) unpackKey(k int) []byte {
	packed := gt.KeysToCombo[k]
	out := make([]byte, gt.G)
	for i := gt.G - 1; i >= 0; i-- {
		out[i] = byte(packed & 0xF)
		packed >>= 4
	}

	return out
}

// shiftCodeIndex maps a nonzero shift in [-maxShift, maxShift] to its flat
// table slot in [0, 2*maxShift): codes 0..maxShift-1 are shifts
// +1..+maxShift, codes maxShift..2*maxShift-1 are shifts -1..-maxShift.
func shiftCodeIndex(shift, ms int) int {
	if shift > 0 {
		return shift - 1
	}

	return ms + (-shift - 1)
}

// buildRotateTable computes, for every key index, every in-group slot,
// and every nonzero vertical shift in [-maxShift,maxShift], the key index
// reached by removing the element at that slot and reinserting it
// `shift` ranks away (spec.md §4.2: "BFS over the key space"; here
// realized directly since every rotation target is already enumerated in
// KeysToCombo, so a remove-and-reinsert plus a map lookup reaches the
// same fixed point a BFS would converge to).
func (gt *GroupTable) buildRotateTable() {
	ms := gt.maxShiftG()
	width := gt.G * 2 * ms
	gt.RotateKeyByPos = make([]int32, len(gt.KeysToCombo)*width)

	for k := range gt.KeysToCombo {
		perm := gt.unpackKey(k)
		for slot := 0; slot < gt.G; slot++ {
			for s := -ms; s <= ms; s++ {
				if s == 0 {
					continue
				}
				dest := slot + s
				var resultKey int
				if dest < 0 || dest >= gt.G {
					// Out of range for this group: no valid rotation
					// target: leave the key unchanged (defensive, never
					// exercised by a legal move sequence).
					resultKey = k
				} else {
					rotated := rotateSlice(perm, slot, dest)
					resultKey = gt.keyIndex[bitperm.PackNibbles(rotated)]
				}
				idx := k*width + slot*(2*ms) + shiftCodeIndex(s, ms)
				gt.RotateKeyByPos[idx] = int32(resultKey)
			}
		}
	}
}

// rotateSlice returns a copy of perm with the element at `from` removed
// and reinserted at `to`.
func rotateSlice(perm []byte, from, to int) []byte {
	out := make([]byte, 0, len(perm))
	elem := perm[from]
	rest := append(append([]byte{}, perm[:from]...), perm[from+1:]...)
	out = append(out, rest[:to]...)
	out = append(out, elem)
	out = append(out, rest[to:]...)

	return out
}

// crossingCode computes the key_shift_magnitude_code (spec.md §4.2) for a
// group tile moving from grid position oldPos to newPos within a format
// bitmap that still has oldPos set (newPos is the vacated cell the tile
// is entering). Horizontal moves (|old-new| == 1) never cross another
// occupied cell and always yield code 0. Vertical moves (|old-new| == 4)
// cross up to 3 intervening cells; the count is clamped to maxShift(g)
// per the model's declared bound (spec.md §3).
func crossingCode(bm uint16, oldPos, newPos, ms int) (code int, shift int) {
	if abs(oldPos-newPos) != 4 {
		return 0, 0
	}

	lo, hi := oldPos, newPos
	if lo > hi {
		lo, hi = hi, lo
	}
	count := 0
	for p := lo + 1; p < hi; p++ {
		if bm&(1<<uint(p)) != 0 {
			count++
		}
	}
	if count > ms {
		count = ms
	}
	if count == 0 {
		return 0, 0
	}
	if newPos > oldPos {
		// Tile's grid index increased: it moved down the board.
		return 2*count - 1, count
	}

	// Tile's grid index decreased: it moved up the board.
	return 2 * count, -count
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// rankOf returns the population-order rank (0-based) of bit position pos
// within bitmap bm, i.e. the number of set bits below pos.
func rankOf(bm uint16, pos int) int {
	return bits.OnesCount16(bm & ((1 << uint(pos)) - 1))
}

// buildLinks computes linkFormatCombo (generator view) and
// linkFormatMove (solver view) for every format, slot/blank-position and
// direction (spec.md §4.2, §3).
func (gt *GroupTable) buildLinks() {
	ms := gt.maxShiftG()
	gt.LinkFormatCombo = make([]uint32, len(gt.FormatsToCombo)*gt.G*4)
	gt.LinkFormatMove = make([]uint32, len(gt.FormatsToCombo)*64)

	dx := [4]int{1, 0, -1, 0}
	dy := [4]int{0, 1, 0, -1}

	for f, bm := range gt.FormatsToCombo {
		// Generator view: for every occupied slot, for every direction,
		// what happens if that slot's tile attempts to move that way.
		for slot := 0; slot < gt.G; slot++ {
			pos := nthSetBit(bm, slot)
			for dir := 0; dir < 4; dir++ {
				x, y := pos%4, pos/4
				nx, ny := x+dx[dir], y+dy[dir]
				base := f*gt.G*4 + slot*4 + dir
				if nx < 0 || nx >= 4 || ny < 0 || ny >= 4 {
					gt.LinkFormatCombo[base] = uint32(bm) << 4
					continue
				}
				newPos := ny*4 + nx
				if bm&(1<<uint(newPos)) != 0 {
					// Destination occupied by another group tile: this
					// slot cannot move that way without a blank there.
					gt.LinkFormatCombo[base] = uint32(bm) << 4
					continue
				}
				newBm := (bm &^ (1 << uint(pos))) | (1 << uint(newPos))
				code, _ := crossingCode(bm, pos, newPos, ms)
				gt.LinkFormatCombo[base] = uint32(newBm)<<4 | uint32(code)
			}
		}

		// Solver view: for every blank grid position and direction, is
		// there a group tile adjacent in the direction the blank is
		// heading from (i.e. the tile that would swap into the blank)?
		for blankPos := 0; blankPos < 16; blankPos++ {
			bx, by := blankPos%4, blankPos/4
			for dir := 0; dir < 4; dir++ {
				tx, ty := bx+dx[dir], by+dy[dir]
				idx := f*64 + blankPos*4 + dir
				if tx < 0 || tx >= 4 || ty < 0 || ty >= 4 {
					gt.LinkFormatMove[idx] = uint32(f)<<8 | noSlot<<4
					continue
				}
				tilePos := ty*4 + tx
				if bm&(1<<uint(tilePos)) == 0 {
					gt.LinkFormatMove[idx] = uint32(f)<<8 | noSlot<<4
					continue
				}
				slot := rankOf(bm, tilePos)
				newBm := (bm &^ (1 << uint(tilePos))) | (1 << uint(blankPos))
				code, _ := crossingCode(bm, tilePos, blankPos, ms)
				nextFmt := gt.formatIndex[newBm]
				gt.LinkFormatMove[idx] = uint32(nextFmt)<<8 | uint32(slot)<<4 | uint32(code)
			}
		}
	}
}

// ApplyMove is the solver-facing per-edge update (spec.md §4.5): given
// the group's current (keyIdx, formatIdx) and the blank's grid position
// and move direction, returns the group's (keyIdx, formatIdx) after the
// move. If no tile of this group is adjacent to the blank in that
// direction, the group is untouched and the inputs are returned as-is.
func (gt *GroupTable) ApplyMove(keyIdx, formatIdx, blankPos, dir int) (newKeyIdx, newFormatIdx int) {
	link := gt.LinkFormatMove[formatIdx*64+blankPos*4+dir]
	nextFmt := int(link >> 8)
	slot := int((link >> 4) & 0xF)
	code := int(link & 0xF)

	if slot == noSlot {
		return keyIdx, formatIdx
	}
	if code == 0 {
		return keyIdx, nextFmt
	}

	ms := gt.maxShiftG()
	var shift int
	if code%2 == 1 {
		shift = (code + 1) / 2
	} else {
		shift = -(code / 2)
	}
	width := gt.G * 2 * ms
	newKeyIdx = int(gt.RotateKeyByPos[keyIdx*width+slot*(2*ms)+shiftCodeIndex(shift, ms)])

	return newKeyIdx, nextFmt
}

// nthSetBit returns the grid position of the n-th (0-based) set bit of bm
// in ascending order, by repeatedly peeling off the lowest set bit.
func nthSetBit(bm uint16, n int) int {
	for i := 0; i < n; i++ {
		bm &= bm - 1
	}
	if bm == 0 {
		return -1
	}

	return bits.TrailingZeros16(bm)
}
