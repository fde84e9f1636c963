package pattern

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// elementFileName returns the on-disk name for group size g's element
// table file (spec.md §6).
func elementFileName(g int) string {
	return fmt.Sprintf("pattern_element_%d.db", g)
}

// valuesFileName returns the on-disk name for group size g's PDB value
// table. Not part of spec.md §6's element-table format (which covers
// only the structural tables); kept alongside it under the same
// directory since it is generated from the same group definition.
func valuesFileName(g int) string {
	return fmt.Sprintf("pattern_values_%d.db", g)
}

// save writes keys2combo, rotateKeyByPos, formats2combo, linkFormatMove,
// linkFormatCombo as big-endian uint32 streams, in that order, to path.
// Writes to a temporary file first and renames into place so a crash
// mid-write never leaves a truncated file where a caller expects one
// (spec.md §4.2: "delete partials on failure").
func (gt *GroupTable) save(dir string) (err error) {
	path := filepath.Join(dir, elementFileName(gt.G))
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("pattern: create %s: %w", tmp, ErrTableIO)
	}
	defer func() {
		cerr := f.Close()
		if err != nil {
			os.Remove(tmp) // best-effort cleanup of the partial write
			return
		}
		if cerr != nil {
			err = fmt.Errorf("pattern: close %s: %w", tmp, ErrTableIO)
			os.Remove(tmp)
		}
	}()

	w := bufio.NewWriter(f)
	if err = writeU32(w, gt.KeysToCombo); err != nil {
		return err
	}
	if err = writeRotate(w, gt.RotateKeyByPos); err != nil {
		return err
	}
	if err = writeU16AsU32(w, gt.FormatsToCombo); err != nil {
		return err
	}
	if err = writeU32(w, gt.LinkFormatMove); err != nil {
		return err
	}
	if err = writeU32(w, gt.LinkFormatCombo); err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("pattern: flush %s: %w", tmp, ErrTableIO)
	}

	if rerr := os.Rename(tmp, path); rerr != nil {
		return fmt.Errorf("pattern: rename %s: %w", tmp, ErrTableIO)
	}

	return nil
}

func writeU32(w io.Writer, vals []uint32) error {
	buf := make([]byte, 4)
	for _, v := range vals {
		binary.BigEndian.PutUint32(buf, v)
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("pattern: write: %w", ErrTableIO)
		}
	}

	return nil
}

func writeU16AsU32(w io.Writer, vals []uint16) error {
	buf := make([]byte, 4)
	for _, v := range vals {
		binary.BigEndian.PutUint32(buf, uint32(v))
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("pattern: write: %w", ErrTableIO)
		}
	}

	return nil
}

func writeRotate(w io.Writer, vals []int32) error {
	buf := make([]byte, 4)
	for _, v := range vals {
		binary.BigEndian.PutUint32(buf, uint32(v))
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("pattern: write: %w", ErrTableIO)
		}
	}

	return nil
}

// load reads a previously-saved element table for group size g from dir.
// Returns ErrTableIO on any read, size, or truncation failure so the
// caller can regenerate.
func load(dir string, g int) (*GroupTable, error) {
	path := filepath.Join(dir, elementFileName(g))
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pattern: open %s: %w", path, ErrTableIO)
	}
	defer f.Close()

	r := bufio.NewReader(f)

	numKeys := factorial(g)
	numFormats := choose(16, g)
	ms := maxShift(g)

	gt := &GroupTable{G: g}

	gt.KeysToCombo, err = readU32(r, numKeys)
	if err != nil {
		return nil, err
	}
	rotate, err := readU32(r, numKeys*g*2*ms)
	if err != nil {
		return nil, err
	}
	gt.RotateKeyByPos = make([]int32, len(rotate))
	for i, v := range rotate {
		gt.RotateKeyByPos[i] = int32(v)
	}

	formats16, err := readU32(r, numFormats)
	if err != nil {
		return nil, err
	}
	gt.FormatsToCombo = make([]uint16, len(formats16))
	for i, v := range formats16 {
		gt.FormatsToCombo[i] = uint16(v)
	}

	gt.LinkFormatMove, err = readU32(r, numFormats*64)
	if err != nil {
		return nil, err
	}
	gt.LinkFormatCombo, err = readU32(r, numFormats*g*4)
	if err != nil {
		return nil, err
	}

	gt.rebuildIndexes()

	return gt, nil
}

// rebuildIndexes reconstructs the reverse lookup maps (packed value ->
// index) after a load, since only the forward arrays are persisted.
func (gt *GroupTable) rebuildIndexes() {
	gt.keyIndex = make(map[uint32]int, len(gt.KeysToCombo))
	for i, k := range gt.KeysToCombo {
		gt.keyIndex[k] = i
	}
	gt.formatIndex = make(map[uint16]int, len(gt.FormatsToCombo))
	for i, f := range gt.FormatsToCombo {
		gt.formatIndex[f] = i
	}
}

func readU32(r io.Reader, n int) ([]uint32, error) {
	out := make([]uint32, n)
	buf := make([]byte, 4)
	for i := 0; i < n; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("pattern: read: %w", ErrTableIO)
		}
		out[i] = binary.BigEndian.Uint32(buf)
	}

	return out, nil
}

// (*Values).save / loadValues persist the supplementary PDB value table
// (not part of spec.md §6's element-table format; see values.go).
func (v *Values) save(dir string, g int) error {
	path := filepath.Join(dir, valuesFileName(g))
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, v.dist, 0o644); err != nil {
		return fmt.Errorf("pattern: write %s: %w", tmp, ErrTableIO)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("pattern: rename %s: %w", tmp, ErrTableIO)
	}

	return nil
}

func loadValues(dir string, g, numKeys, numFormats int) (*Values, error) {
	path := filepath.Join(dir, valuesFileName(g))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pattern: open %s: %w", path, ErrTableIO)
	}
	if len(data) != numKeys*numFormats {
		return nil, fmt.Errorf("pattern: %s: truncated: %w", path, ErrTableIO)
	}

	return &Values{G: g, numKeys: numKeys, numFormats: numFormats, dist: data}, nil
}

func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}

	return f
}

func choose(n, k int) int {
	num, den := 1, 1
	for i := 0; i < k; i++ {
		num *= n - i
		den *= i + 1
	}

	return num / den
}
