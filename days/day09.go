package days

import (
	"strings"

	"github.com/maisem/aoc24"
)

type day09 struct{}

// span is a run of blocks on the disk.
type span struct {
	pos, len int
}

type diskMap struct {
	files []span // indexed by file id
	free  []span // in disk order
}

func (day09) Parse(input string) (*diskMap, error) {
	digits, err := aoc.Digits(strings.TrimSpace(input))
	if err != nil {
		return nil, err
	}
	dm := &diskMap{}
	pos := 0
	for i, n := range digits {
		s := span{pos, n}
		if i%2 == 0 {
			dm.files = append(dm.files, s)
		} else if n > 0 {
			dm.free = append(dm.free, s)
		}
		pos += n
	}
	return dm, nil
}

func (dm *diskMap) blocks() []int {
	size := 0
	for _, s := range dm.files {
		size = max(size, s.pos+s.len)
	}
	for _, s := range dm.free {
		size = max(size, s.pos+s.len)
	}
	out := make([]int, size)
	for i := range out {
		out[i] = -1
	}
	for id, s := range dm.files {
		for i := 0; i < s.len; i++ {
			out[s.pos+i] = id
		}
	}
	return out
}

func checksum(blocks []int) int {
	sum := 0
	for i, id := range blocks {
		if id >= 0 {
			sum += i * id
		}
	}
	return sum
}

// Part1 moves single blocks from the end into the leftmost free block.
/*
want=1928

2333133121414131402
*/
func (day09) Part1(dm *diskMap) (any, error) {
	b := dm.blocks()
	l, r := 0, len(b)-1
	for {
		for l < len(b) && b[l] != -1 {
			l++
		}
		for r >= 0 && b[r] == -1 {
			r--
		}
		if l >= r {
			break
		}
		b[l], b[r] = b[r], b[l]
	}
	return checksum(b), nil
}

// Part2 moves whole files, highest id first, into the leftmost free span
// that fits them.
// want=2858
func (day09) Part2(dm *diskMap) (any, error) {
	for id := len(dm.files) - 1; id >= 0; id-- {
		f := &dm.files[id]
		for i := range dm.free {
			fr := &dm.free[i]
			if fr.pos >= f.pos {
				break
			}
			if fr.len < f.len {
				continue
			}
			f.pos = fr.pos
			fr.pos += f.len
			fr.len -= f.len
			break
		}
	}
	sum := 0
	for id, f := range dm.files {
		for i := 0; i < f.len; i++ {
			sum += id * (f.pos + i)
		}
	}
	return sum, nil
}
