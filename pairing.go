package goframediff

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// FramePair links a reference screenshot to its comparison counterpart for a
// single frame index. Filenames are relative to the screenshot directory.
type FramePair struct {
	Frame   int
	RefName string
	CmpName string
}

var frameNumberRe = regexp.MustCompile(`frame(\d+)\.ppm$`)

// ExtractFrameNumber pulls the numeric frame index out of a screenshot
// filename ending in frame<digits>.ppm. It returns -1 for filenames that do
// not follow the convention.
func ExtractFrameNumber(name string) int {
	m := frameNumberRe.FindStringSubmatch(name)
	if m == nil {
		return -1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return -1
	}
	return n
}

// FindMatchingFrames scans dir for screenshots carrying either prefix and
// returns one FramePair per frame index present under both, sorted ascending
// by numeric frame index. A file belongs to a group when its name starts
// with that group's prefix and ends in .ppm; the reference prefix is tested
// first when prefixes overlap.
//
// When several files under one prefix map to the same frame number the last
// directory entry wins. os.ReadDir returns entries sorted by filename, so
// the effective tie-break is "last lexicographic match wins".
//
// An empty result is not an error here; the caller decides whether zero
// pairs is fatal.
func FindMatchingFrames(dir, refPrefix, cmpPrefix string) ([]FramePair, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading screenshot directory: %w", err)
	}

	refFiles := make(map[int]string)
	cmpFiles := make(map[int]string)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".ppm") {
			continue
		}
		switch {
		case strings.HasPrefix(name, refPrefix):
			if n := ExtractFrameNumber(name); n >= 0 {
				refFiles[n] = name
			}
		case strings.HasPrefix(name, cmpPrefix):
			if n := ExtractFrameNumber(name); n >= 0 {
				cmpFiles[n] = name
			}
		}
	}

	common := make([]int, 0, len(refFiles))
	for n := range refFiles {
		if _, ok := cmpFiles[n]; ok {
			common = append(common, n)
		}
	}
	sort.Ints(common)

	pairs := make([]FramePair, 0, len(common))
	for _, n := range common {
		pairs = append(pairs, FramePair{
			Frame:   n,
			RefName: refFiles[n],
			CmpName: cmpFiles[n],
		})
	}
	return pairs, nil
}
