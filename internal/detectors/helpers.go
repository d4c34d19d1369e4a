package detectors

import (
	"bytes"
	"regexp"

	"github.com/apigraveyard/apigraveyard/internal/types"
)

// findAll applies re to the whole file content and emits one match per
// occurrence with a 1-indexed line/column computed from the byte offset.
func findAll(path string, data []byte, re *regexp.Regexp, svc types.Service) []types.KeyMatch {
	var out []types.KeyMatch
	for _, loc := range re.FindAllIndex(data, -1) {
		raw := string(data[loc[0]:loc[1]])
		line, col := lineCol(data, loc[0])
		out = append(out, types.KeyMatch{
			Service:     svc,
			MaskedValue: types.Mask(raw),
			RawValue:    raw,
			FilePath:    path,
			Line:        line,
			Column:      col,
		})
	}
	return out
}

// lineCol converts a byte offset into a 1-indexed (line, column) pair by
// counting newlines before the offset.
func lineCol(data []byte, off int) (int, int) {
	line := 1 + bytes.Count(data[:off], []byte{'\n'})
	col := off + 1
	if i := bytes.LastIndexByte(data[:off], '\n'); i >= 0 {
		col = off - i
	}
	return line, col
}
