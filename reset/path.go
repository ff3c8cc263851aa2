package reset

import (
	"os"
	"path/filepath"
)

// Path is a mutable filesystem path built in place. The zero value is an
// empty path.
type Path struct {
	buf []byte
}

// Push extends the path with elem. An absolute elem replaces the path.
func (p *Path) Push(elem string) {
	if filepath.IsAbs(elem) {
		p.buf = append(p.buf[:0], elem...)
		return
	}

	if n := len(p.buf); n > 0 && !os.IsPathSeparator(p.buf[n-1]) {
		p.buf = append(p.buf, filepath.Separator)
	}
	p.buf = append(p.buf, elem...)
}

// Pop truncates the path to its parent. It returns false and leaves the path
// alone when there is no parent (an empty path or the root).
func (p *Path) Pop() bool {
	end := len(p.buf)
	for end > 1 && os.IsPathSeparator(p.buf[end-1]) {
		end--
	}
	if end == 0 || (end == 1 && os.IsPathSeparator(p.buf[0])) {
		return false
	}

	i := end - 1
	for i >= 0 && !os.IsPathSeparator(p.buf[i]) {
		i--
	}

	switch {
	case i < 0:
		p.buf = p.buf[:0]
	case i == 0:
		p.buf = p.buf[:1]
	default:
		for i > 1 && os.IsPathSeparator(p.buf[i-1]) {
			i--
		}
		p.buf = p.buf[:i]
	}
	return true
}

// String returns the path as built
func (p *Path) String() string {
	return string(p.buf)
}

// Clean returns the lexically cleaned path
func (p *Path) Clean() string {
	return filepath.Clean(string(p.buf))
}

// Len returns the length of the path in bytes
func (p *Path) Len() int {
	return len(p.buf)
}

// Cap returns the capacity of the backing buffer
func (p *Path) Cap() int {
	return cap(p.buf)
}

// Reset empties the path and keeps the buffer
func (p *Path) Reset() {
	if p == nil {
		return
	}
	p.buf = p.buf[:0]
}
