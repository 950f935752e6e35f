// loc.go — source spans used by tokens, AST nodes and diagnostics.
package sflk

// Loc describes a byte span inside a SourceUnit. It is a value type: copy it
// freely, the referenced SourceUnit is shared and read-only.
type Loc struct {
	Scu        *SourceUnit
	LineStart  int // 1-based line of the span's first byte
	ByteStart  int // offset into Scu.Content
	ByteLength int // span length in bytes; 0 for end-of-input
}

// Merge returns the union of the two spans: from the smaller start to the
// larger end. The resulting LineStart is the earlier location's.
// Both locations must reference the same SourceUnit.
func (loc Loc) Merge(other Loc) Loc {
	start := loc.ByteStart
	if other.ByteStart < start {
		start = other.ByteStart
	}
	end := loc.ByteStart + loc.ByteLength
	if e := other.ByteStart + other.ByteLength; e > end {
		end = e
	}
	line := loc.LineStart
	if other.LineStart < line {
		line = other.LineStart
	}
	return Loc{
		Scu:        loc.Scu,
		LineStart:  line,
		ByteStart:  start,
		ByteLength: end - start,
	}
}

// Text returns the exact source text the span covers.
func (loc Loc) Text() string {
	if loc.Scu == nil {
		return ""
	}
	return loc.Scu.Content[loc.ByteStart : loc.ByteStart+loc.ByteLength]
}
