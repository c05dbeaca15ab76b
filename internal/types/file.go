package types

// File is a board file, 0=a .. 7=h.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileNone
)

// IsValid reports whether f is one of the eight real files.
func (f File) IsValid() bool {
	return f >= FileA && f <= FileH
}

// String renders the file as its lowercase letter.
func (f File) String() string {
	if !f.IsValid() {
		return "-"
	}
	return string(rune('a' + int(f)))
}

// Bb returns the bitboard of every square on file f.
func (f File) Bb() Bitboard {
	return fileBb[f]
}
