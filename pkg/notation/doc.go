// Package notation parses action-token specs such as "F2La-F2Ra".
//
// # Grammar
//
//	spec         := token ('-' token)*
//	token        := path? actionLetter
//	path         := digits | stepSeq
//	stepSeq      := step+
//	step         := dir digits?
//	dir          := "BL" | "BR" | "B" | "F" | "L" | "R"
//	actionLetter := 'a' | 'b' | 'm' | 'c' | 'j'
//
// Directions are uppercase and actions are lowercase. "B" is the back
// direction, "b" the block action; a token ends at its first lowercase
// action letter and nothing may follow it.
//
// # Placements
//
// [NewPlacements] collects parsed tokens by target cell. When two tokens
// reach the same cell the later token replaces the earlier one while the
// cell keeps its first position in iteration order. That overwrite rule is
// inherited behaviour rather than a designed precedence; it is kept as-is
// and covered by tests.
//
// [Placements.Placeholders] lists the cells a path passes through without
// ending there, which the renderer draws translucent.
package notation
