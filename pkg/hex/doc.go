// Package hex provides the axial hex-grid primitives behind action tokens.
//
// Cells are addressed by axial coordinates (q, r) relative to a fixed origin
// at (0, 0). Six relative directions move between neighbouring cells:
//
//	F  forward     (+1,  0)
//	L  left        (+1, -1)
//	R  right       ( 0, +1)
//	B  back        (-1,  0)
//	BL back-left   (-1, +1)
//	BR back-right  ( 0, -1)
//
// A path is a sequence of [Step] values, each a direction and a positive
// distance. [ParsePath] reads the textual path notation ("F2R", "2", "BL3")
// and [WalkSteps] integrates steps into the final cell plus every cell
// visited on the way, one unit step at a time.
//
//	steps, err := hex.ParsePath("F2R")
//	w, err := hex.WalkSteps(steps, 0)
//	w.End   // (2,1)
//	w.Cells // (1,0) (2,0) (2,1)
package hex
