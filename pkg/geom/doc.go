// Package geom converts hex cells into pixel-space shapes.
//
// Cells are laid out with a flat-top metric: the centre of axial cell (q, r)
// at hex radius s is
//
//	x = 1.5·s·q
//	y = √3·s·(r + q/2)
//
// The whole scene is then turned by [SceneRotation] about the image origin,
// and every hexagon is turned by the same angle about its own centre, so
// relative layout is preserved. Positive angles turn clockwise on screen
// because the y axis points down.
//
// [Bounds] accumulates the tight axis-aligned box of everything drawn.
package geom
