// Package layout turns parsed placements into a paintable [Scene].
//
// [Compute] finds placeholder cells, places every shape in pixel space,
// accumulates the tight bounds of all of it and translates the result onto
// a canvas just large enough to hold it plus a fixed padding. The scene's
// operations are ordered bottom to top:
//
//  1. origin hexagon (white, outlined)
//  2. orientation arrow (solid black)
//  3. placeholder hexagons (half-transparent white, outlined)
//  4. requested cells in placement order, styled per action
//
// A scene is plain data; package render paints it onto a canvas.
package layout
