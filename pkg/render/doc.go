// Package render paints laid-out scenes onto raster canvases.
//
// # Overview
//
// Drawing is abstracted behind [Backend] and [Canvas], which expose only
// what diagrams need: filled and outlined polygons, wide line segments,
// centred text and PNG export. [GG] implements them with fogleman/gg.
//
//	scene, err := layout.Compute(placements, layout.DefaultOptions())
//	canvas, err := render.Paint(scene, render.GG{Font: fonts.Load(fonts.DefaultFont)})
//	err = canvas.SavePNG("out/F2Ra.png")
//
// Operations are painted strictly in scene order, so z-order is decided
// entirely by package layout.
package render
