// Package pkg provides the libraries behind hexglyph, a renderer for hex
// action-token diagrams.
//
// # Overview
//
// A spec such as "F2Ra" or "m-La-Rj" names one or more action tokens. Each
// token walks a path from the origin cell and ends in an action: attack,
// move, jump, charge or block. Hexglyph draws the origin, an orientation
// arrow, the cells each path crosses and the styled target cells into a
// tightly cropped PNG.
//
// # Architecture
//
//	spec string
//	     ↓
//	[notation] tokens, placements, placeholders   (uses [hex] walks)
//	     ↓
//	[layout] scene of paint operations            (uses [geom])
//	     ↓
//	[render] gg canvas → PNG                      (uses [fonts])
//
// [pipeline] ties the stages together behind a cache ([cache]) and exposes
// the two entry points, Validate and Render. [server] and the CLI are thin
// adapters over a pipeline.Runner; [sheet] composes rendered diagrams into
// a contact sheet.
//
// # Quick Start
//
//	if pipeline.Validate("F2Ra") {
//	    path, err := pipeline.Render("F2Ra", "public/images", 46)
//	}
//
// # Supporting Packages
//
//   - [config]: TOML configuration file
//   - [errors]: coded errors shared by every package
//   - [observability]: render, cache and HTTP hooks
//   - [buildinfo]: version information set at link time
package pkg
