// Package sceneio decodes TOML scene descriptions into scenes.
//
// A scene file declares the camera, export options, and object arrays:
//
//	[view]
//	fov = 30
//	direction = [1, 1, 1]
//
//	[export]
//	width = 12
//	height = 8
//
//	[[face]]
//	points = [[0,0,0], [1,0,0], [1,1,0], [0,1,0]]
//	front = "fill=gray"
//	outline = "draw=black"
//
//	[[line]]
//	from = [0, 0, 0]
//	to = [0, 0, 2]
//	style = "thick"
//
// Decoding is best-effort: a file that is not valid TOML fails with a
// structured error, but individually malformed entries (short vectors,
// too few face points) are dropped silently and the rest of the scene
// still renders. Rendering is deterministic, so the raw file bytes hash
// to a stable render-cache key.
package sceneio
