// Package scene turns a graph and its layout snapshot into drawable items.
//
// A [Scene] holds one [Shape] per node and one [Stroke] per link, in the
// order the sinks paint them: strokes first, shapes on top. Strokes are found
// by link key through an index table, so patching a scene after a drag never
// chases stale pointers.
//
// Picking answers "what is under this point" for hover feedback; a [Hover]
// tracker turns successive pointer positions into enter and leave events
// carrying [NodeInfo] or [LinkInfo].
package scene
