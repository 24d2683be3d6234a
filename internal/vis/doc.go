// Package vis turns batched meshes and point clouds into figures made of
// labelled 3D subplots.
//
// PlotScene draws a SceneDict (subplot title -> trace name -> structure) into
// a grid of scenes. Each trace widens its scene's axis ranges so that every
// trace in the scene stays visible inside a cube centred on it.
// PlotBatchIndividually builds the SceneDict for you, one subplot per batch
// index.
//
// Point clouds larger than Options.PointcloudMaxPoints per batch element are
// randomly sub-sampled. With a nil Options.Rand the process-wide source is
// used and the sample differs between runs; set Options.Rand to a seeded
// source for reproducible figures.
package vis
