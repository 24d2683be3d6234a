// Package geom holds batched 3D structures: triangle meshes and point clouds.
//
// A batch stores each element's arrays separately and exposes them either per
// element (At) or packed, concatenated into single arrays with face indices
// offset so they stay valid in the packed vertex list.
// Key types: Mesh, PointCloud.
package geom
