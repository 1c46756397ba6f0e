package geometry

import (
	"github.com/spaghettifunk/anima-math/engine/core"
	"github.com/spaghettifunk/anima-math/engine/math"
)

type Vertex3D struct {
	/** @brief The position of the vertex */
	Position math.Vec3
	/** @brief The normal of the vertex. */
	Normal math.Vec3
	/** @brief The texture coordinate of the vertex. */
	Texcoord math.Vec2
	/** @brief The colour of the vertex. */
	Colour math.Vec4
	/** @brief The tangent of the vertex, scaled by the handedness of the UV frame. */
	Tangent math.Vec3
}

/**
 * @brief An indexed triangle list plus the bounds of its vertices.
 */
type Mesh struct {
	Name     string
	Vertices []Vertex3D
	Indices  []uint32
	Extents  math.AABB
	Center   math.Vec3
}

// face of an axis-aligned box: the outward normal and two in-plane axes
// whose cross product is the normal.
type cubeFace struct {
	normal, right, up math.Vec3
}

var cubeFaces = [6]cubeFace{
	{math.NewVec3(0, 0, 1), math.NewVec3(1, 0, 0), math.NewVec3(0, 1, 0)},   // front
	{math.NewVec3(0, 0, -1), math.NewVec3(-1, 0, 0), math.NewVec3(0, 1, 0)}, // back
	{math.NewVec3(-1, 0, 0), math.NewVec3(0, 0, 1), math.NewVec3(0, 1, 0)},  // left
	{math.NewVec3(1, 0, 0), math.NewVec3(0, 0, -1), math.NewVec3(0, 1, 0)},  // right
	{math.NewVec3(0, -1, 0), math.NewVec3(1, 0, 0), math.NewVec3(0, 0, 1)},  // bottom
	{math.NewVec3(0, 1, 0), math.NewVec3(1, 0, 0), math.NewVec3(0, 0, -1)},  // top
}

/**
 * @brief Generates a box centred on the origin with 4 vertices and 2
 * counter-clockwise triangles per face. Zero dimensions default to one.
 *
 * @param width The size along x.
 * @param height The size along y.
 * @param depth The size along z.
 * @param tileX The number of times the texture should tile across each face on u.
 * @param tileY The number of times the texture should tile across each face on v.
 * @param name The mesh name.
 */
func GenerateCube(width, height, depth, tileX, tileY float32, name string) *Mesh {
	if width == 0 {
		core.LogWarn("Width must be nonzero. Defaulting to one.")
		width = 1.0
	}
	if height == 0 {
		core.LogWarn("Height must be nonzero. Defaulting to one.")
		height = 1.0
	}
	if depth == 0 {
		core.LogWarn("Depth must be nonzero. Defaulting to one.")
		depth = 1.0
	}
	if tileX == 0 {
		core.LogWarn("tileX must be nonzero. Defaulting to one.")
		tileX = 1.0
	}
	if tileY == 0 {
		core.LogWarn("tileY must be nonzero. Defaulting to one.")
		tileY = 1.0
	}

	half := math.NewVec3(width*0.5, height*0.5, depth*0.5)
	// corner signs along (right, up) and the matching texture coordinates
	corners := [4]struct {
		r, u float32
		uv   math.Vec2
	}{
		{-1, -1, math.NewVec2(0, 0)},
		{1, 1, math.NewVec2(tileX, tileY)},
		{-1, 1, math.NewVec2(0, tileY)},
		{1, -1, math.NewVec2(tileX, 0)},
	}

	mesh := &Mesh{
		Name:     name,
		Vertices: make([]Vertex3D, 0, 4*6), // 4 verts per side, 6 sides
		Indices:  make([]uint32, 0, 6*6),   // 6 indices per side, 6 sides
	}
	for i, f := range cubeFaces {
		for _, c := range corners {
			p := f.normal.Add(f.right.MulScalar(c.r)).Add(f.up.MulScalar(c.u)).Mul(half)
			mesh.Vertices = append(mesh.Vertices, Vertex3D{
				Position: p,
				Normal:   f.normal,
				Texcoord: c.uv,
				Colour:   math.NewVec4One(),
			})
		}
		offset := uint32(i * 4)
		mesh.Indices = append(mesh.Indices,
			offset+0, offset+1, offset+2,
			offset+0, offset+3, offset+1)
	}

	GenerateTangents(mesh.Vertices, mesh.Indices)
	mesh.Extents = Bounds(mesh.Vertices)
	// Always 0 since min/max of each axis are -/+ half of the size.
	mesh.Center = mesh.Extents.Center()
	return mesh
}

/**
 * @brief Assigns every vertex of each triangle the triangle's face normal.
 * Shared vertices keep the normal of the last triangle that touches them.
 */
func GenerateNormals(vertices []Vertex3D, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		i0 := indices[i+0]
		i1 := indices[i+1]
		i2 := indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)

		// NOTE: This just generates a face normal. Smoothing out should be done in a separate pass if desired.
		normal := edge1.Cross(edge2).Normalized()
		vertices[i0].Normal = normal
		vertices[i1].Normal = normal
		vertices[i2].Normal = normal
	}
}

/**
 * @brief Computes per-triangle tangents from positions and texture
 * coordinates. Triangles with a degenerate UV mapping are skipped.
 */
func GenerateTangents(vertices []Vertex3D, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		i0 := indices[i+0]
		i1 := indices[i+1]
		i2 := indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)

		delta1 := vertices[i1].Texcoord.Sub(vertices[i0].Texcoord)
		delta2 := vertices[i2].Texcoord.Sub(vertices[i0].Texcoord)

		dividend := delta1.X*delta2.Y - delta2.X*delta1.Y
		if math.IsNearZero(dividend) {
			continue
		}
		fc := 1.0 / dividend

		tangent := edge1.MulScalar(delta2.Y).Sub(edge2.MulScalar(delta1.Y)).MulScalar(fc).Normalized()

		// mirrored UV islands flip the tangent
		handedness := float32(1.0)
		if dividend < 0.0 {
			handedness = -1.0
		}

		t := tangent.MulScalar(handedness)
		vertices[i0].Tangent = t
		vertices[i1].Tangent = t
		vertices[i2].Tangent = t
	}
}

/**
 * @brief Collapses exactly equal vertices and rewrites indices in place to
 * point at the surviving copies. Returns the unique vertices in first-seen
 * order.
 */
func DeduplicateVertices(vertices []Vertex3D, indices []uint32) []Vertex3D {
	unique := make([]Vertex3D, 0, len(vertices))
	seen := make(map[Vertex3D]uint32, len(vertices))
	remap := make([]uint32, len(vertices))

	for v, vert := range vertices {
		if u, ok := seen[vert]; ok {
			remap[v] = u
			continue
		}
		u := uint32(len(unique))
		seen[vert] = u
		remap[v] = u
		unique = append(unique, vert)
	}
	for i, idx := range indices {
		indices[i] = remap[idx]
	}

	core.LogDebug("DeduplicateVertices: removed %d vertices, orig/now %d/%d.", len(vertices)-len(unique), len(vertices), len(unique))
	return unique
}

/** @brief Returns the box enclosing every vertex position. */
func Bounds(vertices []Vertex3D) math.AABB {
	points := make([]math.Vec3, len(vertices))
	for i, v := range vertices {
		points[i] = v.Position
	}
	return math.NewAABBFromPoints(points)
}

/**
 * @brief Returns a sphere centred on the bounds centre that encloses every
 * vertex. Not the minimal sphere.
 */
func BoundingSphere(vertices []Vertex3D) math.Sphere {
	center := Bounds(vertices).Center()
	radiusSq := float32(0)
	for _, v := range vertices {
		radiusSq = math.Max(radiusSq, v.Position.Sub(center).LengthSquared())
	}
	return math.NewSphere(center, math.Sqrt(radiusSq))
}
