package scene

import "github.com/go-gl/mathgl/mgl32"

// Face is one quad of a shape, wound in the order its vertices are listed.
type Face struct {
	Vertices [4]mgl32.Vec3
	Color    mgl32.Vec3
}

// Shape is a fixed, ordered list of quad faces.
type Shape struct {
	Name  string
	Faces []Face
}

// Cube corners
var (
	v0 = mgl32.Vec3{1, 1, -1}
	v1 = mgl32.Vec3{1, -1, -1}
	v2 = mgl32.Vec3{-1, -1, -1}
	v3 = mgl32.Vec3{-1, 1, -1}
	v4 = mgl32.Vec3{1, 1, 1}
	v5 = mgl32.Vec3{1, -1, 1}
	v6 = mgl32.Vec3{-1, 1, 1}
	v7 = mgl32.Vec3{-1, -1, 1}
)

// Trunk corners
var (
	t0 = mgl32.Vec3{4, -1, 4}
	t1 = mgl32.Vec3{2, -1, 4}
	t2 = mgl32.Vec3{2, -1, 2}
	t3 = mgl32.Vec3{4, -1, 2}
	t4 = mgl32.Vec3{4, 5, 4}
	t5 = mgl32.Vec3{2, 5, 4}
	t6 = mgl32.Vec3{2, 5, 2}
	t7 = mgl32.Vec3{4, 5, 2}
)

// Leaves corners
var (
	l0 = mgl32.Vec3{7, 5.1, -1}
	l1 = mgl32.Vec3{7, 5.1, 7}
	l2 = mgl32.Vec3{-1, 5.1, 7}
	l3 = mgl32.Vec3{-1, 5.1, -1}
	l4 = mgl32.Vec3{7, 8, 7}
	l5 = mgl32.Vec3{-1, 8, 7}
	l6 = mgl32.Vec3{-1, 8, -1}
	l7 = mgl32.Vec3{7, 8, -1}
)

var (
	ColorBlack   = mgl32.Vec3{0, 0, 0}
	ColorYellow  = mgl32.Vec3{1, 1, 0}
	ColorRed     = mgl32.Vec3{1, 0, 0}
	ColorBlue    = mgl32.Vec3{0, 0, 1}
	ColorGreen   = mgl32.Vec3{0, 1, 0}
	ColorMagenta = mgl32.Vec3{1, 0, 1}
	ColorBrown   = mgl32.Vec3{0.8, 0.3, 0}
	ColorGrass   = mgl32.Vec3{0.2, 0.2, 0.2}

	// SkyColor is the clear color of every frame.
	SkyColor = mgl32.Vec4{0, 0.6, 1, 1}

	// DefaultGroundColor is the ground color before the first click.
	DefaultGroundColor = mgl32.Vec3{0.4, 0.1, 0}
)

const (
	// OutlineFace is the index of the cube face drawn with an outline.
	OutlineFace  = 0
	OutlineWidth = 4

	GroundHeight = -1.1
	GroundExtent = 5

	GrassHeight       = -1
	GrassFirst        = -4
	GrassLast         = 4
	GrassStipple      = uint16(0x1C47)
	GrassStippleScale = 1
)

// Cube has one differently colored face per side. Face 0 is black and is
// also outlined.
var Cube = Shape{
	Name: "cube",
	Faces: []Face{
		{Vertices: [4]mgl32.Vec3{v0, v1, v2, v3}, Color: ColorBlack},
		{Vertices: [4]mgl32.Vec3{v1, v2, v7, v5}, Color: ColorYellow},
		{Vertices: [4]mgl32.Vec3{v0, v4, v5, v1}, Color: ColorRed},
		{Vertices: [4]mgl32.Vec3{v4, v6, v7, v5}, Color: ColorBlue},
		{Vertices: [4]mgl32.Vec3{v2, v3, v6, v7}, Color: ColorGreen},
		{Vertices: [4]mgl32.Vec3{v0, v3, v6, v4}, Color: ColorMagenta},
	},
}

// TreeTrunk is a brown box standing on the ground.
var TreeTrunk = uniformShape("trunk", ColorBrown, [][4]mgl32.Vec3{
	{t0, t1, t2, t3},
	{t4, t5, t6, t7},
	{t0, t4, t5, t1},
	{t1, t2, t6, t5},
	{t2, t3, t7, t6},
	{t0, t3, t7, t4},
})

// TreeLeaves sits on top of the trunk. The last two faces keep their
// historical vertex order, which does not close the box.
var TreeLeaves = uniformShape("leaves", ColorGreen, [][4]mgl32.Vec3{
	{l0, l1, l2, l3},
	{l4, l5, l6, l7},
	{l0, l4, l5, l1},
	{l1, l2, l6, l5},
	{l2, l3, l6, l5},
	{l0, l3, l6, l7},
})

func uniformShape(name string, color mgl32.Vec3, quads [][4]mgl32.Vec3) Shape {
	faces := make([]Face, len(quads))
	for i, q := range quads {
		faces[i] = Face{Vertices: q, Color: color}
	}
	return Shape{Name: name, Faces: faces}
}

// Ground returns the flat ground quad in the given color.
func Ground(color mgl32.Vec3) Shape {
	const h, e = GroundHeight, GroundExtent
	return Shape{
		Name: "ground",
		Faces: []Face{{
			Vertices: [4]mgl32.Vec3{{-e, h, -e}, {-e, h, e}, {e, h, e}, {e, h, -e}},
			Color:    color,
		}},
	}
}

// Segment is a single line between two points.
type Segment struct {
	From, To mgl32.Vec3
}

// GrassLines returns the parallel lines drawn over the ground.
func GrassLines() []Segment {
	segs := make([]Segment, 0, GrassLast-GrassFirst+1)
	for i := GrassFirst; i <= GrassLast; i++ {
		x := float32(i)
		segs = append(segs, Segment{
			From: mgl32.Vec3{x, GrassHeight, -GroundExtent},
			To:   mgl32.Vec3{x, GrassHeight, GroundExtent},
		})
	}
	return segs
}

// Outline returns the closed edge loop of a face.
func (f Face) Outline() []Segment {
	segs := make([]Segment, 4)
	for i := range 4 {
		segs[i] = Segment{From: f.Vertices[i], To: f.Vertices[(i+1)%4]}
	}
	return segs
}
