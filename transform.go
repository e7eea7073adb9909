package lwgl

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// Transform holds an entity's local spatial state and its computed
// world-space affine matrix. The local fields may be mutated freely at any
// time; the world matrix is recomposed top-down by the stage's transform
// pass, so it reflects the values the local fields held when the pass last
// visited the entity. Invisible entities are not visited and keep a stale
// world matrix until made visible again.
type Transform struct {
	X, Y         float64
	ScaleX       float64
	ScaleY       float64
	Rotation     float64
	SkewX, SkewY float64
	PivotX       float64
	PivotY       float64

	world [6]float64
}

// local computes the local affine matrix from the transform's properties.
// Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-PivotX, -PivotY) -> Scale -> Skew -> Rotate -> Translate(X, Y)
func (t *Transform) local() [6]float64 {
	sx := t.ScaleX
	sy := t.ScaleY

	sin, cos := math.Sincos(t.Rotation)

	var tanSkewX, tanSkewY float64
	if t.SkewX != 0 {
		tanSkewX = math.Tan(t.SkewX)
	}
	if t.SkewY != 0 {
		tanSkewY = math.Tan(t.SkewY)
	}

	// After Scale * Translate(-pivot):
	//   a=sx, b=0, c=0, d=sy, tx=-px*sx, ty=-py*sy
	//
	// After Skew:
	a := sx
	b := tanSkewY * sx
	c := tanSkewX * sy
	d := sy

	px := t.PivotX
	py := t.PivotY
	preTx := -px*sx - tanSkewX*py*sy
	preTy := -tanSkewY*px*sx - py*sy

	// After Rotate:
	ra := cos*a - sin*b
	rb := sin*a + cos*b
	rc := cos*c - sin*d
	rd := sin*c + cos*d
	rtx := cos*preTx - sin*preTy
	rty := sin*preTx + cos*preTy

	// After Translate(X, Y):
	return [6]float64{ra, rb, rc, rd, rtx + t.X, rty + t.Y}
}

// Apply recomputes the world matrix by composing the local matrix against
// the parent's world matrix. The parent's world matrix must already be
// current for the frame; the stage's transform pass guarantees this by
// visiting parents before children.
func (t *Transform) Apply(parent *Transform) {
	t.world = multiplyAffine(parent.world, t.local())
}

// applyRoot recomputes the world matrix with no parent: world = local.
// Used for the stage root, which composes against nothing.
func (t *Transform) applyRoot() {
	t.world = t.local()
}

// World returns the transform's world-space affine matrix as computed by the
// most recent transform pass that visited this entity.
func (t *Transform) World() [6]float64 {
	return t.world
}

// WorldToLocal converts a world-space point to this transform's local
// coordinate space.
func (t *Transform) WorldToLocal(wx, wy float64) (lx, ly float64) {
	inv := invertAffine(t.world)
	return transformPoint(inv, wx, wy)
}

// LocalToWorld converts a local-space point to world-space.
func (t *Transform) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(t.world, lx, ly)
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
