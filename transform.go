package touchinput

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform computes the local affine matrix of an object.
// Returns [a, b, c, d, tx, ty].
//
//	Translate(-PivotX, -PivotY) -> Scale -> Rotate -> Translate(X, Y)
func computeLocalTransform(o *Object) [6]float64 {
	sin, cos := math.Sincos(o.Rotation)
	sx, sy := o.ScaleX, o.ScaleY

	preTx := -o.PivotX * sx
	preTy := -o.PivotY * sy

	return [6]float64{
		cos * sx, sin * sx,
		-sin * sy, cos * sy,
		cos*preTx - sin*preTy + o.X,
		sin*preTx + cos*preTy + o.Y,
	}
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
// Returns the identity matrix if the matrix is singular.
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

// updateWorldTransform recomputes world matrices and world Z for o and its
// subtree. parentRecomputed forces recomputation below a changed parent.
func updateWorldTransform(o *Object, parentTransform [6]float64, parentZ float64, parentRecomputed bool) {
	recompute := o.transformDirty || parentRecomputed
	if recompute {
		o.worldTransform = multiplyAffine(parentTransform, computeLocalTransform(o))
		o.worldZ = parentZ + o.Z
		o.transformDirty = false
	}

	for _, child := range o.children {
		updateWorldTransform(child, o.worldTransform, o.worldZ, recompute)
	}
}

// --- Transform property setters ---

// SetPosition sets the object's local X and Y and marks it dirty.
func (o *Object) SetPosition(x, y float64) {
	o.X = x
	o.Y = y
	o.transformDirty = true
}

// SetDepth sets the object's local Z and marks it dirty.
func (o *Object) SetDepth(z float64) {
	o.Z = z
	o.transformDirty = true
}

// SetScale sets the object's ScaleX and ScaleY and marks it dirty.
func (o *Object) SetScale(sx, sy float64) {
	o.ScaleX = sx
	o.ScaleY = sy
	o.transformDirty = true
}

// SetRotation sets the object's rotation (in radians) and marks it dirty.
func (o *Object) SetRotation(r float64) {
	o.Rotation = r
	o.transformDirty = true
}

// SetPivot sets the object's PivotX and PivotY and marks it dirty.
func (o *Object) SetPivot(px, py float64) {
	o.PivotX = px
	o.PivotY = py
	o.transformDirty = true
}

// MarkDirty forces recomputation of the world transform. Useful after
// bulk-setting fields directly.
func (o *Object) MarkDirty() {
	o.transformDirty = true
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this object's local space.
func (o *Object) WorldToLocal(wx, wy float64) (lx, ly float64) {
	return transformPoint(invertAffine(o.worldTransform), wx, wy)
}

// LocalToWorld converts a local-space point to world space.
func (o *Object) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(o.worldTransform, lx, ly)
}

// WorldZ returns the object's accumulated depth.
func (o *Object) WorldZ() float64 {
	return o.worldZ
}
