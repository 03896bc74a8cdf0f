// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strings"
)

// Matrix2 is a 3x2 matrix for 2D affine transforms.
// [XX YX]
// [XY YY]
// [X0 Y0]
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2] matrix.
func Identity2() Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		0, 0,
	}
}

// Translate2D returns a Matrix2 2D matrix with given translations
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		x, y,
	}
}

// Scale2D returns a Matrix2 scaling matrix for given scaling factors
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{
		x, 0,
		0, y,
		0, 0,
	}
}

// IsIdentity returns true if it is an identity matrix
func (a Matrix2) IsIdentity() bool {
	return a == Identity2()
}

// Mul returns a*b.
// The transform b is applied first, then a.
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// MulVector2AsVector multiplies the Vector2 as a vector without adding translations.
// This is for directional vectors and not points.
func (a Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y
	ty := a.YX*v.X + a.YY*v.Y
	return Vec2(tx, ty)
}

// MulVector2AsPoint multiplies the Vector2 as a point, including adding translations.
func (a Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y + a.X0
	ty := a.YX*v.X + a.YY*v.Y + a.Y0
	return Vec2(tx, ty)
}

// Det returns the determinant of the matrix.
func (a Matrix2) Det() float32 {
	return a.XX*a.YY - a.XY*a.YX
}

// Inverse returns inverse of matrix, for inverting transforms.
// The inverse of a singular matrix is the zero matrix.
func (a Matrix2) Inverse() Matrix2 {
	det := a.Det()
	if det == 0 {
		return Matrix2{}
	}
	d := 1 / det
	return Matrix2{
		XX: a.YY * d,
		YX: -a.YX * d,
		XY: -a.XY * d,
		YY: a.XX * d,
		X0: (a.XY*a.Y0 - a.YY*a.X0) * d,
		Y0: (a.YX*a.X0 - a.XX*a.Y0) * d,
	}
}

// String returns the SVG transform form of the matrix:
// "none" for the identity, translate and scale for pure
// translate / scale matrices, and matrix(...) otherwise.
func (a Matrix2) String() string {
	if a.IsIdentity() {
		return "none"
	}
	if a.YX != 0 || a.XY != 0 {
		return fmt.Sprintf("matrix(%g,%g,%g,%g,%g,%g)", a.XX, a.YX, a.XY, a.YY, a.X0, a.Y0)
	}
	var parts []string
	if a.X0 != 0 || a.Y0 != 0 {
		parts = append(parts, fmt.Sprintf("translate(%g,%g)", a.X0, a.Y0))
	}
	if a.XX != 1 || a.YY != 1 {
		parts = append(parts, fmt.Sprintf("scale(%g,%g)", a.XX, a.YY))
	}
	return strings.Join(parts, " ")
}
