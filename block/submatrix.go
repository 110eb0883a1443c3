// Copyright 2026 ejml-go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package block

import "github.com/ajroetker/go-highway/hwy"

// Submatrix is a rectangular window [Row0,Row1) x [Col0,Col1) into a larger
// flat row-major buffer whose rows are Stride elements apart.
//
// A Submatrix does not own Data; it borrows the caller's slice for the
// duration of a kernel call. Constructing one allocates nothing.
//
// Element (r, c) of the window lives at Data[(Row0+r)*Stride + Col0+c].
// Kernels that address block-structured storage (see trsolve) interpret the
// same coordinates against the owner's block layout instead; the window
// bounds and stride are all they need either way.
type Submatrix[T hwy.Lanes] struct {
	Data   []T
	Stride int
	Row0   int
	Row1   int
	Col0   int
	Col1   int
}

// Sub creates a Submatrix view of data with the given row stride and
// window bounds.
//
// Panics if:
//   - the bounds are negative or out of order
//   - the window is wider than the owner's stride
//   - a non-empty window reaches past the end of data
func Sub[T hwy.Lanes](data []T, stride, row0, row1, col0, col1 int) Submatrix[T] {
	if row0 < 0 || col0 < 0 || row1 < row0 || col1 < col0 {
		panic("block: submatrix bounds out of order")
	}
	if stride < 1 || col1 > stride {
		panic("block: submatrix wider than its owner")
	}
	if row1 > row0 && col1 > col0 && (row1-1)*stride+col1 > len(data) {
		panic("block: data slice too short for submatrix")
	}
	return Submatrix[T]{
		Data:   data,
		Stride: stride,
		Row0:   row0,
		Row1:   row1,
		Col0:   col0,
		Col1:   col1,
	}
}

// Rows returns the number of rows in the window.
func (s Submatrix[T]) Rows() int {
	return s.Row1 - s.Row0
}

// Cols returns the number of columns in the window.
func (s Submatrix[T]) Cols() int {
	return s.Col1 - s.Col0
}

// IsSquare reports whether the window has as many rows as columns.
func (s Submatrix[T]) IsSquare() bool {
	return s.Rows() == s.Cols()
}

// Index returns the flat index of window element (r, c) under plain
// row-major addressing. No bounds check; r and c are window-relative.
func (s Submatrix[T]) Index(r, c int) int {
	return (s.Row0+r)*s.Stride + s.Col0 + c
}

// Get returns window element (r, c).
func (s Submatrix[T]) Get(r, c int) T {
	return s.Data[s.Index(r, c)]
}

// Set overwrites window element (r, c).
func (s Submatrix[T]) Set(r, c int, v T) {
	s.Data[s.Index(r, c)] = v
}
