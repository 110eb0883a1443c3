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

package trsolve

import (
	"github.com/ajroetker/go-highway/hwy"

	"github.com/hong1830/ejml/block"
)

// SolveL performs an in-place solve B = L^-1 B where L is a lower
// triangular matrix occupying a single full inner block of a blocked
// matrix. B is a submatrix of the same owner with matching row count and
// arbitrary width; it is overwritten with the solution, one column strip
// of width at most blockLength at a time.
//
// L's entries above the diagonal are never read. Validation happens before
// any element of B is written.
//
// Panics if:
//   - blockLength < 1
//   - L has more rows than blockLength
//   - L and B disagree on row count
func SolveL[T hwy.Floats](blockLength int, l, b block.Submatrix[T]) {
	m := l.Rows()
	validate(blockLength, m, b.Rows())

	offsetL := l.Row0*l.Stride + m*l.Col0

	for i := b.Col0; i < b.Col1; i += blockLength {
		offsetB := b.Row0*b.Stride + m*i

		n := min(b.Col1, i+blockLength) - i
		BaseSolveL(l.Data, b.Data, m, n, offsetL, offsetB)
	}
}

// SolveU performs an in-place solve B = U^-1 B where U is an upper
// triangular matrix occupying a single full inner block. Entries below the
// diagonal are never read. See SolveL for the contract.
func SolveU[T hwy.Floats](blockLength int, u, b block.Submatrix[T]) {
	m := u.Rows()
	validate(blockLength, m, b.Rows())

	offsetU := u.Row0*u.Stride + m*u.Col0

	for i := b.Col0; i < b.Col1; i += blockLength {
		offsetB := b.Row0*b.Stride + m*i

		n := min(b.Col1, i+blockLength) - i
		BaseSolveU(u.Data, b.Data, m, n, offsetU, offsetB)
	}
}

// SolveTransU performs an in-place solve B = (U^T)^-1 B where U is an
// upper triangular matrix occupying a single full inner block. The
// transpose is never materialized. See SolveL for the contract.
func SolveTransU[T hwy.Floats](blockLength int, u, b block.Submatrix[T]) {
	m := u.Rows()
	validate(blockLength, m, b.Rows())

	offsetU := u.Row0*u.Stride + m*u.Col0

	for i := b.Col0; i < b.Col1; i += blockLength {
		offsetB := b.Row0*b.Stride + m*i

		n := min(b.Col1, i+blockLength) - i
		BaseSolveTransU(u.Data, b.Data, m, n, offsetU, offsetB)
	}
}

// validate guards the dispatcher preconditions. The messages keep the
// historical L wording in all three entry points.
func validate(blockLength, m, rowsB int) {
	if blockLength < 1 {
		panic("trsolve: block length must be positive")
	}
	if m > blockLength {
		panic("trsolve: L can be at most the size of a block")
	}
	if m != rowsB {
		panic("trsolve: L and B must have the same number of rows")
	}
}
