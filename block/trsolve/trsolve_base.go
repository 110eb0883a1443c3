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

import "github.com/ajroetker/go-highway/hwy"

// BaseSolveL solves b = L^-1 b in place using forward substitution.
//
//   - l holds an m x m lower triangular matrix, row-major, starting at
//     offsetL. Entries above the diagonal are never read.
//   - b holds an m x n right-hand side, row-major, starting at offsetB.
//
// Rows are solved in ascending order; row i depends on rows k < i already
// solved. The strip's n columns are processed a vector at a time with a
// scalar tail. No validation is performed.
func BaseSolveL[T hwy.Floats](l, b []T, m, n, offsetL, offsetB int) {
	lanes := hwy.Zero[T]().NumLanes()

	var j int
	for j = 0; j+lanes <= n; j += lanes {
		for i := range m {
			rowL := offsetL + i*m
			acc := hwy.Zero[T]()
			for k := range i {
				vL := hwy.Set(l[rowL+k])
				acc = hwy.MulAdd(vL, hwy.Load(b[offsetB+k*n+j:]), acc)
			}
			sum := hwy.Sub(hwy.Load(b[offsetB+i*n+j:]), acc)
			hwy.Store(hwy.Div(sum, hwy.Set(l[rowL+i])), b[offsetB+i*n+j:])
		}
	}

	// Scalar tail for the remaining columns
	for ; j < n; j++ {
		for i := range m {
			rowL := offsetL + i*m
			sum := b[offsetB+i*n+j]
			for k := range i {
				sum -= l[rowL+k] * b[offsetB+k*n+j]
			}
			b[offsetB+i*n+j] = sum / l[rowL+i]
		}
	}
}

// BaseSolveU solves b = U^-1 b in place using backward substitution.
//
// Layout matches BaseSolveL with u upper triangular; entries below the
// diagonal are never read. Rows are solved in descending order; row i
// depends on rows k > i already solved. No validation is performed.
func BaseSolveU[T hwy.Floats](u, b []T, m, n, offsetU, offsetB int) {
	lanes := hwy.Zero[T]().NumLanes()

	var j int
	for j = 0; j+lanes <= n; j += lanes {
		for i := m - 1; i >= 0; i-- {
			rowU := offsetU + i*m
			acc := hwy.Zero[T]()
			for k := i + 1; k < m; k++ {
				vU := hwy.Set(u[rowU+k])
				acc = hwy.MulAdd(vU, hwy.Load(b[offsetB+k*n+j:]), acc)
			}
			sum := hwy.Sub(hwy.Load(b[offsetB+i*n+j:]), acc)
			hwy.Store(hwy.Div(sum, hwy.Set(u[rowU+i])), b[offsetB+i*n+j:])
		}
	}

	// Scalar tail for the remaining columns
	for ; j < n; j++ {
		for i := m - 1; i >= 0; i-- {
			rowU := offsetU + i*m
			sum := b[offsetB+i*n+j]
			for k := i + 1; k < m; k++ {
				sum -= u[rowU+k] * b[offsetB+k*n+j]
			}
			b[offsetB+i*n+j] = sum / u[rowU+i]
		}
	}
}

// BaseSolveTransU solves b = (U^T)^-1 b in place. This is a forward
// substitution against U's transpose without materializing it: U is read
// column-wise, so the inner accumulation walks u with stride m.
// No validation is performed.
func BaseSolveTransU[T hwy.Floats](u, b []T, m, n, offsetU, offsetB int) {
	lanes := hwy.Zero[T]().NumLanes()

	var j int
	for j = 0; j+lanes <= n; j += lanes {
		for i := range m {
			acc := hwy.Zero[T]()
			for k := range i {
				vU := hwy.Set(u[offsetU+k*m+i])
				acc = hwy.MulAdd(vU, hwy.Load(b[offsetB+k*n+j:]), acc)
			}
			sum := hwy.Sub(hwy.Load(b[offsetB+i*n+j:]), acc)
			hwy.Store(hwy.Div(sum, hwy.Set(u[offsetU+i*m+i])), b[offsetB+i*n+j:])
		}
	}

	// Scalar tail for the remaining columns
	for ; j < n; j++ {
		for i := range m {
			sum := b[offsetB+i*n+j]
			for k := range i {
				sum -= u[offsetU+k*m+i] * b[offsetB+k*n+j]
			}
			b[offsetB+i*n+j] = sum / u[offsetU+i*m+i]
		}
	}
}

// solveScalarL is the pure scalar forward substitution. It is kept for
// reference and benchmarking; BaseSolveL is the implementation used by the
// dispatchers.
func solveScalarL[T hwy.Floats](l, b []T, m, n, offsetL, offsetB int) {
	for j := range n {
		for i := range m {
			rowL := offsetL + i*m
			sum := b[offsetB+i*n+j]
			for k := range i {
				sum -= l[rowL+k] * b[offsetB+k*n+j]
			}
			b[offsetB+i*n+j] = sum / l[rowL+i]
		}
	}
}

// solveScalarU is the pure scalar backward substitution.
func solveScalarU[T hwy.Floats](u, b []T, m, n, offsetU, offsetB int) {
	for j := range n {
		for i := m - 1; i >= 0; i-- {
			rowU := offsetU + i*m
			sum := b[offsetB+i*n+j]
			for k := i + 1; k < m; k++ {
				sum -= u[rowU+k] * b[offsetB+k*n+j]
			}
			b[offsetB+i*n+j] = sum / u[rowU+i]
		}
	}
}

// solveScalarTransU is the pure scalar transposed-upper substitution.
func solveScalarTransU[T hwy.Floats](u, b []T, m, n, offsetU, offsetB int) {
	for j := range n {
		for i := range m {
			sum := b[offsetB+i*n+j]
			for k := range i {
				sum -= u[offsetU+k*m+i] * b[offsetB+k*n+j]
			}
			b[offsetB+i*n+j] = sum / u[offsetU+i*m+i]
		}
	}
}
