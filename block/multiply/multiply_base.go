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

package multiply

import "github.com/ajroetker/go-highway/hwy"

// BaseMultBlock computes C = A * B for inner blocks at flat offsets.
//
//   - a holds an m x k block, row-major, starting at offsetA
//   - b holds a k x n block, row-major, starting at offsetB
//   - c holds an m x n block, row-major, starting at offsetC; overwritten
//
// Output columns are processed a vector at a time with a scalar tail.
// No validation is performed.
func BaseMultBlock[T hwy.Floats](a, b, c []T, m, n, k, offsetA, offsetB, offsetC int) {
	lanes := hwy.Zero[T]().NumLanes()

	for i := range m {
		rowA := offsetA + i*k
		rowC := offsetC + i*n

		var j int
		for j = 0; j+lanes <= n; j += lanes {
			acc := hwy.Zero[T]()
			for p := range k {
				acc = hwy.MulAdd(hwy.Set(a[rowA+p]), hwy.Load(b[offsetB+p*n+j:]), acc)
			}
			hwy.Store(acc, c[rowC+j:])
		}
		for ; j < n; j++ {
			var sum T
			for p := range k {
				sum += a[rowA+p] * b[offsetB+p*n+j]
			}
			c[rowC+j] = sum
		}
	}
}

// BaseMultPlusBlock computes C += A * B. Layout matches BaseMultBlock.
func BaseMultPlusBlock[T hwy.Floats](a, b, c []T, m, n, k, offsetA, offsetB, offsetC int) {
	lanes := hwy.Zero[T]().NumLanes()

	for i := range m {
		rowA := offsetA + i*k
		rowC := offsetC + i*n

		var j int
		for j = 0; j+lanes <= n; j += lanes {
			acc := hwy.Zero[T]()
			for p := range k {
				acc = hwy.MulAdd(hwy.Set(a[rowA+p]), hwy.Load(b[offsetB+p*n+j:]), acc)
			}
			sum := hwy.Add(hwy.Load(c[rowC+j:]), acc)
			hwy.Store(sum, c[rowC+j:])
		}
		for ; j < n; j++ {
			var sum T
			for p := range k {
				sum += a[rowA+p] * b[offsetB+p*n+j]
			}
			c[rowC+j] += sum
		}
	}
}

// BaseMultMinusBlock computes C -= A * B, the Schur complement update form.
// Layout matches BaseMultBlock.
func BaseMultMinusBlock[T hwy.Floats](a, b, c []T, m, n, k, offsetA, offsetB, offsetC int) {
	lanes := hwy.Zero[T]().NumLanes()

	for i := range m {
		rowA := offsetA + i*k
		rowC := offsetC + i*n

		var j int
		for j = 0; j+lanes <= n; j += lanes {
			acc := hwy.Zero[T]()
			for p := range k {
				acc = hwy.MulAdd(hwy.Set(a[rowA+p]), hwy.Load(b[offsetB+p*n+j:]), acc)
			}
			sum := hwy.Sub(hwy.Load(c[rowC+j:]), acc)
			hwy.Store(sum, c[rowC+j:])
		}
		for ; j < n; j++ {
			var sum T
			for p := range k {
				sum += a[rowA+p] * b[offsetB+p*n+j]
			}
			c[rowC+j] -= sum
		}
	}
}
