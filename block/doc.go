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

// Package block provides submatrix views over flat row-major buffers for
// block-structured matrix kernels.
//
// A blocked matrix stores a dense matrix as a sequence of fixed-size square
// blocks for cache-friendly access. The kernels in the subpackages
// (trsolve, multiply) never see the owning container: they receive a
// Submatrix, a non-owning rectangular window identified by the owner's row
// stride, and operate in place on the underlying buffer with zero
// allocation.
//
// Example usage:
//
//	data := make([]float64, rows*cols) // row-major
//	v := block.Sub(data, cols, 0, 2, 0, 2)
//	v.Set(1, 0, 3.5) // writes data[1*cols+0]
package block
