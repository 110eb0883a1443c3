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

// Package trsolve provides in-place triangular solves for inner blocks of a
// blocked matrix.
//
// The triangular operand occupies a single block (at most blockLength on a
// side); the right-hand side is a submatrix of arbitrary width that may span
// many blocks. Three solves are supported, all overwriting B with the
// solution:
//
//	B = L^-1 B        SolveL      (forward substitution)
//	B = U^-1 B        SolveU      (backward substitution)
//	B = (U^T)^-1 B    SolveTransU (forward substitution, U read column-wise)
//
// The Solve* entry points take block.Submatrix views, validate the operand
// shapes, and walk the right-hand side in column strips no wider than
// blockLength, matching the owner's block layout. The BaseSolve* kernels
// operate on flat buffers at explicit offsets and perform no validation.
//
// Substitution inside a strip uses SIMD across the strip's columns via the
// hwy primitives, with a scalar tail; columns are independent, so lane-wide
// processing does not change the arithmetic of any single column.
//
// There is no pivoting and no singularity detection: dividing by a zero
// diagonal entry produces Inf or NaN in the output, which callers must
// detect themselves if they care.
package trsolve
