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

// Package multiply provides matrix multiplication kernels for inner blocks
// of a blocked matrix.
//
// These are the unchecked flat-offset counterparts to the trsolve kernels:
// operands are row-major regions inside larger buffers, addressed by an
// explicit offset, and no bounds or shape validation is performed. Blocked
// factorizations use the accumulate forms for Schur complement updates
// (C -= A*B); the plain form overwrites C.
package multiply
