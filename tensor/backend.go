// Copyright 2025 The Trellis Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/trellis-ml/trellis/internal/tensor"
)

// Backend is the interface compute backends implement: elementwise
// arithmetic with broadcasting, matrix contraction, shape manipulation
// and dtype conversion over raw tensors.
type Backend = tensor.Backend
