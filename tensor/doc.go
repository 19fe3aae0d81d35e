// Copyright 2025 Volgyerdo Nonprofit Kft. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dense N-dimensional arrays for the Volgyerdo neural toolkit.
//
// # Overview
//
// Tensors are the storage layer for weights and activations. This package provides:
//   - Generic tensors (Tensor[T]) over int8, int16, float32 and boxed Number
//   - Row-major indexing with bounds-checked At/Set
//   - Runtime representation selection via Create and the Interface view
//   - gonum interop for rank-2 tensors
//
// # Basic Usage
//
//	x, _ := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	xt := x.Transpose()            // Shape: [3, 2]
//	v, err := xt.At(2, 1)          // 6
//
// # Representations
//
//   - int8, int16: wrapping integer arithmetic, floats truncate toward zero on write
//   - float32: IEEE single precision
//   - Number: boxed integer or float, writes of non-numeric values fail
//
// Reading through a different representation converts on the fly:
//
//	s := tensor.Zeros[int16](tensor.Shape{4})
//	f, _ := s.Float32At(0)
//
// # Operations
//
// Scalar operations mutate in place:
//
//	x.AddScalar(5)
//
// Binary operations and Transpose return a new tensor and never touch their operands:
//
//	z, err := x.Add(y)   // ErrShapeMismatch if shapes differ
//	z, err = x.Sub(y)
//	xt := x.Transpose()
//
// There is no broadcasting. Shapes must match exactly.
//
// # Randomization
//
// Randomize takes an explicit source so results are reproducible:
//
//	x.Randomize(tensor.NewSource(42), -0.5, 0.5)
//
// # Concurrency
//
// Tensors carry no locks. Mutate a tensor from one goroutine at a time;
// read-only sharing is safe.
package tensor
