// Copyright 2025 Volgyerdo Nonprofit Kft. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks.
//
// # Overview
//
// This package currently contains the activation parameter record consumed
// by layer logic. An Activation describes a curve by its horizontal and
// vertical shift, horizontal and vertical stretch, swish blend factor and slope.
//
// # Basic Usage
//
//	act := nn.Swish()
//	custom := nn.NewActivation(0, 0, 1, 1, 0.5, 0.01)
//	named, err := nn.Preset("leaky_relu")
//
// # Presets
//
// Sigmoid, Swish, Tanh, ReLU, LeakyReLU, Step and Linear. Only Swish sets
// a non-zero field (Swish = 1); the others are zero records.
package nn
