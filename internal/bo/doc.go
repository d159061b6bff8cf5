// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bo provides native byte order selection.
//
// Implementation is architecture-specific via build tags where commonly known,
// and defers to golang.org/x/sys/cpu elsewhere. Big is a constant on every
// port, so order-conditional branches fold away at compile time.
package bo
