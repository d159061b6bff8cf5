//go:build s390x || ppc64 || mips || mips64

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bo

import "encoding/binary"

// Big reports whether the host stores integers most-significant byte first.
// These are the common big-endian Go ports.
const Big = true

// Native returns the native byte order for common big-endian Go ports.
func Native() binary.ByteOrder { return binary.BigEndian }
