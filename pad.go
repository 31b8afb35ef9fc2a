// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !wakeq_nopad

package wakeq

// pad is cache line padding to keep head and tail out of each other's
// cache line. Producers hammer tail while the drainer walks from head;
// without padding every tail swap invalidates the drainer's line.
//
// Build with -tags wakeq_nopad to drop the padding. The knob is purely
// a footprint/performance trade; semantics are identical.
type pad [64]byte
