// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package wakeq

// RaceEnabled is true when the race detector is active.
// Stress tests scale their producer and iteration counts down under the
// detector's slowdown; the chain itself uses sync/atomic, which the
// detector tracks natively, so nothing is skipped outright.
const RaceEnabled = true
