// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build wakeqcheck

package wakeq

import "code.hybscloud.com/atomix"

// drainGuard detects overlapping drains when built with -tags wakeqcheck.
//
// Single-drainer is a hard precondition of WakeAll and Close; the
// structure itself does not (and cannot cheaply) make concurrent drains
// safe. The guard turns the undefined behavior into a panic during
// development. It is not a synchronization mechanism.
type drainGuard struct {
	busy atomix.Uint64
}

func (g *drainGuard) enter() {
	if !g.busy.CompareAndSwapAcqRel(0, 1) {
		panic("wakeq: concurrent drain (WakeAll/Close overlap)")
	}
}

func (g *drainGuard) leave() {
	g.busy.StoreRelease(0)
}
