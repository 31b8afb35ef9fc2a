// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !wakeqcheck

package wakeq

// drainGuard is empty in default builds; enter and leave compile away.
// Build with -tags wakeqcheck to panic on overlapping drains.
type drainGuard struct{}

func (drainGuard) enter() {}
func (drainGuard) leave() {}
