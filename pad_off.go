// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build wakeq_nopad

package wakeq

// pad is empty when built with -tags wakeq_nopad: head and tail share
// cache lines and the queue header shrinks to three words.
type pad [0]byte
