// SPDX-License-Identifier: MIT

package nnpack

import "sync"

// bstWindowPool reuses bstWindow instances (each ~100KB of index arrays)
// across encode calls so concurrent BST-window encodes don't repeatedly
// allocate and zero that memory. Each invocation still gets its own logical
// state — only the backing storage is shared, and only while checked out by
// exactly one caller.
var bstWindowPool = sync.Pool{
	New: func() any {
		return &bstWindow{}
	},
}

// acquireBSTWindow gets a zeroed, initialised bstWindow from the pool.
func acquireBSTWindow(vramSafe bool) *bstWindow {
	w := bstWindowPool.Get().(*bstWindow)
	w.reset(vramSafe)
	return w
}

// releaseBSTWindow returns w to the pool.
func releaseBSTWindow(w *bstWindow) {
	if w == nil {
		return
	}
	bstWindowPool.Put(w)
}
