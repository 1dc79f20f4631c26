// SPDX-License-Identifier: MIT
// Copyright (c) 2026 zenatron
// Source: github.com/zenatron/pi-compress

package picompress

import "sync"

// hexBufPool recycles the compressor's hex scratch buffers.
var hexBufPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, 1024)
		return &buf
	},
}

// acquireHexBuf acquires a scratch buffer with capacity for at least n bytes.
func acquireHexBuf(n int) *[]byte {
	buf := hexBufPool.Get().(*[]byte)
	if cap(*buf) < n {
		*buf = make([]byte, 0, n)
	}
	*buf = (*buf)[:0]
	return buf
}

// releaseHexBuf releases a scratch buffer back to the pool.
func releaseHexBuf(buf *[]byte) {
	if buf == nil {
		return
	}
	hexBufPool.Put(buf)
}
