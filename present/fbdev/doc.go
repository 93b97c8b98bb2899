// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fbdev presents canvas frames on the Linux framebuffer
// console (/dev/fb0).
//
// Importing the package registers the "fbdev" backend at priority 10
// on Linux; on other systems the import is a no-op:
//
//	import _ "github.com/gogpu/canvas/present/fbdev"
//
// The framebuffer has no windowing, no pointer and no title bar:
// frames are scaled to the device bounds, the frame-time display is
// drawn as a text overlay in the top-left corner, and the only close
// request is an interrupt signal.
package fbdev
