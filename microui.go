// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024 The Ebitengine Authors

package microui

import (
	"fmt"
	"image"
	"sort"
)

// Context holds all retained UI state. A single long-lived Context is
// driven once per frame: the client feeds input, declares the whole UI
// between Begin and End, then replays the command list.
//
// A Context must only be used from one goroutine at a time.
type Context struct {
	// TextWidth and TextHeight measure text for layout and clipping.
	// Both must be set before the first frame.
	TextWidth  func(font Font, str string) int
	TextHeight func(font Font) int

	// DrawFrame draws widget chrome and may be replaced by the client.
	DrawFrame func(ctx *Context, rect image.Rectangle, colorid int)

	Style    *Style
	LastID   ID
	LastRect image.Rectangle

	hover         ID
	focus         ID
	lastZIndex    int
	updatedFocus  bool
	frame         int
	hoverRoot     *Container
	nextHoverRoot *Container
	scrollTarget  *Container
	numberEditBuf string
	numberEdit    ID

	// stacks

	commandList    []*command
	rootList       []*Container
	containerStack []*Container
	clipStack      []image.Rectangle
	idStack        []ID
	layoutStack    []layout

	// retained state pools

	containerPool [containerPoolSize]poolItem
	containers    [containerPoolSize]Container
	treeNodePool  [treeNodePoolSize]poolItem

	// input state

	mousePos     image.Point
	lastMousePos image.Point
	mouseDelta   image.Point
	scrollDelta  image.Point
	mouseDown    int
	mousePressed int
	keyDown      int
	keyPressed   int
	textInput    []byte
}

// expect panics when a core invariant does not hold. These are
// programmer errors (unbalanced begin/end pairs, capacity overflow),
// not runtime conditions.
func expect(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("microui: "+format, args...))
	}
}

// SetFocus grants the focus lease to id until the end of the frame in
// which it is no longer re-asserted.
func (c *Context) SetFocus(id ID) {
	c.focus = id
	c.updatedFocus = true
}

// Begin starts a new frame. The command list and root list are rebuilt
// from scratch every frame.
func (c *Context) Begin() {
	expect(c.TextWidth != nil && c.TextHeight != nil, "TextWidth and TextHeight must be set before Begin")
	c.commandList = c.commandList[:0]
	c.rootList = c.rootList[:0]
	c.scrollTarget = nil
	c.hoverRoot = c.nextHoverRoot
	c.nextHoverRoot = nil
	c.mouseDelta = c.mousePos.Sub(c.lastMousePos)
	c.frame++
}

// End finishes the frame: it checks stack balance, applies wheel
// scrolling, expires an unasserted focus, handles click-to-front, resets
// the per-frame input accumulators and threads the root containers'
// jump commands in z-index order.
func (c *Context) End() {
	expect(len(c.containerStack) == 0, "unbalanced container stack (%d)", len(c.containerStack))
	expect(len(c.clipStack) == 0, "unbalanced clip stack (%d)", len(c.clipStack))
	expect(len(c.idStack) == 0, "unbalanced id stack (%d)", len(c.idStack))
	expect(len(c.layoutStack) == 0, "unbalanced layout stack (%d)", len(c.layoutStack))

	// handle scroll input
	if c.scrollTarget != nil {
		c.scrollTarget.Scroll.X += c.scrollDelta.X
		c.scrollTarget.Scroll.Y += c.scrollDelta.Y
	}

	// unset focus if the focused widget was not declared this frame
	if !c.updatedFocus {
		c.focus = 0
	}
	c.updatedFocus = false

	// bring hover root to front if the mouse was pressed
	if c.mousePressed != 0 && c.nextHoverRoot != nil &&
		c.nextHoverRoot.zIndex < c.lastZIndex &&
		c.nextHoverRoot.zIndex >= 0 {
		c.BringToFront(c.nextHoverRoot)
	}

	// reset per-frame input state
	c.keyPressed = 0
	c.textInput = c.textInput[:0]
	c.mousePressed = 0
	c.scrollDelta = image.Point{}
	c.lastMousePos = c.mousePos

	// sort root containers by zindex
	sort.SliceStable(c.rootList, func(i, j int) bool {
		return c.rootList[i].zIndex < c.rootList[j].zIndex
	})

	// set root container jump commands: the first command in the list
	// jumps to the first root, each root's tail jumps past the next
	// root's head, and the last tail jumps to the end of the list
	for i, cnt := range c.rootList {
		if i == 0 {
			cmd := c.commandList[0]
			expect(cmd.typ == commandJump, "first command must be a jump")
			cmd.jump.dstIdx = cnt.headIdx + 1
		} else {
			prev := c.rootList[i-1]
			c.commandList[prev.tailIdx].jump.dstIdx = cnt.headIdx + 1
		}
		if i == len(c.rootList)-1 {
			c.commandList[cnt.tailIdx].jump.dstIdx = len(c.commandList)
		}
	}
}
