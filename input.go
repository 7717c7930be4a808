// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024 The Ebitengine Authors

package microui

import "image"

// The input feed is called by the client between frames; events
// accumulate and are observed wholesale inside the next Begin/End.

// InputMouseMove sets the current mouse position.
func (c *Context) InputMouseMove(x, y int) {
	c.mousePos = image.Pt(x, y)
}

// InputMouseDown presses the buttons in mask at (x, y). The pressed
// bits last for exactly one frame.
func (c *Context) InputMouseDown(x, y, mask int) {
	c.InputMouseMove(x, y)
	c.mouseDown |= mask
	c.mousePressed |= mask
}

// InputMouseUp releases the buttons in mask at (x, y).
func (c *Context) InputMouseUp(x, y, mask int) {
	c.InputMouseMove(x, y)
	c.mouseDown &^= mask
}

// InputScroll accumulates wheel movement.
func (c *Context) InputScroll(dx, dy int) {
	c.scrollDelta.X += dx
	c.scrollDelta.Y += dy
}

// InputKeyDown presses the keys in mask; the pressed bits last for
// exactly one frame.
func (c *Context) InputKeyDown(mask int) {
	c.keyPressed |= mask
	c.keyDown |= mask
}

// InputKeyUp releases the keys in mask.
func (c *Context) InputKeyUp(mask int) {
	c.keyDown &^= mask
}

// InputText appends typed text for the focused textbox to consume.
func (c *Context) InputText(text string) {
	expect(len(c.textInput)+len(text) <= maxTextInput, "text input overflow")
	c.textInput = append(c.textInput, text...)
}
