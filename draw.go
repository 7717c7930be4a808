// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024 The Ebitengine Authors

package microui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// PushClipRect pushes the intersection of rect with the current clip,
// so clips only ever shrink down a nesting path.
func (c *Context) PushClipRect(rect image.Rectangle) {
	expect(len(c.clipStack) < clipStackSize, "clip stack overflow")
	c.clipStack = append(c.clipStack, rect.Intersect(c.GetClipRect()))
}

func (c *Context) PopClipRect() {
	expect(len(c.clipStack) > 0, "clip stack underflow")
	c.clipStack = c.clipStack[:len(c.clipStack)-1]
}

// GetClipRect returns the current clip rectangle.
func (c *Context) GetClipRect() image.Rectangle {
	expect(len(c.clipStack) > 0, "clip stack is empty")
	return c.clipStack[len(c.clipStack)-1]
}

// CheckClip reports how rect relates to the current clip: ClipAll when
// fully outside, ClipPart when straddling the edge, 0 when fully inside.
func (c *Context) CheckClip(rect image.Rectangle) int {
	cr := c.GetClipRect()
	if rect.Min.X > cr.Max.X || rect.Max.X < cr.Min.X ||
		rect.Min.Y > cr.Max.Y || rect.Max.Y < cr.Min.Y {
		return ClipAll
	}
	if rect.Min.X >= cr.Min.X && rect.Max.X <= cr.Max.X &&
		rect.Min.Y >= cr.Min.Y && rect.Max.Y <= cr.Max.Y {
		return 0
	}
	return ClipPart
}

// setClip emits a clip command for the renderer; it does not touch the
// clip stack.
func (c *Context) setClip(rect image.Rectangle) {
	cmd := c.pushCommand(commandClip)
	cmd.clip.rect = rect
}

// DrawRect emits a filled rectangle clipped to the current clip rect.
func (c *Context) DrawRect(rect image.Rectangle, color color.RGBA) {
	rect = rect.Intersect(c.GetClipRect())
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return
	}
	cmd := c.pushCommand(commandRect)
	cmd.rect.rect = rect
	cmd.rect.color = color
}

// DrawBox emits a 1-pixel border as four thin rectangles.
func (c *Context) DrawBox(rect image.Rectangle, color color.RGBA) {
	c.DrawRect(image.Rect(rect.Min.X+1, rect.Min.Y, rect.Max.X-1, rect.Min.Y+1), color)
	c.DrawRect(image.Rect(rect.Min.X+1, rect.Max.Y-1, rect.Max.X-1, rect.Max.Y), color)
	c.DrawRect(image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+1, rect.Max.Y), color)
	c.DrawRect(image.Rect(rect.Max.X-1, rect.Min.Y, rect.Max.X, rect.Max.Y), color)
}

// DrawText emits a text command at pos. A record that straddles the
// clip edge is wrapped in a clip/unclip pair so the renderer's clip
// state stays consistent when jumps re-order the stream.
func (c *Context) DrawText(font Font, str string, pos image.Point, color color.RGBA) {
	rect := image.Rect(pos.X, pos.Y, pos.X+c.TextWidth(font, str), pos.Y+c.TextHeight(font))
	clipped := c.CheckClip(rect)
	if clipped == ClipAll {
		return
	}
	if clipped == ClipPart {
		c.setClip(c.GetClipRect())
	}
	cmd := c.pushCommand(commandText)
	cmd.text.font = font
	cmd.text.pos = pos
	cmd.text.color = color
	cmd.text.str = str
	if clipped != 0 {
		c.setClip(unclippedRect)
	}
}

// DrawIcon emits an icon command for one of the Icon* identifiers.
func (c *Context) DrawIcon(icon int, rect image.Rectangle, color color.RGBA) {
	clipped := c.CheckClip(rect)
	if clipped == ClipAll {
		return
	}
	if clipped == ClipPart {
		c.setClip(c.GetClipRect())
	}
	cmd := c.pushCommand(commandIcon)
	cmd.icon.icon = icon
	cmd.icon.rect = rect
	cmd.icon.color = color
	if clipped != 0 {
		c.setClip(unclippedRect)
	}
}

// DrawControl emits a command that runs f on the render target at this
// point in the stream, for client-drawn widget content.
func (c *Context) DrawControl(f func(screen *ebiten.Image)) {
	cmd := c.pushCommand(commandDraw)
	cmd.draw.f = f
}
