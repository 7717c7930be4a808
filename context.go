// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024 The Ebitengine Authors

package microui

import (
	"image"
)

func defaultDrawFrame(c *Context, rect image.Rectangle, colorid int) {
	c.DrawRect(rect, c.Style.Colors[colorid])
	if colorid == ColorScrollBase ||
		colorid == ColorScrollThumb ||
		colorid == ColorTitleBG {
		return
	}

	// draw border
	if c.Style.Colors[ColorBorder].A != 0 {
		c.DrawBox(rect.Inset(-1), c.Style.Colors[ColorBorder])
	}
}

// NewContext returns a Context with the default style and the bitmap
// font measurement callbacks. The callbacks and the style may be
// replaced before the first frame.
func NewContext() *Context {
	style := defaultStyle
	return &Context{
		TextWidth:  func(font Font, str string) int { return textWidth(str) },
		TextHeight: func(font Font) int { return lineHeight() },
		DrawFrame:  defaultDrawFrame,
		Style:      &style,
	}
}

func (c *Context) drawFrame(rect image.Rectangle, colorid int) {
	c.DrawFrame(c, rect, colorid)
}
