// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024 The Ebitengine Authors

package microui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// command types
const (
	commandJump = 1 + iota
	commandClip
	commandRect
	commandText
	commandIcon
	commandDraw
)

type jumpCommand struct {
	dstIdx int
}

type clipCommand struct {
	rect image.Rectangle
}

type rectCommand struct {
	rect  image.Rectangle
	color color.RGBA
}

type textCommand struct {
	font  Font
	pos   image.Point
	color color.RGBA
	str   string
}

type iconCommand struct {
	rect  image.Rectangle
	icon  int
	color color.RGBA
}

type drawCommand struct {
	f func(screen *ebiten.Image)
}

// command is one tagged record in the frame's command list. Jump
// records link the list so that root containers can be re-ordered by
// z-index at frame end without moving any records; dstIdx is an index
// into the same list.
type command struct {
	typ  int
	idx  int
	jump jumpCommand // commandJump
	clip clipCommand // commandClip
	rect rectCommand // commandRect
	text textCommand // commandText
	icon iconCommand // commandIcon
	draw drawCommand // commandDraw
}

func (c *Context) pushCommand(typ int) *command {
	expect(len(c.commandList) < commandListSize, "command list overflow")
	cmd := &command{
		typ: typ,
		idx: len(c.commandList),
	}
	c.commandList = append(c.commandList, cmd)
	return cmd
}

// pushJump appends a jump command with the given destination index; -1
// marks a destination that is patched later.
func (c *Context) pushJump(dstIdx int) int {
	cmd := c.pushCommand(commandJump)
	cmd.jump.dstIdx = dstIdx
	return cmd.idx
}

// nextCommand advances *pcmd to the next non-jump command, transparently
// following jump records, and reports whether one was found. Start
// iteration with *pcmd == nil.
func (c *Context) nextCommand(pcmd **command) bool {
	idx := 0
	if *pcmd != nil {
		idx = (*pcmd).idx + 1
	}
	for idx < len(c.commandList) {
		cmd := c.commandList[idx]
		if cmd.typ != commandJump {
			*pcmd = cmd
			return true
		}
		idx = cmd.jump.dstIdx
	}
	return false
}
