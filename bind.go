// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024 The Ebitengine Authors

package microui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var fontFace = text.NewGoXFace(bitmapfont.Face)

func textWidth(str string) int {
	return int(text.Advance(str, fontFace))
}

func lineHeight() int {
	return int(fontFace.Metrics().HAscent + fontFace.Metrics().HDescent + fontFace.Metrics().HLineGap)
}

var mouseButtons = [...]struct {
	button ebiten.MouseButton
	mask   int
}{
	{ebiten.MouseButtonLeft, MouseLeft},
	{ebiten.MouseButtonRight, MouseRight},
	{ebiten.MouseButtonMiddle, MouseMiddle},
}

var keys = [...]struct {
	key  ebiten.Key
	mask int
}{
	{ebiten.KeyShift, KeyShift},
	{ebiten.KeyControl, KeyCtrl},
	{ebiten.KeyAlt, KeyAlt},
	{ebiten.KeyBackspace, KeyBackspace},
	{ebiten.KeyEnter, KeyReturn},
}

// UpdateInput feeds ebiten's input state for this tick into the
// context.
func (c *Context) UpdateInput() {
	cx, cy := ebiten.CursorPosition()
	c.InputMouseMove(cx, cy)
	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		c.InputScroll(int(wx*-30), int(wy*-30))
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.button) {
			c.InputMouseDown(cx, cy, b.mask)
		} else if inpututil.IsMouseButtonJustReleased(b.button) {
			c.InputMouseUp(cx, cy, b.mask)
		}
	}
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.key) {
			c.InputKeyDown(k.mask)
		} else if inpututil.IsKeyJustReleased(k.key) {
			c.InputKeyUp(k.mask)
		}
	}
	if chars := ebiten.AppendInputChars(nil); len(chars) > 0 {
		c.InputText(string(chars))
	}
}

// Update feeds input and runs one frame of UI declaration.
func (c *Context) Update(f func()) {
	c.UpdateInput()
	c.Begin()
	defer c.End()
	f()
}

// Draw replays the frame's command stream onto screen.
func (c *Context) Draw(screen *ebiten.Image) {
	target := screen
	var cmd *command
	for c.nextCommand(&cmd) {
		switch cmd.typ {
		case commandRect:
			vector.DrawFilledRect(
				target,
				float32(cmd.rect.rect.Min.X),
				float32(cmd.rect.rect.Min.Y),
				float32(cmd.rect.rect.Dx()),
				float32(cmd.rect.rect.Dy()),
				cmd.rect.color,
				false,
			)
		case commandText:
			op := &text.DrawOptions{}
			op.GeoM.Translate(float64(cmd.text.pos.X), float64(cmd.text.pos.Y))
			op.ColorScale.ScaleWithColor(cmd.text.color)
			text.Draw(target, cmd.text.str, fontFace, op)
		case commandIcon:
			drawIcon(target, cmd.icon.icon, cmd.icon.rect, cmd.icon.color)
		case commandDraw:
			cmd.draw.f(target)
		case commandClip:
			target = screen.SubImage(cmd.clip.rect).(*ebiten.Image)
		}
	}
}

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

func fillTriangle(dst *ebiten.Image, x0, y0, x1, y1, x2, y2 float32, clr color.RGBA) {
	cr := float32(clr.R) / 255
	cg := float32(clr.G) / 255
	cb := float32(clr.B) / 255
	ca := float32(clr.A) / 255
	vs := []ebiten.Vertex{
		{DstX: x0, DstY: y0, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: x1, DstY: y1, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: x2, DstY: y2, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
	}
	dst.DrawTriangles(vs, []uint16{0, 1, 2}, whiteSubImage, nil)
}

// drawIcon rasterizes the built-in icons with vector primitives; the
// command stream only carries the icon id, rect and color.
func drawIcon(dst *ebiten.Image, icon int, rect image.Rectangle, clr color.RGBA) {
	cx := float32(rect.Min.X) + float32(rect.Dx())/2
	cy := float32(rect.Min.Y) + float32(rect.Dy())/2
	s := float32(min(rect.Dx(), rect.Dy())) / 4
	switch icon {
	case IconClose:
		vector.StrokeLine(dst, cx-s, cy-s, cx+s, cy+s, 2, clr, true)
		vector.StrokeLine(dst, cx-s, cy+s, cx+s, cy-s, 2, clr, true)
	case IconCheck:
		vector.StrokeLine(dst, cx-s, cy, cx-s/3, cy+s*2/3, 2, clr, true)
		vector.StrokeLine(dst, cx-s/3, cy+s*2/3, cx+s, cy-s*2/3, 2, clr, true)
	case IconCollapsed:
		fillTriangle(dst, cx-s/2, cy-s, cx-s/2, cy+s, cx+s/2, cy, clr)
	case IconExpanded:
		fillTriangle(dst, cx-s, cy-s/2, cx+s, cy-s/2, cx, cy+s/2, clr)
	}
}
