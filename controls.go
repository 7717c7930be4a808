// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024 The Ebitengine Authors

package microui

import (
	"fmt"
	"image"
	"strconv"
	"unsafe"
)

// inHoverRoot determines if the hover state is within the current root
// container by checking the container stack.
func (c *Context) inHoverRoot() bool {
	for i := len(c.containerStack) - 1; i >= 0; i-- {
		if c.containerStack[i] == c.hoverRoot {
			return true
		}
		// only root containers have their `head` field set; stop searching if we've
		// reached the current root container
		if c.containerStack[i].headIdx >= 0 {
			break
		}
	}
	return false
}

// DrawControlFrame renders a control's frame, shifting the color role by
// hover and focus state.
func (c *Context) DrawControlFrame(id ID, rect image.Rectangle, colorid int, opt Opt) {
	if (opt & OptNoFrame) != 0 {
		return
	}
	if c.focus == id {
		colorid += 2
	} else if c.hover == id {
		colorid++
	}
	c.drawFrame(rect, colorid)
}

// DrawControlText renders str inside rect with the given color role and
// alignment options.
func (c *Context) DrawControlText(str string, rect image.Rectangle, colorid int, opt Opt) {
	var pos image.Point
	font := c.Style.Font
	tw := c.TextWidth(font, str)
	c.PushClipRect(rect)
	pos.Y = rect.Min.Y + (rect.Dy()-c.TextHeight(font))/2
	if (opt & OptAlignCenter) != 0 {
		pos.X = rect.Min.X + (rect.Dx()-tw)/2
	} else if (opt & OptAlignRight) != 0 {
		pos.X = rect.Min.X + rect.Dx() - tw - c.Style.Padding
	} else {
		pos.X = rect.Min.X + c.Style.Padding
	}
	c.DrawText(font, str, pos, c.Style.Colors[colorid])
	c.PopClipRect()
}

// mouseOver checks if the mouse position is within the given rectangle,
// the clip rectangle, and the hover root.
func (c *Context) mouseOver(rect image.Rectangle) bool {
	return c.mousePos.In(rect) && c.mousePos.In(c.GetClipRect()) && c.inHoverRoot()
}

// updateControl runs the per-frame interaction state machine for one
// control: hover acquisition, focus acquisition on press, and focus
// release on outside-press or button release.
func (c *Context) updateControl(id ID, rect image.Rectangle, opt Opt) {
	if id == 0 {
		return
	}

	mouseover := c.mouseOver(rect)

	if c.focus == id {
		c.updatedFocus = true
	}
	if (opt & OptNoInteract) != 0 {
		return
	}
	if mouseover && c.mouseDown == 0 {
		c.hover = id
	}

	if c.focus == id {
		if c.mousePressed != 0 && !mouseover {
			c.SetFocus(0)
		}
		if c.mouseDown == 0 && (^opt&OptHoldFocus) != 0 {
			c.SetFocus(0)
		}
	}

	if c.hover == id {
		if c.mousePressed != 0 {
			c.SetFocus(id)
		} else if !mouseover {
			c.hover = 0
		}
	}
}

// Control places a custom control in the layout's next cell: it runs
// the interaction state machine for id and calls f with the cell
// rectangle to handle input and drawing.
func (c *Context) Control(id ID, opt Opt, f func(r image.Rectangle) Res) Res {
	return c.control(id, opt, f)
}

func (c *Context) control(id ID, opt Opt, f func(r image.Rectangle) Res) Res {
	r := c.layoutNext()
	c.updateControl(id, r, opt)
	return f(r)
}

// Placeholder reserves the layout's next cell without drawing anything.
func (c *Context) Placeholder() {
	c.control(0, 0, func(r image.Rectangle) Res {
		return 0
	})
}

// Text renders a paragraph word-wrapped to the width of the layout's
// next cell, breaking on spaces and newlines.
func (c *Context) Text(text string) {
	font := c.Style.Font
	color := c.Style.Colors[ColorText]
	c.LayoutBeginColumn()
	c.SetLayoutRow([]int{-1}, c.TextHeight(font))
	p := 0
	for {
		r := c.layoutNext()
		w := 0
		start, end := p, p
		for {
			word := p
			for p < len(text) && text[p] != ' ' && text[p] != '\n' {
				p++
			}
			w += c.TextWidth(font, text[word:p])
			if w > r.Dx() && end != start {
				break
			}
			if p < len(text) {
				w += c.TextWidth(font, text[p:p+1])
			}
			end = p
			p++
			if end >= len(text) || text[end] == '\n' {
				break
			}
		}
		c.DrawText(font, text[start:end], r.Min, color)
		p = end + 1
		if end >= len(text) {
			break
		}
	}
	c.LayoutEndColumn()
}

// Label renders non-interactive text in the layout's next cell.
func (c *Context) Label(text string) {
	c.DrawControlText(text, c.layoutNext(), ColorText, 0)
}

func (c *Context) button(label string, icon int, opt Opt) Res {
	var id ID
	if len(label) > 0 {
		id = c.idFromString(label)
	} else {
		// icon-only buttons seed their identity from the icon value;
		// callers with several identical icon buttons disambiguate with
		// PushID
		id = c.idFromBytes([]byte{byte(icon)})
	}
	return c.control(id, opt, func(r image.Rectangle) Res {
		var res Res
		// handle click
		if c.mousePressed == MouseLeft && c.focus == id {
			res |= ResSubmit
		}
		// draw
		c.DrawControlFrame(id, r, ColorButton, opt)
		if len(label) > 0 {
			c.DrawControlText(label, r, ColorText, opt)
		}
		if icon != 0 {
			c.DrawIcon(icon, r, c.Style.Colors[ColorText])
		}
		return res
	})
}

// Checkbox renders a checkbox bound to the caller's boolean; the state
// pointer also seeds the checkbox's identity.
func (c *Context) Checkbox(label string, state *bool) Res {
	id := c.idFromPtr(unsafe.Pointer(state))
	return c.control(id, 0, func(r image.Rectangle) Res {
		var res Res
		box := image.Rect(r.Min.X, r.Min.Y, r.Min.X+r.Dy(), r.Max.Y)
		// handle click
		if c.mousePressed == MouseLeft && c.focus == id {
			res |= ResChange
			*state = !*state
		}
		// draw
		c.DrawControlFrame(id, box, ColorBase, 0)
		if *state {
			c.DrawIcon(IconCheck, box, c.Style.Colors[ColorText])
		}
		r = image.Rect(r.Min.X+box.Dx(), r.Min.Y, r.Max.X, r.Max.Y)
		c.DrawControlText(label, r, ColorText, 0)
		return res
	})
}

// TextBoxRaw is the low-level textbox against the layout's next cell;
// the caller supplies the id.
func (c *Context) TextBoxRaw(buf *string, id ID, opt Opt) Res {
	return c.textBoxRawRect(buf, id, c.layoutNext(), opt)
}

// numberTextBox routes a slider or number control through text editing
// while shift+click has it in edit mode. It reports whether the control
// is still being edited; on submit or focus loss the buffer is parsed
// back into value.
func (c *Context) numberTextBox(value *float64, r image.Rectangle, id ID) bool {
	if c.mousePressed == MouseLeft && (c.keyDown&KeyShift) != 0 &&
		c.hover == id {
		c.numberEdit = id
		c.numberEditBuf = fmt.Sprintf(realFmt, *value)
	}
	if c.numberEdit == id {
		res := c.textBoxRawRect(&c.numberEditBuf, id, r, 0)
		if (res&ResSubmit) != 0 || c.focus != id {
			nval, err := strconv.ParseFloat(c.numberEditBuf, 64)
			if err != nil {
				nval = 0
			}
			*value = nval
			c.numberEdit = 0
		} else {
			return true
		}
	}
	return false
}

// textBoxRawRect handles textbox input and drawing against an explicit
// rectangle. While focused it consumes typed input, deletes whole UTF-8
// sequences on backspace, submits on return, and draws a caret kept in
// view.
func (c *Context) textBoxRawRect(buf *string, id ID, r image.Rectangle, opt Opt) Res {
	c.updateControl(id, r, opt|OptHoldFocus)

	var res Res
	if c.focus == id {
		// handle text input
		if len(c.textInput) > 0 {
			*buf += string(c.textInput)
			res |= ResChange
		}
		// handle backspace; walk back over utf-8 continuation bytes so
		// multi-byte sequences are removed as a unit
		if (c.keyPressed&KeyBackspace) != 0 && len(*buf) > 0 {
			b := *buf
			n := len(b) - 1
			for n > 0 && (b[n]&0xc0) == 0x80 {
				n--
			}
			*buf = b[:n]
			res |= ResChange
		}
		// handle return
		if (c.keyPressed & KeyReturn) != 0 {
			c.SetFocus(0)
			res |= ResSubmit
		}
	}

	c.DrawControlFrame(id, r, ColorBase, opt)
	if c.focus == id {
		font := c.Style.Font
		color := c.Style.Colors[ColorText]
		textw := c.TextWidth(font, *buf)
		texth := c.TextHeight(font)
		ofx := r.Dx() - c.Style.Padding - textw - 1
		textx := r.Min.X + min(ofx, c.Style.Padding)
		texty := r.Min.Y + (r.Dy()-texth)/2
		c.PushClipRect(r)
		c.DrawText(font, *buf, image.Pt(textx, texty), color)
		c.DrawRect(image.Rect(textx+textw, texty, textx+textw+1, texty+texth), color)
		c.PopClipRect()
	} else {
		c.DrawControlText(*buf, r, ColorText, opt)
	}
	return res
}

func (c *Context) textBox(buf *string, opt Opt) Res {
	id := c.idFromPtr(unsafe.Pointer(buf))
	return c.TextBoxRaw(buf, id, opt)
}

func (c *Context) slider(value *float64, low, high, step float64, format string, opt Opt) Res {
	var res Res
	last := *value
	v := last
	id := c.idFromPtr(unsafe.Pointer(value))
	base := c.layoutNext()

	// handle text input mode
	if c.numberTextBox(&v, base, id) {
		return res
	}

	// handle normal mode
	c.updateControl(id, base, opt)

	// handle input
	if c.focus == id && (c.mouseDown|c.mousePressed) == MouseLeft {
		v = low + float64(c.mousePos.X-base.Min.X)*(high-low)/float64(base.Dx())
		if step != 0 {
			v = float64(int64((v+step/2)/step)) * step
		}
	}
	// clamp and store value, update res
	v = clampF(v, low, high)
	*value = v
	if last != v {
		res |= ResChange
	}

	// draw base
	c.DrawControlFrame(id, base, ColorBase, opt)
	// draw thumb
	w := c.Style.ThumbSize
	x := int((v - low) * float64(base.Dx()-w) / (high - low))
	thumb := image.Rect(base.Min.X+x, base.Min.Y, base.Min.X+x+w, base.Max.Y)
	c.DrawControlFrame(id, thumb, ColorButton, opt)
	// draw text
	c.DrawControlText(fmt.Sprintf(format, v), base, ColorText, opt)

	return res
}

func (c *Context) number(value *float64, step float64, format string, opt Opt) Res {
	var res Res
	id := c.idFromPtr(unsafe.Pointer(value))
	base := c.layoutNext()
	last := *value

	// handle text input mode
	if c.numberTextBox(value, base, id) {
		return res
	}

	// handle normal mode
	c.updateControl(id, base, opt)

	// handle input
	if c.focus == id && c.mouseDown == MouseLeft {
		*value += float64(c.mouseDelta.X) * step
	}
	// set flag if value changed
	if *value != last {
		res |= ResChange
	}

	// draw base
	c.DrawControlFrame(id, base, ColorBase, opt)
	// draw text
	c.DrawControlText(fmt.Sprintf(format, *value), base, ColorText, opt)

	return res
}

func (c *Context) header(label string, istreenode bool, opt Opt) Res {
	id := c.idFromString(label)
	idx := c.poolGet(c.treeNodePool[:], id)
	c.SetLayoutRow([]int{-1}, 0)

	active := idx >= 0
	var expanded bool
	if (opt & OptExpanded) != 0 {
		expanded = !active
	} else {
		expanded = active
	}

	r := c.layoutNext()
	c.updateControl(id, r, 0)

	// handle click
	clicked := c.mousePressed == MouseLeft && c.focus == id
	active = active != clicked

	// update pool ref
	if idx >= 0 {
		if active {
			c.poolUpdate(c.treeNodePool[:], idx)
		} else {
			c.treeNodePool[idx] = poolItem{}
		}
	} else if active {
		c.poolInit(c.treeNodePool[:], id)
	}

	// draw
	if istreenode {
		if c.hover == id {
			c.drawFrame(r, ColorButtonHover)
		}
	} else {
		c.DrawControlFrame(id, r, ColorButton, 0)
	}
	icon := IconCollapsed
	if expanded {
		icon = IconExpanded
	}
	c.DrawIcon(
		icon,
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+r.Dy(), r.Max.Y),
		c.Style.Colors[ColorText],
	)
	r.Min.X += r.Dy() - c.Style.Padding
	c.DrawControlText(label, r, ColorText, 0)

	if expanded {
		return ResActive
	}
	return 0
}

func (c *Context) treeNode(label string, opt Opt, f func(res Res)) {
	res := c.header(label, true, opt)
	if res&ResActive == 0 {
		return
	}
	// indent the subtree and push the node's id so nested widgets with
	// identical labels stay distinct
	c.layout().indent += c.Style.Indent
	c.pushID(c.LastID)
	defer func() {
		c.layout().indent -= c.Style.Indent
		c.PopID()
	}()
	f(res)
}

func clamp(x, a, b int) int {
	return min(b, max(a, x))
}

func clampF(x, a, b float64) float64 {
	return min(b, max(a, x))
}
