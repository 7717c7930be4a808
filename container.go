// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024 The Ebitengine Authors

package microui

import "image"

// Container is the retained per-id state of a window, panel or popup:
// its outer rectangle, inner body, measured content extent, scroll
// offset and stacking order. Only root containers (windows and popups)
// have head/tail jump commands and take part in z-ordering.
type Container struct {
	Rect        image.Rectangle
	Body        image.Rectangle
	ContentSize image.Point
	Scroll      image.Point
	Open        bool

	headIdx int
	tailIdx int
	zIndex  int
}

// CurrentContainer returns the innermost container being declared.
func (c *Context) CurrentContainer() *Container {
	expect(len(c.containerStack) > 0, "container stack is empty")
	return c.containerStack[len(c.containerStack)-1]
}

func (c *Context) getContainer(id ID, opt Opt) *Container {
	// try to get existing container from pool
	idx := c.poolGet(c.containerPool[:], id)
	if idx >= 0 {
		if c.containers[idx].Open || (^opt&OptClosed) != 0 {
			c.poolUpdate(c.containerPool[:], idx)
		}
		return &c.containers[idx]
	}
	if (opt & OptClosed) != 0 {
		return nil
	}
	// container not found in pool: init new container
	idx = c.poolInit(c.containerPool[:], id)
	cnt := &c.containers[idx]
	*cnt = Container{
		Open:    true,
		headIdx: -1,
		tailIdx: -1,
	}
	c.BringToFront(cnt)
	return cnt
}

// GetContainer returns the retained container for name, creating it if
// needed.
func (c *Context) GetContainer(name string) *Container {
	id := c.idFromString(name)
	return c.getContainer(id, 0)
}

// BringToFront gives cnt the highest z-index so it draws last.
func (c *Context) BringToFront(cnt *Container) {
	c.lastZIndex++
	cnt.zIndex = c.lastZIndex
}

func (c *Context) pushContainer(cnt *Container) {
	expect(len(c.containerStack) < containerStackSize, "container stack overflow")
	c.containerStack = append(c.containerStack, cnt)
}

// popContainer records the content extent measured by the container's
// layout, then unwinds the container, layout and id stacks.
func (c *Context) popContainer() {
	cnt := c.CurrentContainer()
	layout := c.layout()
	cnt.ContentSize.X = layout.max.X - layout.body.Min.X
	cnt.ContentSize.Y = layout.max.Y - layout.body.Min.Y
	c.containerStack = c.containerStack[:len(c.containerStack)-1]
	c.popLayout()
	c.PopID()
}

func (c *Context) beginRootContainer(cnt *Container) {
	expect(len(c.rootList) < rootListSize, "root list overflow")
	c.pushContainer(cnt)
	c.rootList = append(c.rootList, cnt)

	// push head command
	cnt.headIdx = c.pushJump(-1)

	// set as hover root if the mouse is overlapping this container and
	// it has a higher zindex than the current hover root
	if c.mousePos.In(cnt.Rect) && (c.nextHoverRoot == nil || cnt.zIndex > c.nextHoverRoot.zIndex) {
		c.nextHoverRoot = cnt
	}

	// clipping is reset here in case a root-container is made within
	// another root-containers's begin/end block; this prevents the inner
	// root-container being clipped to the outer
	expect(len(c.clipStack) < clipStackSize, "clip stack overflow")
	c.clipStack = append(c.clipStack, unclippedRect)
}

func (c *Context) endRootContainer() {
	// push tail 'goto' jump command and set the head 'skip' command; the
	// final steps on initing these are done in End
	cnt := c.CurrentContainer()
	cnt.tailIdx = c.pushJump(-1)
	c.commandList[cnt.headIdx].jump.dstIdx = len(c.commandList)

	// pop base clip rect and container
	c.PopClipRect()
	c.popContainer()
}

// scrollbarVertical adds the vertical scrollbar for cnt when the
// content overflows the body.
func (c *Context) scrollbarVertical(cnt *Container, b image.Rectangle, cs image.Point) {
	maxscroll := cs.Y - b.Dy()
	if maxscroll > 0 && b.Dy() > 0 {
		// get sizing / positioning
		base := b
		base.Min.X = b.Max.X
		base.Max.X = base.Min.X + c.Style.ScrollbarSize

		// handle input
		id := c.idFromString("!scrollbar" + "y")
		c.updateControl(id, base, 0)
		if c.focus == id && c.mouseDown == MouseLeft {
			cnt.Scroll.Y += c.mouseDelta.Y * cs.Y / base.Dy()
		}
		// clamp scroll to limits
		cnt.Scroll.Y = clamp(cnt.Scroll.Y, 0, maxscroll)

		// draw base and thumb
		c.drawFrame(base, ColorScrollBase)
		thumb := base
		thumb.Max.Y = thumb.Min.Y + max(c.Style.ThumbSize, base.Dy()*b.Dy()/cs.Y)
		thumb = thumb.Add(image.Pt(0, cnt.Scroll.Y*(base.Dy()-thumb.Dy())/maxscroll))
		c.drawFrame(thumb, ColorScrollThumb)

		// set this as the scroll_target (will get scrolled on mousewheel)
		// if the mouse is over it
		if c.mouseOver(b) {
			c.scrollTarget = cnt
		}
	} else {
		cnt.Scroll.Y = 0
	}
}

// scrollbarHorizontal is scrollbarVertical with the axes swapped.
func (c *Context) scrollbarHorizontal(cnt *Container, b image.Rectangle, cs image.Point) {
	maxscroll := cs.X - b.Dx()
	if maxscroll > 0 && b.Dx() > 0 {
		// get sizing / positioning
		base := b
		base.Min.Y = b.Max.Y
		base.Max.Y = base.Min.Y + c.Style.ScrollbarSize

		// handle input
		id := c.idFromString("!scrollbar" + "x")
		c.updateControl(id, base, 0)
		if c.focus == id && c.mouseDown == MouseLeft {
			cnt.Scroll.X += c.mouseDelta.X * cs.X / base.Dx()
		}
		// clamp scroll to limits
		cnt.Scroll.X = clamp(cnt.Scroll.X, 0, maxscroll)

		// draw base and thumb
		c.drawFrame(base, ColorScrollBase)
		thumb := base
		thumb.Max.X = thumb.Min.X + max(c.Style.ThumbSize, base.Dx()*b.Dx()/cs.X)
		thumb = thumb.Add(image.Pt(cnt.Scroll.X*(base.Dx()-thumb.Dx())/maxscroll, 0))
		c.drawFrame(thumb, ColorScrollThumb)

		// set this as the scroll_target (will get scrolled on mousewheel)
		// if the mouse is over it
		if c.mouseOver(b) {
			c.scrollTarget = cnt
		}
	} else {
		cnt.Scroll.X = 0
	}
}

// scrollbars resizes body to make room for any scrollbars and draws
// them.
func (c *Context) scrollbars(cnt *Container, body image.Rectangle) image.Rectangle {
	sz := c.Style.ScrollbarSize
	cs := cnt.ContentSize
	cs.X += c.Style.Padding * 2
	cs.Y += c.Style.Padding * 2
	c.PushClipRect(body)
	// resize body to make room for scrollbars; a container with no
	// retained body yet (its first frame) is measured against body itself
	prev := cnt.Body
	if prev.Empty() {
		prev = body
	}
	if cs.Y > prev.Dy() {
		body.Max.X -= sz
	}
	if cs.X > prev.Dx() {
		body.Max.Y -= sz
	}
	// to create a horizontal or vertical scrollbar almost-identical code
	// is used; only the references to x|y and w|h are switched
	c.scrollbarVertical(cnt, body, cs)
	c.scrollbarHorizontal(cnt, body, cs)
	c.PopClipRect()
	return body
}

func (c *Context) pushContainerBody(cnt *Container, body image.Rectangle, opt Opt) {
	if (^opt & OptNoScroll) != 0 {
		body = c.scrollbars(cnt, body)
	}
	c.pushLayout(body.Inset(c.Style.Padding), cnt.Scroll)
	cnt.Body = body
}

func (c *Context) beginWindow(title string, rect image.Rectangle, opt Opt) Res {
	id := c.idFromString(title)
	cnt := c.getContainer(id, opt)
	if cnt == nil || !cnt.Open {
		return 0
	}
	c.pushID(id)

	if cnt.Rect.Dx() == 0 {
		cnt.Rect = rect
	}
	c.beginRootContainer(cnt)
	rect = cnt.Rect
	body := cnt.Rect

	// draw frame
	if (^opt & OptNoFrame) != 0 {
		c.drawFrame(rect, ColorWindowBG)
	}

	// do title bar
	if (^opt & OptNoTitle) != 0 {
		tr := rect
		tr.Max.Y = tr.Min.Y + c.Style.TitleHeight
		c.drawFrame(tr, ColorTitleBG)

		// do title text
		{
			id := c.idFromString("!title")
			c.updateControl(id, tr, opt)
			c.DrawControlText(title, tr, ColorTitleText, opt)
			if id == c.focus && c.mouseDown == MouseLeft {
				cnt.Rect = cnt.Rect.Add(c.mouseDelta)
			}
			body.Min.Y += tr.Dy()
		}

		// do `close` button
		if (^opt & OptNoClose) != 0 {
			id := c.idFromString("!close")
			r := image.Rect(tr.Max.X-tr.Dy(), tr.Min.Y, tr.Max.X, tr.Max.Y)
			tr.Max.X -= r.Dx()
			c.DrawIcon(IconClose, r, c.Style.Colors[ColorTitleText])
			c.updateControl(id, r, opt)
			if c.mousePressed == MouseLeft && id == c.focus {
				cnt.Open = false
			}
		}
	}

	c.pushContainerBody(cnt, body, opt)

	// do `resize` handle
	if (^opt & OptNoResize) != 0 {
		sz := c.Style.TitleHeight
		id := c.idFromString("!resize")
		r := image.Rect(rect.Max.X-sz, rect.Max.Y-sz, rect.Max.X, rect.Max.Y)
		c.updateControl(id, r, opt)
		if id == c.focus && c.mouseDown == MouseLeft {
			cnt.Rect.Max.X = cnt.Rect.Min.X + max(96, cnt.Rect.Dx()+c.mouseDelta.X)
			cnt.Rect.Max.Y = cnt.Rect.Min.Y + max(64, cnt.Rect.Dy()+c.mouseDelta.Y)
		}
	}

	// resize to content size
	if (opt & OptAutoSize) != 0 {
		r := c.layout().body
		cnt.Rect.Max.X = cnt.Rect.Min.X + cnt.ContentSize.X + (cnt.Rect.Dx() - r.Dx())
		cnt.Rect.Max.Y = cnt.Rect.Min.Y + cnt.ContentSize.Y + (cnt.Rect.Dy() - r.Dy())
	}

	// close if this is a popup window and elsewhere was clicked
	if (opt&OptPopup) != 0 && c.mousePressed != 0 && c.hoverRoot != cnt {
		cnt.Open = false
	}

	c.PushClipRect(cnt.Body)
	return ResActive
}

func (c *Context) endWindow() {
	c.PopClipRect()
	c.endRootContainer()
}

func (c *Context) window(title string, rect image.Rectangle, opt Opt, f func(res Res)) {
	res := c.beginWindow(title, rect, opt)
	if res == 0 {
		return
	}
	defer c.endWindow()
	f(res)
}

// OpenPopup opens the named popup at the current mouse position and
// brings it to the front.
func (c *Context) OpenPopup(name string) {
	cnt := c.GetContainer(name)
	// set as hover root so popup isn't closed in beginWindow
	c.hoverRoot = cnt
	c.nextHoverRoot = cnt
	// position at mouse cursor, open and bring-to-front
	cnt.Rect = image.Rect(c.mousePos.X, c.mousePos.Y, c.mousePos.X+1, c.mousePos.Y+1)
	cnt.Open = true
	c.BringToFront(cnt)
}

func (c *Context) beginPanel(name string, opt Opt) {
	id := c.PushID([]byte(name))
	cnt := c.getContainer(id, opt)
	cnt.Rect = c.layoutNext()
	if (^opt & OptNoFrame) != 0 {
		c.drawFrame(cnt.Rect, ColorPanelBG)
	}
	c.pushContainer(cnt)
	c.pushContainerBody(cnt, cnt.Rect, opt)
	c.PushClipRect(cnt.Body)
}

func (c *Context) endPanel() {
	c.PopClipRect()
	c.popContainer()
}

func (c *Context) panel(name string, opt Opt, f func()) {
	c.beginPanel(name, opt)
	defer c.endPanel()
	f()
}
