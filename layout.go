// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024 The Ebitengine Authors

package microui

import "image"

const (
	layoutNextRelative = 1 + iota
	layoutNextAbsolute
)

// layout is one frame of the layout stack: a row/column cursor over a
// body rectangle, pre-offset by the owning container's scroll.
type layout struct {
	body      image.Rectangle
	next      image.Rectangle
	position  image.Point
	size      image.Point
	max       image.Point
	widths    [maxWidths]int
	items     int
	itemIndex int
	nextRow   int
	nextType  int
	indent    int
}

func (c *Context) layout() *layout {
	expect(len(c.layoutStack) > 0, "layout stack is empty")
	return &c.layoutStack[len(c.layoutStack)-1]
}

func (c *Context) pushLayout(body image.Rectangle, scroll image.Point) {
	expect(len(c.layoutStack) < layoutStackSize, "layout stack overflow")
	c.layoutStack = append(c.layoutStack, layout{
		body: body.Sub(scroll),
		max:  image.Pt(-0x1000000, -0x1000000),
	})
	c.layoutRow(1, []int{0}, 0)
}

func (c *Context) popLayout() {
	expect(len(c.layoutStack) > 0, "layout stack underflow")
	c.layoutStack = c.layoutStack[:len(c.layoutStack)-1]
}

func (c *Context) layoutRow(items int, widths []int, height int) {
	layout := c.layout()
	if widths != nil {
		expect(items <= maxWidths, "too many row columns (%d)", items)
		copy(layout.widths[:], widths[:items])
	}
	layout.items = items
	layout.position = image.Pt(layout.indent, layout.nextRow)
	layout.size.Y = height
	layout.itemIndex = 0
}

// SetLayoutRow begins a new row with one column per width. A width of 0
// uses the style default, a positive width is taken as-is and a
// negative width fills towards the right edge with that inset. The row
// definition repeats when more widgets are placed than it has columns.
func (c *Context) SetLayoutRow(widths []int, height int) {
	c.layoutRow(len(widths), widths, height)
}

// LayoutWidth sets the default width for items in rows with no column
// widths.
func (c *Context) LayoutWidth(width int) {
	c.layout().size.X = width
}

// LayoutHeight sets the default item height.
func (c *Context) LayoutHeight(height int) {
	c.layout().size.Y = height
}

// LayoutSetNext overrides the rectangle of the very next widget. A
// relative rect is placed in layout coordinates and advances the
// cursor; an absolute rect is used verbatim.
func (c *Context) LayoutSetNext(r image.Rectangle, relative bool) {
	layout := c.layout()
	layout.next = r
	if relative {
		layout.nextType = layoutNextRelative
	} else {
		layout.nextType = layoutNextAbsolute
	}
}

func (c *Context) layoutNext() image.Rectangle {
	layout := c.layout()
	style := c.Style

	var x, y, w, h int
	if layout.nextType != 0 {
		// handle rect set by LayoutSetNext
		typ := layout.nextType
		layout.nextType = 0
		r := layout.next
		x, y, w, h = r.Min.X, r.Min.Y, r.Dx(), r.Dy()
		if typ == layoutNextAbsolute {
			c.LastRect = r
			return r
		}
	} else {
		// handle next row
		if layout.itemIndex == layout.items {
			c.layoutRow(layout.items, nil, layout.size.Y)
		}

		// position
		x, y = layout.position.X, layout.position.Y

		// size
		if layout.items > 0 {
			w = layout.widths[layout.itemIndex]
		} else {
			w = layout.size.X
		}
		h = layout.size.Y
		if w == 0 {
			w = style.Size.X + style.Padding*2
		}
		if h == 0 {
			h = style.Size.Y + style.Padding*2
		}
		if w < 0 {
			w += layout.body.Dx() - x + 1
		}
		if h < 0 {
			h += layout.body.Dy() - y + 1
		}

		layout.itemIndex++
	}

	// update position
	layout.position.X += w + style.Spacing
	layout.nextRow = max(layout.nextRow, y+h+style.Spacing)

	// apply body offset
	x += layout.body.Min.X
	y += layout.body.Min.Y

	// update max position
	layout.max.X = max(layout.max.X, x+w)
	layout.max.Y = max(layout.max.Y, y+h)

	c.LastRect = image.Rect(x, y, x+w, y+h)
	return c.LastRect
}

// LayoutBeginColumn pushes a child layout over the next widget's
// rectangle; widgets until LayoutEndColumn stack inside it.
func (c *Context) LayoutBeginColumn() {
	c.pushLayout(c.layoutNext(), image.Point{})
}

// LayoutEndColumn merges the finished column back into the parent:
// the parent's cursor moves past the column and its row height and
// content extent absorb the column's.
func (c *Context) LayoutEndColumn() {
	b := c.layout()
	c.popLayout()

	// inherit position/nextRow/max from child layout if they are greater
	a := c.layout()
	a.position.X = max(a.position.X, b.position.X+b.body.Min.X-a.body.Min.X)
	a.nextRow = max(a.nextRow, b.nextRow+b.body.Min.Y-a.body.Min.Y)
	a.max.X = max(a.max.X, b.max.X)
	a.max.Y = max(a.max.Y, b.max.Y)
}

// LayoutColumn runs f inside a column spanning the next widget's cell.
func (c *Context) LayoutColumn(f func()) {
	c.LayoutBeginColumn()
	defer c.LayoutEndColumn()
	f()
}
