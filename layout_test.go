// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024 The Ebitengine Authors

package microui

import (
	"image"
	"testing"
)

// The default style places a window body at rect.Inset(padding) below
// the title bar: with padding 5 and title height 24 a window at
// (0,0)-(100,150) lays out widgets from (5,29).

func TestRowFillWidth(t *testing.T) {
	ctx := newTestContext()
	var got image.Rectangle
	runFrame(ctx, func() {
		ctx.Window("W", image.Rect(0, 0, 100, 150), func(res Res) {
			ctx.SetLayoutRow([]int{-1}, 0)
			ctx.Control(0, 0, func(r image.Rectangle) Res {
				got = r
				return 0
			})
		})
	})
	// fill width spans the whole body; height 0 falls back to the style
	// default 10 plus 2x padding
	want := image.Rect(5, 29, 95, 49)
	if got != want {
		t.Errorf("fill-width cell = %v, want %v", got, want)
	}
}

func TestRowColumnsRepeat(t *testing.T) {
	ctx := newTestContext()
	var cells []image.Rectangle
	capture := func(r image.Rectangle) Res {
		cells = append(cells, r)
		return 0
	}
	runFrame(ctx, func() {
		ctx.Window("W", image.Rect(0, 0, 200, 150), func(res Res) {
			ctx.SetLayoutRow([]int{30, 40}, 10)
			ctx.Control(0, 0, capture)
			ctx.Control(0, 0, capture)
			// the third widget wraps onto a fresh row with the same
			// column widths
			ctx.Control(0, 0, capture)
		})
	})
	want := []image.Rectangle{
		image.Rect(5, 29, 35, 39),
		image.Rect(39, 29, 79, 39),
		image.Rect(5, 43, 35, 53),
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("cell %d = %v, want %v", i, cells[i], want[i])
		}
	}
}

func TestLayoutSetNext(t *testing.T) {
	ctx := newTestContext()
	var absolute, relative image.Rectangle
	runFrame(ctx, func() {
		ctx.Window("W", image.Rect(0, 0, 200, 150), func(res Res) {
			ctx.LayoutSetNext(image.Rect(7, 8, 27, 18), false)
			ctx.Control(0, 0, func(r image.Rectangle) Res {
				absolute = r
				return 0
			})
			ctx.LayoutSetNext(image.Rect(0, 0, 20, 10), true)
			ctx.Control(0, 0, func(r image.Rectangle) Res {
				relative = r
				return 0
			})
		})
	})
	if want := image.Rect(7, 8, 27, 18); absolute != want {
		t.Errorf("absolute next rect = %v, want %v", absolute, want)
	}
	// a relative rect is offset by the body origin
	if want := image.Rect(5, 29, 25, 39); relative != want {
		t.Errorf("relative next rect = %v, want %v", relative, want)
	}
}

func TestLayoutColumnMerge(t *testing.T) {
	ctx := newTestContext()
	var inColumn, afterColumn image.Rectangle
	runFrame(ctx, func() {
		ctx.Window("W", image.Rect(0, 0, 300, 200), func(res Res) {
			ctx.SetLayoutRow([]int{100, -1}, 0)
			ctx.LayoutColumn(func() {
				ctx.SetLayoutRow([]int{-1}, 10)
				ctx.Control(0, 0, func(r image.Rectangle) Res { return 0 })
				ctx.Control(0, 0, func(r image.Rectangle) Res {
					inColumn = r
					return 0
				})
			})
			ctx.Control(0, 0, func(r image.Rectangle) Res {
				afterColumn = r
				return 0
			})
		})
	})
	// the column stacks its rows inside the 100-wide cell
	if want := image.Rect(5, 43, 105, 53); inColumn != want {
		t.Errorf("second column row = %v, want %v", inColumn, want)
	}
	// the widget after the column starts to its right on the same row
	if afterColumn.Min.X <= inColumn.Max.X {
		t.Errorf("widget after column starts at x=%d, want right of %d",
			afterColumn.Min.X, inColumn.Max.X)
	}
	if afterColumn.Min.Y != 29 {
		t.Errorf("widget after column starts at y=%d, want 29", afterColumn.Min.Y)
	}
}

func TestContentSizeMatchesLayoutExtent(t *testing.T) {
	ctx := newTestContext()
	declare := func() {
		ctx.Window("W", image.Rect(0, 0, 200, 150), func(res Res) {
			ctx.SetLayoutRow([]int{50}, 20)
			ctx.Control(0, 0, func(r image.Rectangle) Res { return 0 })
			ctx.Control(0, 0, func(r image.Rectangle) Res { return 0 })
		})
	}
	runFrame(ctx, declare)
	cnt := ctx.GetContainer("W")
	// two 50x20 rows: extent is one row of 50 wide, two rows of 20
	// spaced by 4
	if want := image.Pt(50, 44); cnt.ContentSize != want {
		t.Errorf("ContentSize = %v, want %v", cnt.ContentSize, want)
	}
}
