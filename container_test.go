// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024 The Ebitengine Authors

package microui

import (
	"image"
	"testing"
)

func TestPopupLifecycle(t *testing.T) {
	ctx := newTestContext()
	var active bool
	declare := func() {
		active = false
		ctx.Popup("P", func(res Res) {
			active = true
			ctx.Label("popup body")
		})
	}

	// not yet opened: the popup container does not even exist
	ctx.InputMouseMove(100, 100)
	runFrame(ctx, func() {
		declare()
		ctx.OpenPopup("P")
	})
	if active {
		t.Fatalf("popup active before OpenPopup took effect")
	}

	runFrame(ctx, declare)
	if !active {
		t.Fatalf("popup not active after OpenPopup")
	}
	cnt := ctx.GetContainer("P")
	if cnt.Rect.Min != image.Pt(100, 100) {
		t.Errorf("popup at %v, want opened at the mouse position (100,100)", cnt.Rect.Min)
	}

	// move away, then click: the popup closes because the hover root is
	// elsewhere
	ctx.InputMouseMove(500, 500)
	runFrame(ctx, declare)
	ctx.InputMouseDown(500, 500, MouseLeft)
	runFrame(ctx, declare)
	ctx.InputMouseUp(500, 500, MouseLeft)
	if cnt.Open {
		t.Errorf("popup still open after outside click")
	}
	runFrame(ctx, declare)
	if active {
		t.Errorf("popup still active after outside click")
	}
}

func TestWindowClosedOptionStartsInactive(t *testing.T) {
	ctx := newTestContext()
	var active bool
	runFrame(ctx, func() {
		ctx.WindowEx("W", image.Rect(0, 0, 100, 100), OptClosed, func(res Res) {
			active = true
		})
	})
	if active {
		t.Errorf("window with OptClosed ran its body with no retained state")
	}
}

func TestCloseButton(t *testing.T) {
	ctx := newTestContext()
	var active bool
	declare := func() {
		active = false
		ctx.Window("W", image.Rect(0, 0, 300, 100), func(res Res) {
			active = true
			ctx.Label("body")
		})
	}

	// the close button occupies (276,0)-(300,24)
	ctx.InputMouseMove(280, 10)
	runFrame(ctx, declare)
	runFrame(ctx, declare)
	ctx.InputMouseDown(280, 10, MouseLeft)
	runFrame(ctx, declare)
	ctx.InputMouseUp(280, 10, MouseLeft)

	cnt := ctx.GetContainer("W")
	if cnt.Open {
		t.Fatalf("window still open after close click")
	}
	runFrame(ctx, declare)
	if active {
		t.Errorf("closed window still ran its body")
	}
}

func TestTitleBarDragMovesWindow(t *testing.T) {
	ctx := newTestContext()
	declare := func() {
		ctx.Window("W", image.Rect(20, 20, 220, 120), func(res Res) {
			ctx.Label("body")
		})
	}

	// grab the title bar at (50,30) and drag 15 pixels right, 5 down
	ctx.InputMouseMove(50, 30)
	runFrame(ctx, declare)
	runFrame(ctx, declare)
	ctx.InputMouseDown(50, 30, MouseLeft)
	runFrame(ctx, declare)
	ctx.InputMouseMove(65, 35)
	runFrame(ctx, declare)
	ctx.InputMouseUp(65, 35, MouseLeft)

	cnt := ctx.GetContainer("W")
	if want := image.Rect(35, 25, 235, 125); cnt.Rect != want {
		t.Errorf("window rect = %v after drag, want %v", cnt.Rect, want)
	}
}

func TestResizeHandleClampsToMinimum(t *testing.T) {
	ctx := newTestContext()
	declare := func() {
		ctx.Window("W", image.Rect(0, 0, 200, 150), func(res Res) {
			ctx.Label("body")
		})
	}

	// resize handle is the bottom-right titleHeight square
	ctx.InputMouseMove(195, 145)
	runFrame(ctx, declare)
	runFrame(ctx, declare)
	ctx.InputMouseDown(195, 145, MouseLeft)
	runFrame(ctx, declare)
	// drag far up-left, well past the minimum size
	ctx.InputMouseMove(0, 0)
	runFrame(ctx, declare)
	ctx.InputMouseUp(0, 0, MouseLeft)

	cnt := ctx.GetContainer("W")
	if cnt.Rect.Dx() != 96 || cnt.Rect.Dy() != 64 {
		t.Errorf("window size = %dx%d after shrink, want clamped to 96x64",
			cnt.Rect.Dx(), cnt.Rect.Dy())
	}
}

func TestWheelScrollsHoveredContainer(t *testing.T) {
	ctx := newTestContext()
	declare := func() {
		ctx.Window("W", image.Rect(0, 0, 100, 100), func(res Res) {
			ctx.SetLayoutRow([]int{-1}, 0)
			for i := 0; i < 10; i++ {
				ctx.Label("line")
			}
		})
	}

	// first frame measures the overflowing content
	ctx.InputMouseMove(50, 50)
	runFrame(ctx, declare)
	runFrame(ctx, declare)

	ctx.InputScroll(0, 30)
	runFrame(ctx, declare)
	cnt := ctx.GetContainer("W")
	if cnt.Scroll.Y != 30 {
		t.Errorf("scroll = %v, want 30 after wheel", cnt.Scroll.Y)
	}
}

func TestScrollbarReservesBodySpace(t *testing.T) {
	ctx := newTestContext()
	declare := func() {
		ctx.Window("W", image.Rect(0, 0, 100, 100), func(res Res) {
			ctx.SetLayoutRow([]int{-1}, 0)
			for i := 0; i < 10; i++ {
				ctx.Label("line")
			}
		})
	}
	runFrame(ctx, declare)
	cnt := ctx.GetContainer("W")
	fullWidth := cnt.Body.Dx()
	runFrame(ctx, declare)
	if got := cnt.Body.Dx(); got != fullWidth-ctx.Style.ScrollbarSize {
		t.Errorf("body width = %d with overflow, want %d",
			got, fullWidth-ctx.Style.ScrollbarSize)
	}
}

func TestAutoSizeTracksContent(t *testing.T) {
	ctx := newTestContext()
	declare := func() {
		ctx.WindowEx("W", image.Rect(0, 0, 500, 500),
			OptAutoSize|OptNoTitle|OptNoResize|OptNoScroll, func(res Res) {
				ctx.SetLayoutRow([]int{60}, 30)
				ctx.Control(0, 0, func(r image.Rectangle) Res { return 0 })
			})
	}
	runFrame(ctx, declare)
	// sizing trails content by one frame
	runFrame(ctx, declare)
	cnt := ctx.GetContainer("W")
	// content 60x30 plus the padding margin on both sides
	want := image.Pt(60+2*ctx.Style.Padding, 30+2*ctx.Style.Padding)
	if got := image.Pt(cnt.Rect.Dx(), cnt.Rect.Dy()); got != want {
		t.Errorf("autosized window = %v, want %v", got, want)
	}
}

func TestPanelIsNotARoot(t *testing.T) {
	ctx := newTestContext()
	runFrame(ctx, func() {
		ctx.Window("W", image.Rect(0, 0, 200, 200), func(res Res) {
			ctx.SetLayoutRow([]int{-1}, -1)
			ctx.Panel("inner", func() {
				ctx.Label("inside")
			})
		})
	})
	if len(ctx.rootList) != 1 {
		t.Errorf("root list has %d entries, want 1 (panels are not roots)", len(ctx.rootList))
	}
	var id ID
	runFrame(ctx, func() {
		ctx.Window("W", image.Rect(0, 0, 200, 200), func(res Res) {
			ctx.SetLayoutRow([]int{-1}, -1)
			id = ctx.PushID([]byte("inner"))
			ctx.PopID()
		})
	})
	idx := ctx.poolGet(ctx.containerPool[:], id)
	if idx < 0 {
		t.Fatalf("panel container not retained")
	}
	if ctx.containers[idx].headIdx >= 0 {
		t.Errorf("panel has a head jump; only root containers should")
	}
}

func TestContainerStateSurvivesFrames(t *testing.T) {
	ctx := newTestContext()
	declare := func() {
		ctx.Window("W", image.Rect(10, 20, 210, 170), func(res Res) {
			ctx.Label("body")
		})
	}
	runFrame(ctx, declare)
	cnt := ctx.GetContainer("W")
	cnt.Scroll = image.Pt(0, 7)
	runFrame(ctx, declare)
	if ctx.GetContainer("W") != cnt {
		t.Errorf("container identity changed across frames")
	}
	if cnt.Rect.Min != image.Pt(10, 20) {
		t.Errorf("window rect reset across frames: %v", cnt.Rect)
	}
}
