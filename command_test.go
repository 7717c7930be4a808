// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024 The Ebitengine Authors

package microui

import (
	"image"
	"testing"
)

// walkRects replays the command stream and returns every rect command
// in traversal order.
func walkRects(ctx *Context) []rectCommand {
	var rects []rectCommand
	var cmd *command
	for ctx.nextCommand(&cmd) {
		if cmd.typ == commandRect {
			rects = append(rects, cmd.rect)
		}
	}
	return rects
}

func TestNextCommandVisitsEveryRecordOnce(t *testing.T) {
	ctx := newTestContext()
	runFrame(ctx, func() {
		ctx.Window("A", image.Rect(0, 0, 200, 200), func(res Res) {
			ctx.Label("a")
		})
		ctx.Window("B", image.Rect(50, 50, 250, 250), func(res Res) {
			ctx.Label("b")
		})
	})

	seen := map[int]int{}
	var cmd *command
	for ctx.nextCommand(&cmd) {
		seen[cmd.idx]++
	}
	nonJump := 0
	for _, cmd := range ctx.commandList {
		if cmd.typ == commandJump {
			continue
		}
		nonJump++
		if seen[cmd.idx] != 1 {
			t.Errorf("command %d visited %d times, want 1", cmd.idx, seen[cmd.idx])
		}
	}
	if len(seen) != nonJump {
		t.Errorf("visited %d commands, want %d", len(seen), nonJump)
	}
}

func TestClickBringsWindowToFront(t *testing.T) {
	ctx := newTestContext()
	declare := func() {
		ctx.Window("A", image.Rect(0, 0, 200, 200), func(res Res) {
			ctx.Label("a")
		})
		ctx.Window("B", image.Rect(50, 50, 250, 250), func(res Res) {
			ctx.Label("b")
		})
	}

	aRect := image.Rect(0, 0, 200, 200)
	bRect := image.Rect(50, 50, 250, 250)

	ctx.InputMouseMove(10, 10)
	runFrame(ctx, declare)

	// declaration order: A was opened first, so B draws on top
	rects := walkRects(ctx)
	if len(rects) == 0 {
		t.Fatalf("no rect commands emitted")
	}
	if rects[0].rect != aRect {
		t.Fatalf("first drawn rect = %v, want window A background %v", rects[0].rect, aRect)
	}

	a := ctx.GetContainer("A")
	b := ctx.GetContainer("B")
	if a.zIndex >= b.zIndex {
		t.Fatalf("zindex A (%d) not below B (%d)", a.zIndex, b.zIndex)
	}

	// click at (10,10), over A only: A comes to the front
	ctx.InputMouseDown(10, 10, MouseLeft)
	runFrame(ctx, declare)
	ctx.InputMouseUp(10, 10, MouseLeft)
	if a.zIndex <= b.zIndex {
		t.Errorf("zindex A (%d) not above B (%d) after click", a.zIndex, b.zIndex)
	}

	runFrame(ctx, declare)
	rects = walkRects(ctx)
	if len(rects) == 0 {
		t.Fatalf("no rect commands emitted after fronting")
	}
	if rects[0].rect != bRect {
		t.Errorf("first drawn rect = %v, want window B background %v", rects[0].rect, bRect)
	}
	// A's background must now appear after B's in the stream
	ai, bi := -1, -1
	for i, rc := range rects {
		if rc.rect == aRect {
			ai = i
		}
		if rc.rect == bRect {
			bi = i
		}
	}
	if ai < bi {
		t.Errorf("window A background drawn at %d, before B at %d", ai, bi)
	}
}

func TestSameDeclarationSameCommands(t *testing.T) {
	ctx := newTestContext()
	declare := func() {
		ctx.Window("W", image.Rect(0, 0, 150, 100), func(res Res) {
			ctx.SetLayoutRow([]int{-1}, 0)
			ctx.Label("stable")
		})
	}
	runFrame(ctx, declare)
	first := walkRects(ctx)
	runFrame(ctx, declare)
	second := walkRects(ctx)

	if len(first) != len(second) {
		t.Fatalf("rect command count changed between identical frames: %d vs %d",
			len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("rect %d = %v, want %v", i, second[i], first[i])
		}
	}
}

func TestCommandListClearedEachFrame(t *testing.T) {
	ctx := newTestContext()
	runFrame(ctx, func() {
		ctx.Window("W", image.Rect(0, 0, 100, 100), func(res Res) {
			ctx.Label("x")
		})
	})
	n := len(ctx.commandList)
	runFrame(ctx, func() {
		ctx.Window("W", image.Rect(0, 0, 100, 100), func(res Res) {
			ctx.Label("x")
		})
	})
	if len(ctx.commandList) != n {
		t.Errorf("command list grew across frames: %d then %d", n, len(ctx.commandList))
	}
}
