// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024 The Ebitengine Authors

package microui

import "testing"

func TestIDKnownHash(t *testing.T) {
	ctx := newTestContext()
	// 32-bit FNV-1a of "hello" with the standard offset basis
	if got := ctx.idFromString("hello"); got != 0x4f9f2cab {
		t.Errorf("idFromString(hello) = %#x, want 0x4f9f2cab", got)
	}
}

func TestIDDeterministic(t *testing.T) {
	ctx := newTestContext()
	a := ctx.idFromString("button")
	b := ctx.idFromString("button")
	if a != b {
		t.Errorf("same bytes hashed to %#x and %#x", a, b)
	}
	if a == 0 {
		t.Errorf("id is the reserved zero value")
	}
}

func TestIDStackSeedsHash(t *testing.T) {
	ctx := newTestContext()
	outer := ctx.idFromString("label")

	ctx.PushID([]byte("scope"))
	inner := ctx.idFromString("label")
	ctx.PopID()

	if outer == inner {
		t.Errorf("identical labels under different parents hashed equal (%#x)", outer)
	}
	if got := ctx.idFromString("label"); got != outer {
		t.Errorf("after push/pop idFromString = %#x, want %#x", got, outer)
	}
}

func TestPushPopIDRestoresStack(t *testing.T) {
	ctx := newTestContext()
	ctx.PushID([]byte("a"))
	depth := len(ctx.idStack)
	ctx.PushID([]byte("b"))
	ctx.PopID()
	if len(ctx.idStack) != depth {
		t.Errorf("id stack depth = %d, want %d", len(ctx.idStack), depth)
	}
	ctx.PopID()
	if len(ctx.idStack) != 0 {
		t.Errorf("id stack not empty after final pop")
	}
}

func TestLastIDRecorded(t *testing.T) {
	ctx := newTestContext()
	id := ctx.idFromString("x")
	if ctx.LastID != id {
		t.Errorf("LastID = %#x, want %#x", ctx.LastID, id)
	}
}
