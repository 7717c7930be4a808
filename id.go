// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024 The Ebitengine Authors

package microui

import "unsafe"

// ID identifies a widget across frames. It is a 32-bit FNV-1a hash of
// caller-provided bytes seeded by the top of the id stack, so identical
// labels under different parents still hash differently. The zero ID
// means "no widget".
type ID uint32

// 32-bit FNV-1a
const (
	hashInitial = 2166136261
	hashPrime   = 16777619
)

func hashBytes(h ID, data []byte) ID {
	for _, b := range data {
		h = (h ^ ID(b)) * hashPrime
	}
	return h
}

func (c *Context) idFromBytes(data []byte) ID {
	h := ID(hashInitial)
	if len(c.idStack) > 0 {
		h = c.idStack[len(c.idStack)-1]
	}
	h = hashBytes(h, data)
	c.LastID = h
	return h
}

func (c *Context) idFromString(str string) ID {
	return c.idFromBytes([]byte(str))
}

// ptrToBytes seeds an id with the address of a caller-owned state slot,
// for widgets that have no stable label.
func ptrToBytes(p unsafe.Pointer) []byte {
	v := uintptr(p)
	b := make([]byte, unsafe.Sizeof(v))
	for i := range b {
		b[i] = byte(v >> (8 * i))
	}
	return b
}

func (c *Context) idFromPtr(p unsafe.Pointer) ID {
	return c.idFromBytes(ptrToBytes(p))
}

// PushID pushes the id computed from data onto the id stack, making it
// the seed for ids computed inside the enclosing scope.
func (c *Context) PushID(data []byte) ID {
	id := c.idFromBytes(data)
	c.pushID(id)
	return id
}

func (c *Context) pushID(id ID) {
	expect(len(c.idStack) < idStackSize, "id stack overflow")
	c.idStack = append(c.idStack, id)
}

// PopID pops the top id stack entry pushed by PushID.
func (c *Context) PopID() {
	expect(len(c.idStack) > 0, "id stack underflow")
	c.idStack = c.idStack[:len(c.idStack)-1]
}
