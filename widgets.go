// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024 The Ebitengine Authors

package microui

import "image"

func (c *Context) Button(label string) Res {
	return c.button(label, 0, OptAlignCenter)
}

func (c *Context) ButtonEx(label string, icon int, opt Opt) Res {
	return c.button(label, icon, opt)
}

func (c *Context) TextBox(buf *string) Res {
	return c.textBox(buf, 0)
}

func (c *Context) TextBoxEx(buf *string, opt Opt) Res {
	return c.textBox(buf, opt)
}

func (c *Context) Slider(value *float64, lo, hi float64) Res {
	return c.slider(value, lo, hi, 0, sliderFmt, OptAlignCenter)
}

func (c *Context) SliderEx(value *float64, lo, hi, step float64, format string, opt Opt) Res {
	return c.slider(value, lo, hi, step, format, opt)
}

func (c *Context) Number(value *float64, step float64) Res {
	return c.number(value, step, sliderFmt, OptAlignCenter)
}

func (c *Context) NumberEx(value *float64, step float64, format string, opt Opt) Res {
	return c.number(value, step, format, opt)
}

func (c *Context) Header(label string) Res {
	return c.header(label, false, 0)
}

func (c *Context) HeaderEx(label string, opt Opt) Res {
	return c.header(label, false, opt)
}

func (c *Context) TreeNode(label string, f func(res Res)) {
	c.treeNode(label, 0, f)
}

func (c *Context) TreeNodeEx(label string, opt Opt, f func(res Res)) {
	c.treeNode(label, opt, f)
}

func (c *Context) Window(title string, rect image.Rectangle, f func(res Res)) {
	c.window(title, rect, 0, f)
}

func (c *Context) WindowEx(title string, rect image.Rectangle, opt Opt, f func(res Res)) {
	c.window(title, rect, opt, f)
}

// Popup declares the named popup window; f only runs on frames where
// the popup is open. Open it with OpenPopup.
func (c *Context) Popup(name string, f func(res Res)) {
	opt := OptPopup | OptAutoSize | OptNoResize | OptNoScroll | OptNoTitle | OptClosed
	c.window(name, image.Rectangle{}, opt, f)
}

func (c *Context) Panel(name string, f func()) {
	c.panel(name, 0, f)
}

func (c *Context) PanelEx(name string, opt Opt, f func()) {
	c.panel(name, opt, f)
}
