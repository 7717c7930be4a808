// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024 The Ebitengine Authors

package microui

import (
	"image"
	"image/color"
)

// Version identifies the core protocol implemented by this package.
const Version = "2.02"

const (
	realFmt   = "%.3g"
	sliderFmt = "%.2f"
)

// fixed capacities; exceeding any of them is a programmer error and panics
const (
	commandListSize    = 4096
	rootListSize       = 32
	containerStackSize = 32
	clipStackSize      = 32
	idStackSize        = 32
	layoutStackSize    = 16
	containerPoolSize  = 48
	treeNodePoolSize   = 48
	maxWidths          = 16
	maxTextInput       = 32
)

// Res is the result bitmask returned by widgets.
type Res int

const (
	ResActive Res = 1 << iota
	ResSubmit
	ResChange
)

// Opt is the widget option bitmask.
type Opt int

const (
	OptAlignCenter Opt = 1 << iota
	OptAlignRight
	OptNoInteract
	OptNoFrame
	OptNoResize
	OptNoScroll
	OptNoClose
	OptNoTitle
	OptHoldFocus
	OptAutoSize
	OptPopup
	OptClosed
	OptExpanded
)

// mouse button and key bitmasks for the input feed
const (
	MouseLeft   = 1 << iota // 1
	MouseRight              // 2
	MouseMiddle             // 4
)

const (
	KeyShift = 1 << iota // 1
	KeyCtrl
	KeyAlt
	KeyBackspace
	KeyReturn
)

// color roles indexing Style.Colors
const (
	ColorText = iota
	ColorBorder
	ColorWindowBG
	ColorTitleBG
	ColorTitleText
	ColorPanelBG
	ColorButton
	ColorButtonHover
	ColorButtonFocus
	ColorBase
	ColorBaseHover
	ColorBaseFocus
	ColorScrollBase
	ColorScrollThumb
	ColorMax = ColorScrollThumb
)

// icon identifiers carried by icon commands; their rendering is up to the
// client backend
const (
	IconClose = 1 + iota
	IconCheck
	IconCollapsed
	IconExpanded
)

const (
	ClipPart = 1 + iota
	ClipAll
)

// Font is an opaque font handle passed through to the measurement
// callbacks and text commands.
type Font any

// Style holds the metrics and palette used by all widgets. The context
// borrows its Style; the client may mutate or replace it between frames.
type Style struct {
	Font          Font
	Size          image.Point
	Padding       int
	Spacing       int
	Indent        int
	TitleHeight   int
	ScrollbarSize int
	ThumbSize     int
	Colors        [ColorMax + 1]color.RGBA
}

var defaultStyle = Style{
	Size:          image.Pt(68, 10),
	Padding:       5,
	Spacing:       4,
	Indent:        24,
	TitleHeight:   24,
	ScrollbarSize: 12,
	ThumbSize:     8,
	Colors: [...]color.RGBA{
		{230, 230, 230, 255}, // ColorText
		{25, 25, 25, 255},    // ColorBorder
		{50, 50, 50, 255},    // ColorWindowBG
		{25, 25, 25, 255},    // ColorTitleBG
		{240, 240, 240, 255}, // ColorTitleText
		{0, 0, 0, 0},         // ColorPanelBG
		{75, 75, 75, 255},    // ColorButton
		{95, 95, 95, 255},    // ColorButtonHover
		{115, 115, 115, 255}, // ColorButtonFocus
		{30, 30, 30, 255},    // ColorBase
		{35, 35, 35, 255},    // ColorBaseHover
		{40, 40, 40, 255},    // ColorBaseFocus
		{43, 43, 43, 255},    // ColorScrollBase
		{30, 30, 30, 255},    // ColorScrollThumb
	},
}

var unclippedRect = image.Rect(0, 0, 0x1000000, 0x1000000)
