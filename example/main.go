// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024 The Ebitengine Authors

package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/clement-antoine-xavier/microui"
)

const (
	screenWidth  = 960
	screenHeight = 540
)

type Game struct {
	ctx *microui.Context

	bg     [3]float64
	checks [3]bool
	num1   float64
	num2   float64

	logBuf       string
	logUpdated   bool
	logSubmitBuf string
}

func NewGame() *Game {
	return &Game{
		ctx: microui.NewContext(),
		bg:  [3]float64{90, 95, 100},
	}
}

func (g *Game) Update() error {
	g.ProcessFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{byte(g.bg[0]), byte(g.bg[1]), byte(g.bg[2]), 255})
	g.ctx.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("microui example")
	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
