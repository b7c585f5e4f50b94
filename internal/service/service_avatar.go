// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"image"
	"image/color"
	"image/draw"
	"math/rand/v2"
)

// Avatar size bounds in pixels.
const (
	DefaultAvatarSize = 100
	MinAvatarSize     = 16
	MaxAvatarSize     = 512
)

const (
	minAvatarRects = 5
	maxAvatarRects = 10
)

// ClampAvatarSize limits size to [MinAvatarSize, MaxAvatarSize].
func ClampAvatarSize(size int) int {
	return min(max(size, MinAvatarSize), MaxAvatarSize)
}

type avatarService struct {
	// intN returns a uniform value in [0, n).
	intN func(n int) int
}

// NewAvatarService returns an AvatarService drawing from the global
// math/rand/v2 source, which is safe for concurrent use.
func NewAvatarService() AvatarService {
	return &avatarService{intN: rand.IntN}
}

// Generate draws a size x size image: a random background color covered by
// five to ten randomly colored rectangles. Out of range sizes are clamped.
func (a *avatarService) Generate(size int) image.Image {
	size = ClampAvatarSize(size)

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: a.color()}, image.Point{}, draw.Src)

	rects := minAvatarRects + a.intN(maxAvatarRects-minAvatarRects+1)
	for range rects {
		x0, x1 := a.intN(size), a.intN(size)
		y0, y1 := a.intN(size), a.intN(size)
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		if y0 > y1 {
			y0, y1 = y1, y0
		}

		// corners are inclusive
		r := image.Rect(x0, y0, x1+1, y1+1)
		draw.Draw(img, r, &image.Uniform{C: a.color()}, image.Point{}, draw.Src)
	}

	return img
}

func (a *avatarService) color() color.RGBA {
	return color.RGBA{
		R: uint8(a.intN(256)),
		G: uint8(a.intN(256)),
		B: uint8(a.intN(256)),
		A: 0xff,
	}
}
