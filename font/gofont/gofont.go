// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont exports the Go fonts as text shapers.
//
// See https://blog.golang.org/go-fonts for a description of the
// fonts, and the golang.org/x/image/font/gofont packages for the
// font data.
package gofont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"minitext.org/font/opentype"
)

var (
	regOnce  sync.Once
	reg      *opentype.Face
	monoOnce sync.Once
	mono     *opentype.Face
)

// Regular returns the Go Regular face.
func Regular() *opentype.Face {
	regOnce.Do(func() {
		reg = mustParse(goregular.TTF)
	})
	return reg
}

// Mono returns the Go Mono face.
func Mono() *opentype.Face {
	monoOnce.Do(func() {
		mono = mustParse(gomono.TTF)
	})
	return mono
}

func mustParse(ttf []byte) *opentype.Face {
	face, err := opentype.Parse(ttf)
	if err != nil {
		panic(fmt.Errorf("failed to parse font: %v", err))
	}
	return face
}
