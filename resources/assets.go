package resources

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/png"
	"sync"

	"fyne.io/fyne/v2"
)

const spriteDir = "sprites/"

// Sprite names bundled with the application.
const (
	SpriteBase  = "base.png"
	SpriteEyes  = "eyes.png"
	SpriteHover = "hover.png"
	SpriteLogo  = "logo.png"
)

//go:embed sprites/*.png
var spriteFS embed.FS

var resourceCache sync.Map
var imageCache sync.Map

// Sprite returns a Fyne resource for the given sprite file.
func Sprite(fileName string) (fyne.Resource, error) {
	path := spriteDir + fileName
	if cached, ok := resourceCache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := spriteFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(fileName, data)
	resourceCache.Store(path, resource)
	return resource, nil
}

// MustSprite returns a Fyne resource or panics on error.
func MustSprite(fileName string) fyne.Resource {
	resource, err := Sprite(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

// Image decodes the given sprite file.
func Image(fileName string) (image.Image, error) {
	path := spriteDir + fileName
	if cached, ok := imageCache.Load(path); ok {
		return cached.(image.Image), nil
	}

	resource, err := Sprite(fileName)
	if err != nil {
		return nil, err
	}
	decoded, err := png.Decode(bytes.NewReader(resource.Content()))
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", path, err)
	}
	imageCache.Store(path, decoded)
	return decoded, nil
}

// MustImage decodes a sprite or panics on error.
func MustImage(fileName string) image.Image {
	decoded, err := Image(fileName)
	if err != nil {
		panic(err)
	}
	return decoded
}
