package leveldata

import (
	"embed"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"path"
	"strings"

	"github.com/automoto/inkbrawl/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

//go:embed levels/*.tmx
var Levels embed.FS

// DefaultLevelPath is the bundled level inside Levels.
const DefaultLevelPath = "levels/arena.tmx"

// Object group names read from TMX files.
const (
	groupPlatforms = "Platforms"
	groupGround    = "Ground"
)

var ErrNoGround = errors.New("level has no ground object")

// LoadLevel parses a TMX file. Objects in the Platforms group become
// platforms in file order, which is also their landing order. The top edge of
// the first object in the Ground group is the ground line. It takes an fs.FS
// so callers can pass the embedded Levels or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string, leftMargin, rightMargin float64) (Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return Level{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := Level{
		Name: strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath)),
	}
	groundFound := false

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupPlatforms:
			for _, o := range og.Objects {
				c, err := platformColor(o.Properties)
				if err != nil {
					return Level{}, fmt.Errorf("platform %d in %s: %w", o.ID, tmxPath, err)
				}
				lvl.Platforms = append(lvl.Platforms, Platform{
					Rect:  gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Color: c,
				})
			}
		case groupGround:
			if len(og.Objects) > 0 && !groundFound {
				lvl.GroundY = og.Objects[0].Y
				groundFound = true
			}
		}
	}

	if !groundFound {
		return Level{}, fmt.Errorf("%s: %w", tmxPath, ErrNoGround)
	}
	lvl.Boundaries = DeriveBoundaries(lvl.Platforms, leftMargin, rightMargin)
	return lvl, nil
}

// platformColor reads an object's "color" property. Tiled writes colors as
// #aarrggbb; #rrggbb is accepted too. An unset color yields the default
// platform color.
func platformColor(props tiled.Properties) (color.RGBA, error) {
	s := props.GetString("color")
	if s == "" {
		return platformBrown, nil
	}
	hc, err := tiled.ParseHexColor(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return color.RGBAModel.Convert(&hc).(color.RGBA), nil
}
