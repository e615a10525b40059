package service

import "context"

// Tile is one encoded basemap tile with the headers it should be served with.
type Tile struct {
	Data    []byte
	Headers map[string]string
}

// TileService serves basemap tiles and their TileJSON description.
type TileService interface {
	Enabled() bool
	Tile(ctx context.Context, tileset string, z, x, y int, ext string) (*Tile, error)
	TileJSON(ctx context.Context, tileset string) (*Tile, error)
}
