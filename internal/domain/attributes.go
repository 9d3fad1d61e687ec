package domain

import (
	"encoding/json"
	"strconv"
)

// Attributes holds the schema-specific fields of an entry. Values are
// whatever a JSON decoder produces, so every accessor is total: a missing
// key or a value of the wrong shape reports false instead of failing.
type Attributes map[string]any

// Location is a geographic point.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// File points at the stored file behind an entry.
type File struct {
	Path     string `json:"path"`
	MimeType string `json:"mimetype"`
}

// Previews lists rendered preview images of a file entry.
type Previews struct {
	Thumbnail   string `json:"thumbnail,omitempty"`
	Thumbnail2x string `json:"thumbnail2x,omitempty"`
	Preview     string `json:"preview,omitempty"`
	Preview2x   string `json:"preview2x,omitempty"`
	Small       string `json:"small,omitempty"`
	Large       string `json:"large,omitempty"`
}

// Map returns the nested object stored under key.
func (a Attributes) Map(key string) (Attributes, bool) {
	switch v := a[key].(type) {
	case map[string]any:
		return Attributes(v), true
	case Attributes:
		return v, true
	}
	return nil, false
}

// Float returns the number stored under key.
func (a Attributes) Float(key string) (float64, bool) {
	return toFloat(a[key])
}

// String returns the value under key as a string. Numbers are formatted
// without exponent or trailing zeros so that numeric ids compare equal to
// their string form.
func (a Attributes) String(key string) (string, bool) {
	switch v := a[key].(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case nil:
		return "", false
	}
	if f, ok := toFloat(a[key]); ok {
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return "", false
}

// Location returns the entry's geolocation. Both coordinates must be
// present and numeric; zero is a valid coordinate.
func (a Attributes) Location() (Location, bool) {
	loc, ok := a.Map("location")
	if !ok {
		return Location{}, false
	}
	lat, ok := loc.Float("latitude")
	if !ok {
		return Location{}, false
	}
	lon, ok := loc.Float("longitude")
	if !ok {
		return Location{}, false
	}
	return Location{Latitude: lat, Longitude: lon}, true
}

// File returns the file reference of the entry, if it has a path.
func (a Attributes) File() (File, bool) {
	f, ok := a.Map("file")
	if !ok {
		return File{}, false
	}
	path, _ := f.String("path")
	if path == "" {
		return File{}, false
	}
	mime, _ := f.String("mimetype")
	return File{Path: path, MimeType: mime}, true
}

// Previews returns the preview images of the entry, if any is set.
func (a Attributes) Previews() (Previews, bool) {
	p, ok := a.Map("previews")
	if !ok {
		return Previews{}, false
	}
	get := func(k string) string {
		s, _ := p.String(k)
		return s
	}
	out := Previews{
		Thumbnail:   get("thumbnail"),
		Thumbnail2x: get("thumbnail2x"),
		Preview:     get("preview"),
		Preview2x:   get("preview2x"),
		Small:       get("small"),
		Large:       get("large"),
	}
	return out, out != Previews{}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
