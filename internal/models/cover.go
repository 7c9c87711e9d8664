package models

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// CoverKind tags which shape a CoverImage holds
type CoverKind int

const (
	CoverNone CoverKind = iota
	CoverURL
	CoverAsset
)

// AssetRef points into an external asset store, e.g. "image-<id>-800x450-jpg"
type AssetRef struct {
	Ref  string `json:"_ref" yaml:"_ref"`
	Type string `json:"_type,omitempty" yaml:"_type,omitempty"`
}

// CoverImage is an absolute URL, an asset reference, or nothing
type CoverImage struct {
	Kind  CoverKind
	URL   string
	Asset AssetRef
}

// CoverFromURL builds a URL cover; an empty url means no cover
func CoverFromURL(url string) CoverImage {
	if url == "" {
		return CoverImage{}
	}
	return CoverImage{Kind: CoverURL, URL: url}
}

// CoverFromAsset builds an asset-reference cover
func CoverFromAsset(ref string) CoverImage {
	return CoverImage{Kind: CoverAsset, Asset: AssetRef{Ref: ref, Type: "reference"}}
}

// IsZero reports whether there is no cover at all
func (c CoverImage) IsZero() bool {
	return c.Kind == CoverNone
}

// assetEnvelope is the wire shape of an asset cover
type assetEnvelope struct {
	Type  string    `json:"_type,omitempty" yaml:"_type,omitempty"`
	Asset *AssetRef `json:"asset" yaml:"asset"`
}

// UnmarshalJSON accepts a URL string or an {"asset": {"_ref": ...}} object
func (c *CoverImage) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	*c = CoverImage{}
	if len(trimmed) == 0 {
		return nil
	}

	switch trimmed[0] {
	case '"':
		var url string
		if err := json.Unmarshal(trimmed, &url); err == nil {
			*c = CoverFromURL(url)
		}
	case '{':
		var env assetEnvelope
		if err := json.Unmarshal(trimmed, &env); err == nil && env.Asset != nil {
			*c = CoverImage{Kind: CoverAsset, Asset: *env.Asset}
		}
	}
	return nil
}

// MarshalJSON writes null, a URL string, or an asset object
func (c CoverImage) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case CoverURL:
		return json.Marshal(c.URL)
	case CoverAsset:
		asset := c.Asset
		return json.Marshal(assetEnvelope{Type: "image", Asset: &asset})
	default:
		return []byte("null"), nil
	}
}

// UnmarshalYAML accepts a URL scalar or an asset mapping
func (c *CoverImage) UnmarshalYAML(value *yaml.Node) error {
	*c = CoverImage{}

	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag != "!!null" {
			*c = CoverFromURL(value.Value)
		}
	case yaml.MappingNode:
		var env assetEnvelope
		if err := value.Decode(&env); err == nil && env.Asset != nil {
			*c = CoverImage{Kind: CoverAsset, Asset: *env.Asset}
		}
	}
	return nil
}

// MarshalYAML writes nil, a URL scalar, or an asset mapping
func (c CoverImage) MarshalYAML() (interface{}, error) {
	switch c.Kind {
	case CoverURL:
		return c.URL, nil
	case CoverAsset:
		asset := c.Asset
		return assetEnvelope{Type: "image", Asset: &asset}, nil
	default:
		return nil, nil
	}
}
