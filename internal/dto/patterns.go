package dto

// PatternFile represents a pattern document as written on disk.
// It uses "mapstructure" tags so unknown keys can be rejected after YAML decoding.
type PatternFile struct {
	Patterns []PatternEntry `json:"patterns" mapstructure:"patterns"`
	Default  string         `json:"default" mapstructure:"default"`
}

// PatternEntry is a single pattern with its canned response.
type PatternEntry struct {
	Pattern  string `json:"pattern" mapstructure:"pattern"`
	Response string `json:"response" mapstructure:"response"`
}
