package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Categories is the set of tags a suggestion can carry. The list is site
// configuration, curated alongside the frontend; the server only serves it
// to the SPA and never rejects tags outside it.
type Categories struct {
	Tags []string `yaml:"tags"`
}

// defaultCategories mirrors the tag set shipped with the frontend, used when
// no categories file is present.
var defaultCategories = []string{
	"Federated",
	"Decentralized",
	"Open Source",
	"Centralized",
	"Privacy-Focused",
	"Creator-Focused",
	"Live Streaming",
	"Short Video",
	"Authentic",
	"Discovery",
	"Local Community",
	"Community",
	"Anti-Censorship",
}

// LoadCategories loads the category list from the configured YAML file.
// A missing file is not an error; the built-in defaults are returned.
func LoadCategories(path string) (*Categories, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Categories{Tags: defaultCategories}, nil
		}
		return nil, err
	}

	var cats Categories
	if err := yaml.Unmarshal(data, &cats); err != nil {
		return nil, err
	}

	if len(cats.Tags) == 0 {
		cats.Tags = defaultCategories
	}

	return &cats, nil
}

// Contains reports whether tag is one of the configured categories.
func (c *Categories) Contains(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
