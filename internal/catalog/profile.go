// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// # Profile Status

// Status is the life status of a profiled person.
type Status string

const (
	StatusAlive    Status = "Alive"
	StatusDeceased Status = "Deceased"
)

// Statuses lists every valid [Status] in display order.
var Statuses = []Status{StatusAlive, StatusDeceased}

// Valid reports whether s is one of the two known statuses.
func (s Status) Valid() bool {
	return s == StatusAlive || s == StatusDeceased
}

// # Profile

// Profile is a single catalog record describing a public figure.
//
// Optional text fields (Aka, SubCategory) are empty when absent. Tags, Media,
// Relations and Sections are never nil once the profile has passed through [New].
type Profile struct {
	ID          int        `json:"id"                     yaml:"id"`
	Name        string     `json:"name"                   yaml:"name"`
	Slug        string     `json:"slug"                   yaml:"slug,omitempty"`
	IsVerified  bool       `json:"is_verified"            yaml:"is_verified,omitempty"`
	Aka         string     `json:"aka,omitempty"          yaml:"aka,omitempty"`
	Gender      string     `json:"gender"                 yaml:"gender"`
	DOB         string     `json:"dob"                    yaml:"dob"`
	POB         string     `json:"pob"                    yaml:"pob"`
	Nationality string     `json:"nationality"            yaml:"nationality"`
	Status      Status     `json:"status"                 yaml:"status"`
	PrimaryRole string     `json:"primary_role"           yaml:"primary_role"`
	SubCategory string     `json:"sub_category,omitempty" yaml:"sub_category,omitempty"`
	Tags        []string   `json:"tags"                   yaml:"tags"`
	Summary     string     `json:"summary"                yaml:"summary"`
	Sections    Sections   `json:"sections"               yaml:"sections"`
	Media       []Media    `json:"media"                  yaml:"media"`
	Relations   []Relation `json:"relations"              yaml:"relations"`
}

// Media is an attached asset. Type is currently always "photo" but stays open.
type Media struct {
	Type    string `json:"type"    yaml:"type"`
	URL     string `json:"url"     yaml:"url"`
	Caption string `json:"caption" yaml:"caption"`
}

// Relation is a display-only edge to another named entity.
//
// Name is free text. It is not a catalog identifier and is neither unique nor
// guaranteed to resolve to a [Profile].
type Relation struct {
	Name         string `json:"name"          yaml:"name"`
	RelationType string `json:"relation_type" yaml:"relation_type"`
}

// normalize replaces nil collections with empty ones.
func (p *Profile) normalize() {
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Media == nil {
		p.Media = []Media{}
	}
	if p.Relations == nil {
		p.Relations = []Relation{}
	}
	if p.Sections == nil {
		p.Sections = Sections{}
	}
}

// # Biography Sections

// Well-known section keys, in their canonical display order.
const (
	SectionEarlyLife       = "early_life"
	SectionEducation       = "education"
	SectionCareer          = "career"
	SectionAchievements    = "achievements"
	SectionControversies   = "controversies"
	SectionPublicInfluence = "public_influence"
)

// Section is one named biography block.
type Section struct {
	Key  string `json:"key"  yaml:"key"`
	Body string `json:"body" yaml:"body"`
}

// Sections is an ordered set of biography blocks. Authoring order is display order.
//
// It encodes to JSON and YAML as a mapping whose key order is preserved.
type Sections []Section

// Get returns the body stored under key, or "" when absent.
func (s Sections) Get(key string) string {
	for _, section := range s {
		if section.Key == key {
			return section.Body
		}
	}
	return ""
}

// Visible returns the sections whose body is non-blank.
func (s Sections) Visible() []Section {
	visible := make([]Section, 0, len(s))
	for _, section := range s {
		if strings.TrimSpace(section.Body) != "" {
			visible = append(visible, section)
		}
	}
	return visible
}

// MarshalJSON writes the sections as an object, keeping key order.
func (s Sections) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, section := range s {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(section.Key)
		if err != nil {
			return nil, err
		}
		body, err := json.Marshal(section.Body)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(body)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object into sections, keeping key order.
func (s *Sections) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))

	token, err := decoder.Token()
	if err != nil {
		return err
	}
	if token == nil {
		*s = nil
		return nil
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("sections: expected object, got %v", token)
	}

	sections := Sections{}
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return err
		}

		var body string
		if err := decoder.Decode(&body); err != nil {
			return fmt.Errorf("sections.%v: %w", keyToken, err)
		}
		sections = append(sections, Section{Key: keyToken.(string), Body: body})
	}

	*s = sections
	return nil
}

// MarshalYAML writes the sections as a mapping node, keeping key order.
func (s Sections) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, section := range s {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: section.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: section.Body},
		)
	}
	return node, nil
}

// UnmarshalYAML reads a mapping node into sections, keeping key order.
func (s *Sections) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("sections: line %d: expected mapping", node.Line)
	}

	sections := make(Sections, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var body string
		if err := node.Content[i+1].Decode(&body); err != nil {
			return fmt.Errorf("sections.%s: %w", node.Content[i].Value, err)
		}
		sections = append(sections, Section{Key: node.Content[i].Value, Body: body})
	}

	*s = sections
	return nil
}
