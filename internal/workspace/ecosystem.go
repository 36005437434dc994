package workspace

import (
	"encoding/json"
	"strings"
)

// Ecosystem is a single project type tag inferred from a marker file.
type Ecosystem uint8

const (
	Node Ecosystem = 1 << iota
	JavaMaven
	Python
)

// Order matters: it is the order tags appear in the serialized type.
var ecosystemTags = []struct {
	eco Ecosystem
	tag string
}{
	{Node, "node"},
	{JavaMaven, "java-maven"},
	{Python, "python"},
}

func (e Ecosystem) String() string {
	for _, t := range ecosystemTags {
		if t.eco == e {
			return t.tag
		}
	}
	return "unknown"
}

// Ecosystems is the set of tags matched for one directory. The zero value
// is the "unknown" type.
type Ecosystems uint8

// Add returns the set with e included. Tags are never removed.
func (s Ecosystems) Add(e Ecosystem) Ecosystems {
	return s | Ecosystems(e)
}

func (s Ecosystems) Has(e Ecosystem) bool {
	return s&Ecosystems(e) != 0
}

// Tags lists the members in serialization order.
func (s Ecosystems) Tags() []string {
	var tags []string
	for _, t := range ecosystemTags {
		if s.Has(t.eco) {
			tags = append(tags, t.tag)
		}
	}
	return tags
}

// String renders the set the way the API reports it: "unknown" when empty,
// otherwise the tags joined with "|" (e.g. "node|python").
func (s Ecosystems) String() string {
	tags := s.Tags()
	if len(tags) == 0 {
		return "unknown"
	}
	return strings.Join(tags, "|")
}

func (s Ecosystems) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
