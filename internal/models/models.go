package models

// JSONValue is a generic type to represent any JSON value.
// This can be a string, json.Number, boolean, nil, JSONObject or JSONArray.
type JSONValue = any

// JSONObject represents a JSON object, which is a map of strings to JSONValues.
// It is an alias so values produced by encoding/json need no conversion.
type JSONObject = map[string]JSONValue

// JSONArray represents a JSON array, which is a slice of JSONValues.
type JSONArray = []JSONValue

// Stats summarizes a decoded document tree.
type Stats struct {
	Nodes      map[string]int `json:"nodes"` // count per node discriminator
	Marks      map[string]int `json:"marks"` // count per mark discriminator
	TotalNodes int            `json:"totalNodes"`
	MaxDepth   int            `json:"maxDepth"`   // depth of the deepest node, the root being 0
	TextLength int            `json:"textLength"` // runes across all text nodes
	Warnings   []string       `json:"warnings,omitempty"`
}

// ReportRow is one labelled line of an inspect report.
type ReportRow struct {
	Kind  string
	Label string
	Count int
	Mark  bool
}
