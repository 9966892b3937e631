package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is a schema-less stored record. Handlers pass it through as-is and
// only narrow the few fields they actually read.
type Document = bson.M

const IDField = "_id"

// StripID removes any client-supplied identifier so it cannot overwrite _id.
func StripID(doc Document) Document {
	delete(doc, IDField)
	return doc
}

// Lookup walks a dotted path ("posted_by.email") through nested documents.
func Lookup(doc map[string]interface{}, path ...string) (interface{}, bool) {
	var cur interface{} = doc
	for _, key := range path {
		next, ok := field(cur, key)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// LookupString is Lookup narrowed to a string. Non-string values yield "".
func LookupString(doc map[string]interface{}, path ...string) string {
	v, ok := Lookup(doc, path...)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func field(v interface{}, key string) (interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		val, ok := m[key]
		return val, ok
	case primitive.M:
		val, ok := m[key]
		return val, ok
	case primitive.D:
		for _, e := range m {
			if e.Key == key {
				return e.Value, true
			}
		}
	}
	return nil, false
}

// HexID renders a stored identifier as the 24-hex string used for
// cross-collection references.
func HexID(v interface{}) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	}
	return ""
}
