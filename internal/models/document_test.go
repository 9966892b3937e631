package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLookup_NestedShapes(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]interface{}
	}{
		{"plain map", map[string]interface{}{"posted_by": map[string]interface{}{"email": "a@x.com"}}},
		{"bson.M", map[string]interface{}{"posted_by": bson.M{"email": "a@x.com"}}},
		{"bson.D", map[string]interface{}{"posted_by": bson.D{{Key: "email", Value: "a@x.com"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "a@x.com", LookupString(tt.doc, "posted_by", "email"))
		})
	}
}

func TestLookup_Missing(t *testing.T) {
	doc := map[string]interface{}{"posted_by": "not-a-document", "price": 10}

	_, ok := Lookup(doc, "posted_by", "email")
	assert.False(t, ok)
	assert.Equal(t, "", LookupString(doc, "owner", "email"))
	assert.Equal(t, "", LookupString(doc, "price"))
}

func TestPropertyAccessors(t *testing.T) {
	id := primitive.NewObjectID()
	p := Property{
		IDField:          id,
		"property_name":  "Villa",
		"property_image": "villa.jpg",
		"posted_by":      bson.M{"email": "a@x.com"},
	}

	assert.Equal(t, id.Hex(), p.ID())
	assert.Equal(t, "Villa", p.Name())
	assert.Equal(t, "villa.jpg", p.Image())
	assert.Equal(t, "a@x.com", p.OwnerEmail())

	assert.Equal(t, "", Property{}.Name())
}

func TestStripID(t *testing.T) {
	doc := Document{IDField: "x", "name": "y"}

	out := StripID(doc)

	assert.NotContains(t, out, IDField)
	assert.Equal(t, "y", out["name"])
}

func TestHexID(t *testing.T) {
	id := primitive.NewObjectID()

	assert.Equal(t, id.Hex(), HexID(id))
	assert.Equal(t, "legacy", HexID("legacy"))
	assert.Equal(t, "", HexID(42))
}
