// Package memory holds map-backed repositories with the same observable
// behaviour as the MongoDB ones. Services and routes are tested against them.
package memory

import (
	"sort"
	"sync"

	"estatehub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// collection keeps documents in insertion order, like a natural-order scan.
type collection struct {
	mu   sync.RWMutex
	docs []map[string]interface{}
}

func (c *collection) insert(doc map[string]interface{}) interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := clone(doc)
	if _, ok := stored[models.IDField]; !ok {
		stored[models.IDField] = primitive.NewObjectID()
	}
	c.docs = append(c.docs, stored)
	return stored[models.IDField]
}

func (c *collection) filter(match func(map[string]interface{}) bool) []map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]map[string]interface{}, 0)
	for _, d := range c.docs {
		if match(d) {
			out = append(out, clone(d))
		}
	}
	return out
}

func (c *collection) first(match func(map[string]interface{}) bool) (map[string]interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, d := range c.docs {
		if match(d) {
			return clone(d), true
		}
	}
	return nil, false
}

func (c *collection) update(id primitive.ObjectID, fields map[string]interface{}) (int64, int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, d := range c.docs {
		if d[models.IDField] != id {
			continue
		}
		var modified int64
		for k, v := range fields {
			if old, ok := d[k]; !ok || !equal(old, v) {
				modified = 1
			}
			d[k] = v
		}
		return 1, modified
	}
	return 0, 0
}

func (c *collection) delete(id primitive.ObjectID) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, d := range c.docs {
		if d[models.IDField] == id {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return 1
		}
	}
	return 0
}

func (c *collection) count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}

func byID(id primitive.ObjectID) func(map[string]interface{}) bool {
	return func(d map[string]interface{}) bool { return d[models.IDField] == id }
}

func byString(value string, path ...string) func(map[string]interface{}) bool {
	return func(d map[string]interface{}) bool {
		v, ok := models.Lookup(d, path...)
		s, isString := v.(string)
		return ok && isString && s == value
	}
}

func all(map[string]interface{}) bool { return true }

// sortNewestFirst orders by the created_at string, descending. Documents
// without one sort last, as a missing field does in a descending Mongo sort.
func sortNewestFirst(docs []map[string]interface{}) {
	sort.SliceStable(docs, func(i, j int) bool {
		return models.LookupString(docs[i], "created_at") > models.LookupString(docs[j], "created_at")
	})
}

func clone(doc map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

func equal(a, b interface{}) (eq bool) {
	defer func() {
		// uncomparable values (maps, slices) count as changed
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}
