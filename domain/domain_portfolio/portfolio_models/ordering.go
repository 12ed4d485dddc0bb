package portfolio_models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderByIDs arranges items to follow ids. Items whose id is not listed are
// dropped, ids without an item are skipped.
func OrderByIDs[T any](ids []primitive.ObjectID, items []*T, idOf func(*T) primitive.ObjectID) []*T {
	byID := make(map[primitive.ObjectID]*T, len(items))
	for _, item := range items {
		byID[idOf(item)] = item
	}

	ordered := make([]*T, 0, len(ids))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			ordered = append(ordered, item)
		}
	}
	return ordered
}
