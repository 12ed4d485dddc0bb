package domain

type SortOrder struct {
	Sort  string `bson:"sort" json:"sort"`   // field to sort by
	Order string `bson:"order" json:"order"` // asc or desc
}

// Direction returns the mongo sort direction for the order.
func (s SortOrder) Direction() int {
	if s.Order == "desc" {
		return -1
	}
	return 1
}
