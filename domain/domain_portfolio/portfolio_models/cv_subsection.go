package portfolio_models

import (
	"github.com/ddc-studio/portfolio-api/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CVItem is one entry of an artist's CV. *Exhibition, *Residency and *Talk
// implement it.
type CVItem interface {
	ItemID() primitive.ObjectID
	SetItemID(id primitive.ObjectID)
	ItemTitle() string
}

// CVSubsection names one of the ordered CV sequences embedded in an Artist.
type CVSubsection string

const (
	SubsectionExhibitions CVSubsection = "exhibitions"
	SubsectionResidencies CVSubsection = "residencies"
	SubsectionTalks       CVSubsection = "talks"
)

type cvSubsectionSpec struct {
	field        string
	uniqueTitles bool
	newItem      func() CVItem
	items        func(a *Artist) []CVItem
}

var cvSubsections = map[CVSubsection]cvSubsectionSpec{
	SubsectionExhibitions: {
		field:        "exhibitions",
		uniqueTitles: true,
		newItem:      func() CVItem { return &Exhibition{} },
		items: func(a *Artist) []CVItem {
			out := make([]CVItem, len(a.Exhibitions))
			for i := range a.Exhibitions {
				out[i] = &a.Exhibitions[i]
			}
			return out
		},
	},
	SubsectionResidencies: {
		field:        "residencies",
		uniqueTitles: false,
		newItem:      func() CVItem { return &Residency{} },
		items: func(a *Artist) []CVItem {
			out := make([]CVItem, len(a.Residencies))
			for i := range a.Residencies {
				out[i] = &a.Residencies[i]
			}
			return out
		},
	},
	SubsectionTalks: {
		field:        "talks",
		uniqueTitles: true,
		newItem:      func() CVItem { return &Talk{} },
		items: func(a *Artist) []CVItem {
			out := make([]CVItem, len(a.Talks))
			for i := range a.Talks {
				out[i] = &a.Talks[i]
			}
			return out
		},
	},
}

// ValidateSubsection reports whether name is exactly one of the recognised
// subsection names. Matching is case-sensitive.
func ValidateSubsection(name string) bool {
	_, ok := cvSubsections[CVSubsection(name)]
	return ok
}

// ParseSubsection converts a path segment into a CVSubsection.
func ParseSubsection(name string) (CVSubsection, error) {
	if !ValidateSubsection(name) {
		return "", domain.Validation("Please review submitted information. Only an exhibition, residency, or talk can be part of an artist's CV.")
	}
	return CVSubsection(name), nil
}

// Field is the bson field holding the subsection inside an artist document.
func (s CVSubsection) Field() string {
	return cvSubsections[s].field
}

// UniqueTitles reports whether item titles must not repeat.
func (s CVSubsection) UniqueTitles() bool {
	return cvSubsections[s].uniqueTitles
}

// NewItem returns an empty item of the subsection's concrete type, ready to
// be decoded into.
func (s CVSubsection) NewItem() CVItem {
	return cvSubsections[s].newItem()
}

// Items returns the artist's items of this subsection, in stored order.
func (s CVSubsection) Items(a *Artist) []CVItem {
	if a == nil {
		return nil
	}
	return cvSubsections[s].items(a)
}

// FindItem locates an item by id within the subsection.
func (s CVSubsection) FindItem(a *Artist, id primitive.ObjectID) (CVItem, int) {
	for i, item := range s.Items(a) {
		if item.ItemID() == id {
			return item, i
		}
	}
	return nil, -1
}

// Accepts reports whether item has the concrete type of this subsection.
func (s CVSubsection) Accepts(item CVItem) bool {
	switch item.(type) {
	case *Exhibition:
		return s == SubsectionExhibitions
	case *Residency:
		return s == SubsectionResidencies
	case *Talk:
		return s == SubsectionTalks
	}
	return false
}
