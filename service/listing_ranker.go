package services

import (
	"sort"

	"directory-server/models/business"
)

// RankBusinesses returns a copy of businesses sorted by rating, highest first.
// Ties keep their input order. A positive limit truncates the result. The
// input slice is never modified.
func RankBusinesses(businesses []business.BusinessListing, limit int) []business.BusinessListing {
	ranked := make([]business.BusinessListing, len(businesses))
	copy(ranked, businesses)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rating > ranked[j].Rating
	})

	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}
