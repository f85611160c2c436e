package lending

import "github.com/libraryapp/lending/book"

// BookStat is a derived per-category count. It is never persisted; it only
// lives in statistics responses.
type BookStat struct {
	Category book.Category `json:"type"`
	Count    int           `json:"count"`
}

// statistics folds the catalog into per-category counts, preserving the
// order in which categories first appear.
func statistics(books []book.Book) []BookStat {
	stats := []BookStat{}
	index := make(map[book.Category]int, len(books))

	for _, b := range books {
		if i, ok := index[b.Category]; ok {
			stats[i].Count++
			continue
		}
		index[b.Category] = len(stats)
		stats = append(stats, BookStat{Category: b.Category, Count: 1})
	}

	return stats
}
