package entity

// Likes is the like-aggregate of a post.
type Likes struct {
	Count   int      `json:"count"`
	Authors []string `json:"authors"`
}

// IndexOf returns the position of the first occurrence of userID in Authors, or -1.
func (l Likes) IndexOf(userID string) int {
	for i, author := range l.Authors {
		if author == userID {
			return i
		}
	}
	return -1
}

// Toggle likes the post for userID when it is not among the authors and
// unlikes it otherwise. The decision looks at the first occurrence only,
// while an unlike drops every occurrence and still decrements Count by one,
// so stored duplicates make Count drift from len(Authors).
func (l Likes) Toggle(userID string) (Likes, bool) {
	if l.IndexOf(userID) == -1 {
		authors := make([]string, 0, len(l.Authors)+1)
		authors = append(authors, l.Authors...)
		authors = append(authors, userID)
		return Likes{Count: l.Count + 1, Authors: authors}, true
	}

	authors := make([]string, 0, len(l.Authors))
	for _, author := range l.Authors {
		if author != userID {
			authors = append(authors, author)
		}
	}
	return Likes{Count: l.Count - 1, Authors: authors}, false
}
