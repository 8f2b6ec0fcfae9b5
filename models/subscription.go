package models

// Subscription target kinds. A subscription record is keyed by exactly one
// of the two: an author's user id or an article id. The kind column keeps
// the key unambiguous even when an author id and an article id collide.
const (
	TargetAuthor  = "author"
	TargetArticle = "article"
)

// Subscription holds the set of users subscribed to an author or to a
// single article. Membership is a set: adding an already-present
// subscriber is a no-op and removal requires prior membership.
type Subscription struct {
	ID int64 `json:"-"`

	// TargetKind is TargetAuthor or TargetArticle.
	TargetKind string `json:"target_kind"`

	// TargetID is the author's user id or the article id, depending on
	// TargetKind.
	TargetID int64 `json:"target_id"`

	// Subscribers is the set of subscribing user ids.
	Subscribers []int64 `json:"subscribers"`
}

// TableName returns the name of the database table
// associated with the Subscription model.
func (s Subscription) TableName() string {
	return "subscriptions"
}

// HasSubscriber reports whether userID is a member of the subscriber set.
func (s Subscription) HasSubscriber(userID int64) bool {
	for _, id := range s.Subscribers {
		if id == userID {
			return true
		}
	}
	return false
}
