package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrUserNotActivated    = errors.New("user account is not activated")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenRevoked            = errors.New("token has been revoked")

	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrNotArticleAuthor = errors.New("user is not the author of the article")

	// ErrNoBookmarkToRemove is returned when an unbookmark request targets a
	// pair that was never saved. Reported as 401, the surface this API has
	// always had.
	ErrNoBookmarkToRemove = errors.New("no bookmark existed for this article")

	ErrSubscriptionTargetNotFound = errors.New("no article or author matches the subscription target")

	// ErrNotSubscribed is returned when an unsubscribe request comes from a
	// user who is not in the target's subscriber set.
	ErrNotSubscribed = errors.New("you are not a subscriber")
)
