package domain

const (
	CollectionUser = "system_auth_users"
)

const (
	CollectionRawReview = "review_entity_raw_reviews"
)
