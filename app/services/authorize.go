package services

// CanModify reports whether the acting identity may mutate a resource owned
// by the given identity. The owner argument is chosen explicitly at each
// call site: the post's owner for post edits and deletes, the comment's
// author for comment deletes.
func CanModify(actorID, ownerID string) bool {
	return actorID != "" && actorID == ownerID
}
