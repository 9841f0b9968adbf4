package domain

// Relation labels produced by the relationship service.
const (
	RelationParent  = "padre"
	RelationChild   = "hijo"
	RelationSibling = "hermano"
)

// ParentRelation pairs a person with its children, in the order the
// relationship service returned them. It is built on read and never stored.
type ParentRelation struct {
	Parent   *Person
	Children []*Person
}

// RelativeRelation describes how Person1 relates to Person2.
type RelativeRelation struct {
	Person1  *Person
	Person2  *Person
	Relation string
}
