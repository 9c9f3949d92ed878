package entities

// Record is an entity whose integer id is assigned by the store.
type Record[T any] interface {
	GetID() int64
	// WithID returns a copy of the record carrying id.
	WithID(id int64) T
}
