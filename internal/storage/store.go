package storage

// Record is anything stored under a string-like key.
type Record[K ~string] interface {
	ID() K
}
