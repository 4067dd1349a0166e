package core

// Entity is a unique object identifier, zero is never issued
type Entity uint64
