package domain

import "strings"

// Keys derives the cluster key layout for collections under a prefix.
// The layout is {prefix}collection:{name} for metadata, {prefix}{name}:idx for
// the FT index and {prefix}{name}: for documents.
type Keys struct {
	Prefix string
}

// Meta returns the metadata hash key of a collection.
func (k Keys) Meta(name string) string { return k.Prefix + "collection:" + name }

// Index returns the FT index name of a collection.
func (k Keys) Index(name string) string { return k.Prefix + name + ":idx" }

// DocPrefix returns the key prefix of a collection's documents.
func (k Keys) DocPrefix(name string) string { return k.Prefix + name + ":" }

// DocID strips the document prefix from a key.
func (k Keys) DocID(collection, key string) string {
	return strings.TrimPrefix(key, k.DocPrefix(collection))
}

// DocKey returns the hash key of a single document.
func (k Keys) DocKey(collection, id string) string { return k.DocPrefix(collection) + id }
