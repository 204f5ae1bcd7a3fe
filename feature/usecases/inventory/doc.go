// Package inventory reads and writes the use cases installed on local disk.
//
// The content root holds one directory per product category. A use case is a
// pair of files sharing a slug: <slug>.md for the document and <slug>.yaml for
// its metadata, whose "version" key is what synchronization compares against.
package inventory
