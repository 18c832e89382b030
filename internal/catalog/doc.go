// Package catalog holds the static datasets the site search runs over:
// conditions, symptom mappings, body-part and activity cross-references,
// treatment modalities, canned intents and the practice's contact details.
//
// Datasets are YAML files embedded in the binary. Default parses them once
// per process; LoadDir reads an override directory with the same file names.
// A loaded Catalog is never mutated and is safe for concurrent readers.
package catalog
