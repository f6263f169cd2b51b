// Package challenge models challenge records and their catalog: the creative
// brief, the raw rule payload in either its legacy or structured form, and
// editor presentation hints (output format sizes, font list). Catalog
// documents load from file, fs.FS, or URL sources, are schema-validated at
// the boundary, and have their display copy sanitized before anything
// reaches the UI. Persistence itself lives with an external collaborator;
// this package is only the read-side projection of its records.
package challenge
