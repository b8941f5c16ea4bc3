// Package feature holds the CHTL feature catalog and the extractor that
// counts catalog matches in a source file.
//
// # Catalog
//
// A Catalog is an immutable, ordered list of FeatureRule values grouped by
// Category. Rules are independent: each one is a compiled pattern whose
// non-overlapping matches are counted, and no rule reads another rule's
// result. Adding a syntax feature means adding a rule.
//
//	cat := feature.Default()
//	for _, r := range cat.ByCategory(feature.CategoryScripting) {
//		fmt.Println(r.ID, r.Label)
//	}
//
// # Patterns
//
// Rule sources are regular expressions compiled with Compile, which widens
// \w to Unicode letters and digits so identifiers written in any script are
// recognised.
//
// # Extraction
//
//	ext := feature.NewExtractor(feature.Default())
//	matches := ext.Extract(text) // catalog order, Count >= 1 only
package feature
