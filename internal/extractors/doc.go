// Package extractors converts report files into plain text for the
// parser. Each sub-package implements driven.TextExtractor for one
// file format; the Registry dispatches by MIME type.
//
// Extractors are registered with the Registry at startup.
package extractors
