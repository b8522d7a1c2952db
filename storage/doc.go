// Package storage resolves document background references against host
// image storage.
//
// A Store maps an ImageRef ({name, subfolder, type}) to a file under its
// root, sniffs the content type and decodes it. PNG, JPEG, GIF, WebP, BMP
// and TIFF are supported. A Cache keeps the decoded background per
// document, fetches it again only when the document's reference changes
// and evicts the least recently used documents past its soft limit.
package storage
