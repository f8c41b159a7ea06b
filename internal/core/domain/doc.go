// Package domain has the types shared by every layer: content items and
// their categories, listing state and its derived view, rich documents
// and the render instructions produced from them. It imports only the
// standard library.
package domain
