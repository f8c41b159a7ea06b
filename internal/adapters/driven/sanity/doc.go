// Package sanity reads site content from the Sanity HTTP query API.
//
// Store implements driven.ContentStore by running one GROQ query per
// content kind and decoding the documents, including their portable-text
// bodies, into domain types. ImageResolver builds CDN URLs from image
// asset references without a network round trip.
package sanity
