// Package services holds the listing engine and the rich-content
// renderer, plus the content, mirror, copy and settings services that
// feed them. Adapters reach these only through the driving ports.
package services
