// Package connectors provides the sources report files arrive from.
// Each connector implements driven.Inbox for one kind of source; the
// inbox connector watches a local directory.
package connectors
