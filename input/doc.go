// Package input provides the concrete cursors that rules from the parse
// package consume: Slice over arbitrary element sequences and Text over
// UTF-8 text with line/column tracking. A cursor holds the caller's data
// without copying it; cloning copies only the position.
package input
