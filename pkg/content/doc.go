// Package content models the data-driven tree the generator consumes: typed
// nodes, ordered sibling sequences, and the narrow node-shape convention used
// to detect components embedded inside otherwise-generic values.
package content
