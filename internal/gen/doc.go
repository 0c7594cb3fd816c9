// Package gen synthesizes the per-class codec pairs out of resolved
// strategies and registers them behind the native serialization protocol.
//
// Key capabilities:
//   - Paired read/write codecs, symmetric by construction
//   - All-or-nothing generation per class
//   - Concurrent generation over independent workers
package gen
