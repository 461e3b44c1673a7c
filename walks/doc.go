/*
Package walks provides [Walker], a worklist iterator that never produces the
same value twice.

A Walker couples a double-ended pending queue with a permanent record of the
values it has produced. Values may be pushed at either end at any time, also
between calls to [Walker.Next], and duplicates are discarded lazily when they
reach the front of the queue. This makes it a building block for graph and
tree traversals where the set of reachable nodes is discovered while walking:

	w := walks.NewWalker(root)
	for node, ok := w.Next(); ok; node, ok = w.Next() {
		visit(node)
		w.PushAll(node.Neighbors()...) // already-produced neighbors are skipped
	}

Pushing at the back gives breadth-first order, pushing at the front gives
depth-first order. [Walker.All] exposes the same production as an iter.Seq
for use with range-over-func and the slices/iter helpers, and [SkipVisited]
adapts any finite sequence into a Walker.

Walker is not safe for concurrent use; it is meant to be owned by a single
traversal loop.
*/
package walks
