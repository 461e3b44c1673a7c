package walks

import "iter"

// SkipVisited adapts any finite sequence into a Walker over its elements.
// It is equivalent to CollectWalker: the sequence is drained eagerly and
// production then yields its distinct elements in order.
func SkipVisited[T comparable](seq iter.Seq[T]) *Walker[T] {
	return CollectWalker(seq)
}
