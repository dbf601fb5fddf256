package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/deepsearch/bfs"
	"github.com/katalvlaran/deepsearch/ledger"
	"github.com/katalvlaran/deepsearch/treespace"
)

// ExampleWalker_Search looks for node 10 in a 15-node binary tree while
// holding at most 8 nodes in the queue.
func ExampleWalker_Search() {
	tr, _ := treespace.New(15, 2, 10)
	sess, _ := ledger.NewSession[int](16)
	w, _ := bfs.New[int](tr, sess, 8)

	node, verdict := w.Search()
	fmt.Println(verdict, node.State, node.Path)
	fmt.Println("visited:", sess.Budget.Visited())

	var residual []int
	for _, n := range w.Frontier() {
		residual = append(residual, n.State)
	}
	fmt.Println("queue:", residual)
	// Output:
	// FOUND 10 [0 1 1]
	// visited: 10
	// queue: [5 6 7 8 9]
}
