// The busarb command runs bus-arbitration experiments with a weighted
// round-robin arbiter and synthetic traffic clients.
package main

func main() {
	Execute()
}
