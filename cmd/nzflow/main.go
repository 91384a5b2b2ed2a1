// Command nzflow constructs nowhere-zero 5-flows on bridgeless cubic
// graphs from the command line: one-shot solving of a named or random
// graph, and bulk surveys over batches of random graphs.
package main

var version = "dev"

func main() {
	execute(version)
}
