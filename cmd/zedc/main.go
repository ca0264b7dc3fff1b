// Command zedc is the project scaffolding and build CLI around the Zed
// compiler core: `new`, `build`, `run`, `clean`, `install-std`. Per
// spec.md §1 this whole command is explicitly out of the core's scope —
// it only needs to hand the core one file path, receive one assembly
// string, and choose the entry-point flag. Grounded on chai's
// `cmd/execute.go` olive-based CLI tree.
package main

func main() {
	Execute()
}
