// Package stdlib bundles the minimal Zed standard library shipped with
// the compiler: a handful of `.zed` sources under std/ providing raw
// syscall wrappers and decimal I/O. Per spec.md §1, the standard
// library's own content is explicitly out of the core's scope — the
// compiler only ever consumes it as ordinary source units — so this
// package exists purely to give the CLI's `install-std` subcommand
// something to copy; nothing in the core imports it.
package stdlib

import "embed"

//go:embed std
var FS embed.FS
