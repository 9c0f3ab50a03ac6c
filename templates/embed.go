// Package templates ships the framework template trees embedded in the
// binary. Each top-level directory (react, vue, svelte) is a complete
// project skeleton; files with the .tpl marker extension carry placeholder
// tokens and are rewritten during materialization.
package templates

import "embed"

//go:embed all:react all:vue all:svelte
var FS embed.FS
