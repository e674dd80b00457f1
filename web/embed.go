// Package web ships the server-rendered templates and static assets
// with the binary, so the router and the test suites load them without
// caring about the working directory.
package web

import "embed"

//go:embed template/*.html static
var Assets embed.FS
