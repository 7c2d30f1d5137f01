// Package migrations embeds the account schema for goose.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
