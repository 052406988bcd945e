package numberbot

import "embed"

// Migrations holds the goose migrations of every storage driver, one
// directory per driver under migrations/.
//
//go:embed migrations
var Migrations embed.FS
