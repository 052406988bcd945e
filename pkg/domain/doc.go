// Package domain contains the entities shared by the bot, its lookup core and
// the storage layer: phone numbers, lookup results, membership decisions and
// usage records. The types carry no infrastructure concerns so every package
// can depend on them.
package domain
