// Package cmd implements the command-line interface of dWeet. It provides a
// hierarchical command structure for running the server and querying it as
// a client.
//
// The package is organized into several subpackages:
//
//   - serve: Starts and configures the dWeet server
//   - user: Adds users and runs the user queries (get, list, search, joined-before)
//   - weet: Posts weets and runs the weet and topic queries (trending, mentions, ...)
//   - follow: Records follow relationships and runs the follower queries
//   - info: Prints the index statistics of a shard
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// Every flag can also be set by an environment variable DWEET_<FLAG>, .env and
// .env.local files are loaded on start. See dweet -help for a list of all commands.
package cmd
