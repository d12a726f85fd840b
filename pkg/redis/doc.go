// Package redis establishes go-redis client connections from env-tagged
// configuration, retrying the initial ping so a Redis instance that is still
// starting does not fail process startup.
package redis
