// Package store holds the document model shared by the persistence adapters.
//
// Every backend package (memory, postgres, redisstore, mongostore,
// searchstore, s3store) creates a *Document from a validated payload and
// returns it to the handler, which formats it through Fields. Fields carries
// adapter bookkeeping ("_state", "_resource_cache") that the response
// formatter strips before anything reaches a client.
package store
