// Package response turns domain objects into the uniform response envelope.
//
//	{
//	  "meta":    {"resource_uri": "/api/teams", "total_objects": 1},
//	  "objects": [{"id": "…", "name": "Eng", "created_at": "2025-01-02T03:04:05Z"}]
//	}
//
// Format accepts a slice of objects. Each object may be a map, a Record or a
// struct; it is flattened into a map of strings where timestamps are rendered
// in RFC 3339 form. Fields named by the caller, the adapter state marker
// "_state" and any "_*_cache" field are dropped. Cleaning only removes
// fields, so formatting an already formatted object changes nothing.
//
// Render writes an envelope as JSON and honours the "pretty" query flag.
package response
