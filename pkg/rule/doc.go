// Package rule declares what a resource accepts and what it returns.
//
// A Rule names every field a payload may carry (Fields), which of them are
// mandatory (FieldSpec.Required), which output fields are derived from the
// request context instead of the payload (AutoPopulate) and which fields are
// never rendered back to the client (Excluded).
//
// Rules are plain values. They are built once, either in code or from a YAML
// rules file, and are never mutated afterwards, so the same Rule may be shared
// by any number of concurrent requests.
//
// # Usage
//
//	teams := rule.Rule{
//		Fields: map[string]rule.FieldSpec{
//			"name":        {Required: true, Type: rule.TypeString},
//			"description": {Required: true, Type: rule.TypeString},
//			"team_type":   {Required: true, Type: rule.TypeString, AllowedValues: []any{"tech", "business"}},
//			"members":     {Type: rule.TypeList},
//		},
//		AutoPopulate: map[string]string{"created_by": "user"},
//		Excluded:     []string{"members"},
//	}
//
// Type and AllowedValues are metadata. The default validation pipeline only
// checks presence and absence of fields; see payload.EnforceConstraints for
// the opt-in step that checks them.
//
// # Rules file
//
//	resources:
//	  teams:
//	    fields:
//	      name: {type: string, required: true}
//	      members: {type: list}
//	    auto_populate:
//	      created_by: user
//	    excluded_fields: [members]
//
// LoadFile and LoadYAML turn such a file into a Registry.
package rule
