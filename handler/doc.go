// Package handler turns a rule-validated resource into an HTTP create endpoint.
//
// A Resource pairs a name and a rule.Rule with a PersistenceAdapter. Create
// builds an http.HandlerFunc that reads the body, runs the validation
// pipeline once through a per-request Validator and then either renders the
// 400 error mapping or persists the payload and renders the 201 envelope:
//
//	store, err := memory.New("teams")
//	if err != nil {
//		return err
//	}
//	teams := handler.Resource{
//		Name:  "teams",
//		Rule:  teamsRule,
//		Store: store,
//	}
//
//	r := chi.NewRouter()
//	r.Mount("/api", handler.Routes([]handler.Resource{teams},
//		handler.WithLogger(log),
//		handler.WithContextResolver(handler.HeaderContext(map[string]string{"user": "X-User-ID"})),
//	))
//
// # Auto-populate context
//
// Auto-populate fields are resolved against a rule.Context obtained from the
// request by a ContextResolver. The default resolver returns whatever an
// upstream middleware stored with WithRuleContext, or an empty context.
//
// # Errors
//
// Validation failures never reach the ErrorHandler; they are rendered as
// {"error": message} with status 400. Everything else (oversized bodies,
// unresolved accessors, adapter failures) goes through the ErrorHandler,
// which by default logs the failure and renders a JSON error body.
package handler
