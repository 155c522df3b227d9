// Package postgres stores documents in the payload_objects table.
//
// Connect opens a pgx pool with retries, Migrate applies the embedded goose
// migrations and New returns an adapter for one resource:
//
//	pool, err := postgres.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	if err := postgres.Migrate(ctx, pool, cfg, log); err != nil {
//		return err
//	}
//	teams, err := postgres.New(pool, "teams")
package postgres
