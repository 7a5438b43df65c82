// Package export writes the story catalog as static HTML.
//
// Every story becomes <id>.html next to an index.html and a stories.json
// manifest. Targets are a local directory or an S3 prefix:
//
//	t, err := export.OpenTarget(ctx, "s3://docs-bucket/ui", "eu-west-1")
//	res, err := export.Export(ctx, stories.Default(), t, export.Options{})
//
// Pages are static snapshots: timers are cancelled right after the first
// render, and no client script is included.
package export
