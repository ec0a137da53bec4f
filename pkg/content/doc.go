// Package content serves the translated pages of the site.
//
// Pages are HTML fragments stored per language, e.g. "de/help.html". A Source
// provides the files: FSSource over an fs.FS (the embedded pages or a
// directory), S3Source over a bucket, and CachedSource as an LRU cache in
// front of either.
//
// A Resolver maps the page key of a request to a file through a Table:
//
//	resolver := content.NewResolver(source, content.DefaultTable())
//	page, err := resolver.Resolve(ctx, "de", r.URL.Query().Get("to"))
//	if err != nil {
//		// source failure or missing error page
//	}
//	if !page.Found {
//		// page.Body is the error page, answer 404
//	}
//
// No key resolves to the home page. Unknown keys and listed keys without a
// file resolve to the language's error page.
package content
