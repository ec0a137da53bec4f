// Package environment propagates the application environment (development,
// staging or production) through context.Context, HTTP requests and logs.
//
// Parse turns an APP_ENV value into an Environment. Middleware attaches it to
// every request context and FromContext and the Is* predicates read it back:
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	r.Use(environment.Middleware(env))
//
//	if environment.IsProduction(r.Context()) {
//		// hide error details
//	}
package environment
