// Package environment names the deployment environments recordkit knows
// about and parses the short aliases accepted in configuration.
//
//	env := environment.Parse(os.Getenv("APP_ENV")) // "prod" -> Production
//	if env.IsProduction() {
//	    // ...
//	}
//
// Unknown or empty names parse as Development.
package environment
