// Package middleware provides HTTP middleware for password strength validation
// using zxcvbn. It supports net/http and optional adapters for Echo, Gin,
// Fiber, and Chi. Use [Config] to set minimum score, password extraction, and
// failure handling.
//
// # net/http (zero additional dependencies)
//
//	http.Handle("/register", middleware.HTTP(middleware.Config{
//	    MinScore:      3,
//	    PasswordField: "password",
//	}, registrationHandler))
//
// # Chi (net/http compatible)
//
//	r.Use(middleware.Chi(middleware.Config{MinScore: 3}))
//
// # Echo, Gin, Fiber (optional)
//
// Adapters are in build-tagged files. To use them, add the framework dependency
// and build with the tag, for example:
//
//	go get github.com/labstack/echo/v4
//	go build -tags=echo ./...
//
// Then use middleware.Echo(cfg), middleware.Gin(cfg), or middleware.Fiber(cfg).
package middleware

import (
	"reflect"

	zxcvbn "github.com/strengthlab/zxcvbn-go"
)

// Config configures the password validation middleware.
//
// Use [DefaultConfig] for sensible defaults, then override as needed.
type Config struct {
	// MinScore is the minimum zxcvbn score (0-4) required to allow the
	// request. If the password scores below this, the middleware rejects
	// with HTTP 400. Default: 3 ("safely unguessable" or better).
	MinScore int

	// PasswordField is the name of the form or JSON field containing the password.
	// Used by the default extractor for form and JSON body. Default: "password".
	PasswordField string

	// OnFailure is an optional hook called when the password fails the
	// policy. It receives the full estimation result; the middleware still
	// writes the 400 response. Use for logging, metrics, or custom side
	// effects. Default: nil.
	OnFailure func(result zxcvbn.Result) error

	// SkipIfEmpty, when true, skips validation when the extracted password is empty
	// and calls the next handler (useful for optional password fields). When false,
	// an empty password is treated as a failed check. Default: false.
	SkipIfEmpty bool

	// ZxcvbnConfig is the configuration passed to zxcvbn.EstimateWithConfig.
	// If zero, [zxcvbn.DefaultConfig] is used.
	ZxcvbnConfig zxcvbn.Config
}

// DefaultConfig returns a config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MinScore:      3,
		PasswordField: "password",
		OnFailure:     nil,
		SkipIfEmpty:   false,
		ZxcvbnConfig:  zxcvbn.DefaultConfig(),
	}
}

// Extractor extracts a password from an incoming request.
// The default HTTP middleware uses an extractor that checks form values
// and JSON body (see [DefaultHTTPExtractor]). Framework adapters use
// their own extraction logic.
type Extractor interface {
	// ExtractPassword returns the password from the request, or ("", nil) if none.
	// The request type is framework-specific (*http.Request for net/http).
	ExtractPassword(req interface{}) (string, error)
}

// weakPasswordBody is the JSON body written when a password fails the
// configured policy.
type weakPasswordBody struct {
	Error    string         `json:"error"`
	Score    int            `json:"score"`
	Feedback zxcvbn.Feedback `json:"feedback"`
}

// evaluate resolves cfg's zxcvbn config (falling back to the default on a
// zero or invalid one) and runs the estimation.
func evaluate(password string, cfg Config) (zxcvbn.Result, error) {
	zc := cfg.ZxcvbnConfig
	if reflect.DeepEqual(zc, zxcvbn.Config{}) || zc.Validate() != nil {
		zc = zxcvbn.DefaultConfig()
	}
	return zxcvbn.EstimateWithConfig(password, zc)
}
