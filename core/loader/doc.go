// Package loader registers application features onto the Fiber router.
//
// Each feature implements Feature:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager loads enabled features in registration order. Order matters for
// routes sharing a prefix: the report feature owns /countries/image and must be
// registered before the countries feature claims /countries/:name.
package loader
