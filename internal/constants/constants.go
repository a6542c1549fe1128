package constants

// Well-known default account. Occurrences submitted without an owner are
// attributed to this user once it has been seeded.
const (
	DefaultUserMatricula = "123456"
	DefaultUserName      = "Carlos Ferreira"
	DefaultUserRole      = "2º Tenente"
	DefaultUserPassword  = "123"
)

// OwnerPlaceholder is the literal some clients send when they have no user
// ID at hand. It is stripped at the routing layer and never stored.
const OwnerPlaceholder = "undefined"
