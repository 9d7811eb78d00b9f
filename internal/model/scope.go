package model

// Scope identifies the authenticated caller of a use case.
type Scope struct {
	UserID   string
	Username string
}

// Environment names a deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
