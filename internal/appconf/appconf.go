package appconf

// Environment identifies the environment in which the application runs.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// Config holds all the configuration settings for the application: the
// network port to listen on, the operating environment, the set of valid
// API keys, and the per-key request rate limit.
type Config struct {
	Port      int
	Env       Environment
	ApiKeys   []string
	RateLimit int
}

// EnvFlagToEnvironment converts an environment flag value ("development",
// "test", "production") to an Environment. Unknown values map to
// Development.
func EnvFlagToEnvironment(flag string) Environment {
	switch flag {
	case "test":
		return Test
	case "production":
		return Production
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}
