package appconf

// Environment describes the operating environment for the application.
type Environment int

const (
	Test Environment = iota
	Development
	Production
)

// Config holds all the configuration settings for the application: the
// network port the server listens on, the operating environment, and the
// locations of the reference data directory, the model artifact, and the
// flights database. Settings are read from command-line flags (with .env
// fallbacks) when the application starts.
type Config struct {
	Port      int
	Env       Environment
	DataDir   string
	ModelPath string
	DBPath    string
	RateLimit int
}

// EnvFlagToEnvironment maps the -env flag value to an Environment, defaulting
// to Development for unrecognized values.
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
