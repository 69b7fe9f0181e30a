package version

// These variables are overridden at build time using -ldflags.
// Keep sensible defaults for local development.
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
	Dirty   = "false"
)

// Info is the build metadata served by the version endpoint.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Dirty   bool   `json:"dirty"`
}

// Current returns the metadata of the running binary.
func Current() Info {
	return Info{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
		Dirty:   Dirty == "true",
	}
}

// String renders a one-line banner for startup logs.
func (i Info) String() string {
	s := i.Version + " (" + i.Commit
	if i.Dirty {
		s += "-dirty"
	}
	if i.Date != "" {
		s += ", " + i.Date
	}
	return s + ")"
}
