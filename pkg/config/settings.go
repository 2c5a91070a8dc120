package config

import (
	"fmt"
	"strings"
)

// Output formats accepted by output.format
var OutputFormats = []string{"auto", "term", "text", "json"}

// Settings is the decoded application configuration
type Settings struct {
	Source  SourceSettings  `koanf:"source" toml:"source"`
	Install InstallSettings `koanf:"install" toml:"install"`
	Output  OutputSettings  `koanf:"output" toml:"output"`
}

// SourceSettings locates the assets to install
type SourceSettings struct {
	Dir string `koanf:"dir" toml:"dir" comment:"Directory holding agents/, commands/, skills/ and architecture/. Empty means the bundled assets."`
}

// InstallSettings holds install defaults
type InstallSettings struct {
	Symlink bool     `koanf:"symlink" toml:"symlink" comment:"Link global installs back to the source instead of copying. Project installs always copy."`
	Targets []string `koanf:"targets" toml:"targets" comment:"Targets used when none is given on the command line."`
}

// OutputSettings controls rendering
type OutputSettings struct {
	Format string `koanf:"format" toml:"format" comment:"auto, term, text or json"`
}

// Validate checks values that cannot be expressed in the decoder
func (s *Settings) Validate() error {
	s.Output.Format = strings.ToLower(strings.TrimSpace(s.Output.Format))
	if s.Output.Format == "" {
		s.Output.Format = "auto"
	}
	for _, f := range OutputFormats {
		if s.Output.Format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid output.format %q (expected one of %s)", s.Output.Format, strings.Join(OutputFormats, ", "))
}
