package genconfig

import (
	"github.com/arthur-debert/agentkit/pkg/config"
	"github.com/arthur-debert/agentkit/pkg/logging"
)

// GenConfigOptions holds options for the genconfig command
type GenConfigOptions struct {
	// Path is the user settings file written when Write is set
	Path  string
	Write bool
}

// GenConfigResult holds the generated content and any file written
type GenConfigResult struct {
	ConfigContent string   `json:"configContent"`
	FilesWritten  []string `json:"filesWritten"`
}

// GenConfig outputs or writes the default settings
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	content, err := config.GenerateDefaults()
	if err != nil {
		return nil, err
	}

	result := &GenConfigResult{
		ConfigContent: content,
		FilesWritten:  []string{},
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	written, err := config.WriteUserConfig(opts.Path)
	if err != nil {
		return result, err
	}
	if !written {
		logger.Warn().Str("path", opts.Path).Msg("Config file already exists, skipping")
		return result, nil
	}

	logger.Info().Str("path", opts.Path).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, opts.Path)
	return result, nil
}
