package settings

import (
	"bytes"
	"os"
	"text/template"

	"github.com/go-home-io/alexa-bridge/plugins/common"
	"github.com/pkg/errors"
)

// ITemplateProvider defines template logic.
type ITemplateProvider interface {
	Process([]byte) ([]byte, error)
}

// Template engine provider.
type templateProvider struct {
	logger    common.ILoggerProvider
	functions template.FuncMap
}

// Constructs a new template engine.
func newTemplateProvider(logger common.ILoggerProvider) *templateProvider {
	p := &templateProvider{
		logger: logger,
	}

	p.functions = template.FuncMap{
		"env": p.getEnvVariable,
	}

	return p
}

// Process applies template functions to the config file,
// so values can be read from environment variables.
func (p *templateProvider) Process(rawFile []byte) ([]byte, error) {
	tpl, err := template.New("alexa-bridge").Funcs(p.functions).Parse(string(rawFile))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse template")
	}

	b := bytes.Buffer{}
	if err := tpl.Execute(&b, nil); err != nil {
		return nil, errors.Wrap(err, "failed to execute template")
	}

	return b.Bytes(), nil
}

// Returns environment variable.
func (p *templateProvider) getEnvVariable(name string) string {
	p.logger.Debug("Template is requesting environment variable",
		common.LogFieldToken, name, common.LogSystemToken, logSystem)
	return os.Getenv(name)
}
