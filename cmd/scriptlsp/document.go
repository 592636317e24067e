package main

import (
	"errors"

	"github.com/dshills/scriptlsp/internal/editor"
	"github.com/dshills/scriptlsp/internal/regions"
	"github.com/dshills/scriptlsp/internal/scripting"
)

var errNoTemplate = errors.New("no template given: pass a path or set template.path")

// templatePath picks the template from the arguments or the configuration.
func templatePath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Template.Path != "" {
		return cfg.Template.Path, nil
	}
	return "", errNoTemplate
}

// openDocument loads the template and builds its document model.
func openDocument(args []string) (*editor.TextModel, []regions.ConstrainedRange, error) {
	path, err := templatePath(args)
	if err != nil {
		return nil, nil, err
	}

	tpl, err := regions.LoadTemplate(path)
	if err != nil {
		return nil, nil, err
	}

	model, ranges := scripting.OpenTemplate(tpl, cfg.Editor.LanguageID, modelOptions()...)
	return model, ranges, nil
}

func modelOptions() []editor.ModelOption {
	if modelURI != "" {
		return []editor.ModelOption{editor.WithURI(modelURI)}
	}
	return []editor.ModelOption{editor.WithScheme(cfg.Editor.URIScheme)}
}
