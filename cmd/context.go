package cmd

import (
	"os"

	"go.uber.org/zap"

	"github.com/aockit/pkg/workspace"
)

// newResolver builds a resolver for the loaded config and returns it with
// the working directory resolution starts from.
func newResolver() (*workspace.Resolver, string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", err
	}
	resolver, err := workspace.NewResolver(appFs, cfg.Formats)
	if err != nil {
		return nil, "", err
	}
	return resolver, cwd, nil
}

// resolveLocation resolves the current puzzle context from the working
// directory, applying any flag overrides in opt.
func resolveLocation(opt workspace.Options) (workspace.Location, *workspace.Resolver, error) {
	resolver, cwd, err := newResolver()
	if err != nil {
		return workspace.Location{}, nil, err
	}
	loc, err := resolver.Resolve(cwd, opt)
	if err != nil {
		return workspace.Location{}, nil, err
	}
	logger.Debug("context resolved",
		zap.Int("year", loc.Year),
		zap.Int("day", loc.Day),
		zap.Int("part", loc.Part),
		zap.String("day_dir", loc.DayDir))
	return loc, resolver, nil
}
