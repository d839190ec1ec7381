package generate

import (
	"context"
	"fmt"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"osr/skin"
	"osr/state"
)

// List prints names of skins which have source directories.
func List(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("list")

	dir, err := root(env)
	if err != nil {
		return err
	}
	names, err := skin.Discover(dir, env.Cfg.Skin.SourcePrefix)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		log.Warn("No skins found", zap.String("root", dir), zap.String("prefix", env.Cfg.Skin.SourcePrefix))
		return nil
	}

	out := cmd.Root().Writer
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return nil
}
