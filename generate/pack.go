package generate

import (
	"context"
	"errors"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"osr/archive"
	"osr/config"
	"osr/skin"
	"osr/state"
)

// Pack exports already generated skin as .osk package.
func Pack(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("pack")

	name := cmd.Args().Get(0)
	if len(name) == 0 {
		return errors.New("no skin has been specified")
	}
	dir, err := root(env)
	if err != nil {
		return err
	}
	if _, err := skin.CheckSource(dir, env.Cfg.Skin.SourcePrefix, name); err != nil {
		return err
	}
	return pack(ctx, env.Cfg, dir, name, log)
}

// packSkip leaves out everything which is not a part of the skin: source
// directories, previous packages, reports, logs and hidden files.
func packSkip(prefix string) archive.SkipFunc {
	return func(rel string, d fs.DirEntry) bool {
		base := path.Base(rel)
		if strings.HasPrefix(base, ".") {
			return true
		}
		if d.IsDir() {
			return !strings.Contains(rel, "/") && strings.HasPrefix(rel, prefix+"-")
		}
		switch strings.ToLower(path.Ext(base)) {
		case ".osk", ".zip", ".log":
			return true
		}
		return false
	}
}

func pack(ctx context.Context, cfg *config.Config, dir, name string, log *zap.Logger) error {
	dest := filepath.Join(dir, config.CleanFileName(name)+".osk")

	start := time.Now()
	n, err := archive.Pack(ctx, dir, dest, packSkip(cfg.Skin.SourcePrefix), cfg.Images.FixZip)
	if err != nil {
		return err
	}

	entries, err := archive.Entries(dest)
	if err != nil {
		return err
	}
	for _, e := range entries {
		log.Debug("Packed", zap.String("file", e.Name), zap.Uint64("size", e.Size), zap.Bool("descriptor", e.DataDescriptor))
	}
	log.Info("Skin package created", zap.String("file", dest), zap.Int("files", n), zap.Duration("elapsed", time.Since(start)))
	return nil
}
