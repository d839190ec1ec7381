// Package generate has command line actions producing skins.
package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"osr/config"
	"osr/sdl"
	"osr/skin"
	"osr/state"
	"osr/transform"
)

// IsUserError reports whether err is caused by skin sources rather than by
// program or environment. Such errors are reported without details.
func IsUserError(err error) bool {
	var ms *skin.MissingSourceError
	return sdl.IsScriptError(err) || errors.As(err, &ms)
}

func root(env *state.LocalEnv) (string, error) {
	dir := env.Root
	if len(dir) == 0 {
		dir = "."
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("unable to resolve skin root: %w", err)
	}
	return dir, nil
}

func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate")

	dir, err := root(env)
	if err != nil {
		return err
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many skins", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}
	env.ExportOsk = cmd.Bool("osk")

	name, err := selectSkin(dir, env.Cfg.Skin.SourcePrefix, cmd.Args().Get(0), os.Stdin, cmd.Root().Writer, config.IsTerminal(os.Stdin))
	if err != nil {
		return err
	}

	runID, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("unable to generate run id: %w", err)
	}
	log = log.With(zap.Stringer("run", runID))

	log.Info("Processing starting", zap.String("skin", name), zap.String("root", dir))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, env.Cfg, dir, name, env.ExportOsk, env.Rpt, log)
}

// process generates skin independently of CLI framework. skin.ini is written
// only when whole script was processed successfully.
func process(ctx context.Context, cfg *config.Config, dir, name string, osk bool, rpt *config.Report, log *zap.Logger) (rerr error) {
	if _, err := skin.CheckSource(dir, cfg.Skin.SourcePrefix, name); err != nil {
		return err
	}

	defer func() {
		// NOTE: some of golang graphic processing libraries are not mature
		// enough, report panic as regular error.
		if r := recover(); r != nil {
			log.Error("Generation ended with panic", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("generation panic: %v", r)
		}
	}()

	ini := filepath.Join(dir, cfg.Skin.Ini)
	entry := slug.Make(name)
	if err := rpt.StoreCopy(fmt.Sprintf("skin/%s-before%s", entry, filepath.Ext(ini)), ini); err != nil {
		log.Warn("Unable to store original skin configuration in report", zap.Error(err))
	}

	skin.LogMetadata(ini, log)

	sections, err := skin.LoadSections(ini, cfg.Skin.LineEnding(), log)
	if err != nil {
		return fmt.Errorf("unable to load skin configuration: %w", err)
	}

	s := skin.New(name, dir, &cfg.Skin, sections, transform.NewImaging(&cfg.Images, log), log)
	rpt.Store(fmt.Sprintf("skin/%s-script%s", entry, filepath.Ext(s.Script())), s.Script())

	err = s.ProcessFile(ctx)
	rpt.StoreData(fmt.Sprintf("skin/%s-components.txt", entry), []byte(s.Describe()))
	if err != nil {
		return err
	}

	if err := skin.WriteHidden(dir, cfg.Skin.HiddenElements, log); err != nil {
		return fmt.Errorf("unable to create hidden elements: %w", err)
	}

	if err := sections.Save(ini); err != nil {
		return err
	}
	rpt.Store(fmt.Sprintf("skin/%s-after%s", entry, filepath.Ext(ini)), ini)

	log.Info("Skin configuration updated", zap.String("file", ini), zap.Ints("layouts", sections.KeyCounts()))

	if osk {
		return pack(ctx, cfg, dir, name, log)
	}
	return nil
}
