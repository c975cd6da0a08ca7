// Package generate drives deck generation: it loads the declarative deck
// description, resolves a layout per slide, assembles the slides and saves
// the finished presentation.
package generate

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"slidegen/config"
	"slidegen/deck"
	"slidegen/pptx"
	"slidegen/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate")

	input, err := filepath.Abs(cmd.String("input"))
	if err != nil {
		return err
	}
	output, err := filepath.Abs(cmd.String("output"))
	if err != nil {
		return err
	}

	template := cmd.String("template")
	if template == "" {
		template = env.Cfg.Paths.Template
	}

	themePath := cmd.String("theme")
	if themePath == "" {
		themePath = env.Cfg.Paths.Theme
	}
	if themePath != "" {
		env.Theme = config.LoadTheme(themePath, log)
	} else {
		env.Theme = config.DefaultTheme()
	}

	env.Overwrite = cmd.Bool("overwrite") || env.Cfg.Document.Overwrite

	log.Info("Processing starting", zap.String("input", input), zap.String("output", output))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	slides, err := deck.Load(input, log)
	if err != nil {
		return err
	}

	prs, err := pptx.Open(template, log)
	if err != nil {
		return fmt.Errorf("unable to open template (%s): %w", template, err)
	}
	prs.SetAccent(env.Theme.Accent)

	asm := newAssembler(prs, env.Theme, log)
	for i := range slides {
		if err := ctx.Err(); err != nil {
			return err
		}
		asm.build(&slides[i])
	}

	if err := prs.Save(ctx, output, env.Overwrite, env.Cfg.Document.FixZip); err != nil {
		return fmt.Errorf("unable to save presentation: %w", err)
	}

	log.Info("Presentation generated", zap.String("output", output), zap.Int("slides", prs.SlideCount()))
	return nil
}
