package tour

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Runner executes sections sequentially and renders their output.
type Runner struct {
	reg    *Registry
	cfg    Config
	out    io.Writer
	log    *zap.Logger
	styles Styles
}

// NewRunner builds a Runner over the given registry.
//
// A nil writer falls back to io.Discard; a nil logger falls back to a no-op
// logger.
func NewRunner(reg *Registry, cfg Config, out io.Writer, log *zap.Logger) *Runner {
	if out == nil {
		out = io.Discard
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		reg:    reg,
		cfg:    cfg,
		out:    out,
		log:    log,
		styles: NewStyles(cfg.NoColor),
	}
}

// Run executes the selected sections in order.
//
// Selection precedence: explicit ids, then cfg.Sections, then all registered
// sections. An unknown selection fails before anything runs
// (UnknownSectionError). A section failure is rendered and logged but does
// not stop the remaining sections; Run returns the joined failures at the
// end, or nil when every section succeeded.
func (r *Runner) Run(ids ...SectionID) error {
	if len(ids) == 0 {
		for _, name := range r.cfg.Sections {
			ids = append(ids, SectionID(name))
		}
	}

	sections, err := r.reg.Select(ids...)
	if err != nil {
		return err
	}

	ctx := &Context{Out: r.out, Log: r.log, Cfg: r.cfg}

	var failures []error
	for _, s := range sections {
		r.banner(s)

		r.log.Debug("section started", zap.String("id", string(s.ID)))
		if err := s.Run(ctx); err != nil {
			r.log.Warn("section failed",
				zap.String("id", string(s.ID)),
				zap.Error(err),
			)
			fmt.Fprintln(r.out, r.styles.Fail.Render("section failed: "+err.Error()))
			failures = append(failures, fmt.Errorf("section %q: %w", s.ID, err))
			continue
		}
		r.log.Debug("section finished", zap.String("id", string(s.ID)))
	}

	return errors.Join(failures...)
}

func (r *Runner) banner(s Section) {
	title := s.Title
	if title == "" {
		title = string(s.ID)
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.styles.Header.Render("--- "+title+" ---"))
	fmt.Fprintln(r.out, r.styles.rule(len(title)+8))
}
