package assemble

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/subcentral/fillrate/internal/domain/model"
	"github.com/subcentral/fillrate/internal/report/chart"
	"github.com/subcentral/fillrate/pkg/logger"
	"github.com/subcentral/fillrate/pkg/metrics"
)

const dirPerm = 0o755

// Assembler writes a report tree to disk as nested static HTML.
type Assembler struct {
	log      logger.Logger
	logoPath string
}

// New creates an Assembler with configuration options. The process logger
// must be initialized first.
func New(opts ...Option) *Assembler {
	a := &Assembler{log: logger.Named("assemble")}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Write serializes the tree under outDir. Directories are created as needed
// and existing files are overwritten, so re-running into the same directory
// is safe. The first write failure halts the run with the offending path.
func (a *Assembler) Write(ctx context.Context, root *Node, outDir string, dates model.DateRange) error {
	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, outDir, err)
	}

	logoName, err := a.copyLogo(ctx, outDir)
	if err != nil {
		return err
	}

	return a.writeNode(ctx, root, outDir, dates.Label(), logoName)
}

// copyLogo places the logo at the output root and returns its file name.
// A missing or unreadable logo is logged and skipped, never fatal.
func (a *Assembler) copyLogo(ctx context.Context, outDir string) (string, error) {
	if a.logoPath == "" {
		return "", nil
	}

	src, err := os.ReadFile(a.logoPath)
	if err != nil {
		a.log.Warn(ctx, "logo not copied", logger.String("path", a.logoPath), logger.Error(err))
		return "", nil
	}

	name := filepath.Base(a.logoPath)
	dst := filepath.Join(outDir, name)
	if err := os.WriteFile(dst, src, 0o644); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrWriteOutput, dst, err)
	}
	return name, nil
}

func (a *Assembler) writeNode(ctx context.Context, node *Node, dir, dateLabel, logoName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, dir, err)
	}

	if err := a.writeCharts(node, dir); err != nil {
		return err
	}
	if err := a.writePage(node, dir, dateLabel, logoName); err != nil {
		return err
	}
	metrics.RecordReportWritten(node.Scope.String())
	a.log.Debug(ctx, "wrote report page",
		logger.String("scope", node.Scope.String()),
		logger.String("dir", dir),
		logger.Int("jobs", node.Metrics.Total()),
	)

	for _, child := range node.Children {
		if err := a.writeNode(ctx, child, filepath.Join(dir, child.DirName), dateLabel, logoName); err != nil {
			return err
		}
	}
	return nil
}

func (a *Assembler) writeCharts(node *Node, dir string) error {
	err := writeFile(filepath.Join(dir, barFile), func(w io.Writer) error {
		return chart.RenderBar(node.Bar, w)
	})
	if err != nil {
		return err
	}
	metrics.RecordChartWritten()

	for _, pie := range node.Pies {
		err := writeFile(filepath.Join(dir, pieFile(pie.Classification)), func(w io.Writer) error {
			return chart.RenderPie(pie, w)
		})
		if err != nil {
			return err
		}
		metrics.RecordChartWritten()
	}
	return nil
}

func (a *Assembler) writePage(node *Node, dir, dateLabel, logoName string) error {
	logoRef := ""
	if logoName != "" {
		logoRef = strings.Repeat("../", node.Depth) + logoName
	}
	data := buildPage(node, dateLabel, logoRef)

	return writeFile(filepath.Join(dir, pageFile), func(w io.Writer) error {
		if err := pageTemplate.ExecuteTemplate(w, "report.tmpl", data); err != nil {
			return fmt.Errorf("%w: %v", ErrRenderPage, err)
		}
		return nil
	})
}

// writeFile creates path, streams content through fn, and surfaces close
// errors so short writes are never reported as success.
func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, path, err)
	}
	return nil
}
