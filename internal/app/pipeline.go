package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"

	"paycli/internal/config"
	"paycli/internal/dataprocessing"
	apperrors "paycli/internal/errors"
	"paycli/internal/exporter"
	"paycli/internal/files"
	"paycli/pkg/contracts/domain"
)

// Pipeline runs the combiner end to end: discover .dat files, read them all,
// merge and deduplicate, summarize, write the report workbook. Every stage
// error is terminal; nothing is written unless the whole run succeeds.
type Pipeline struct {
	logger    *slog.Logger
	cfg       *config.Config
	discovery *files.Discovery
	merger    *dataprocessing.Merger
	writer    *exporter.WorkbookWriter
}

// NewPipeline wires the pipeline components with a shared logger.
func NewPipeline(logger *slog.Logger, cfg *config.Config) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		logger:    logger,
		cfg:       cfg,
		discovery: files.NewDiscovery(""),
		merger:    dataprocessing.NewMerger(logger, cfg.Salary),
		writer:    exporter.NewWorkbookWriter(logger),
	}
}

// Run executes one pipeline pass over inputDir and returns the first error
// encountered. On success the report is at result/combined_data.csv relative
// to the working directory.
func (p *Pipeline) Run(ctx context.Context, inputDir string) error {
	// Discover
	datFiles, err := p.discovery.FindDatFiles(inputDir)
	if err != nil {
		return apperrors.NewReadError(inputDir, err)
	}
	if len(datFiles) == 0 {
		p.logger.ErrorContext(ctx, "no .dat files present in input directory",
			slog.String("input_dir", inputDir))
		return apperrors.NewNoInputFilesError(inputDir)
	}
	p.logger.InfoContext(ctx, "discovered input files",
		slog.Int("count", len(datFiles)),
		slog.String("input_dir", inputDir))

	// ReadAll
	parsed := make([]*domain.DatFile, 0, len(datFiles))
	for _, fi := range datFiles {
		df, err := dataprocessing.ParseDatFile(fi.Path)
		if err != nil {
			p.logger.ErrorContext(ctx, "error reading file",
				slog.String("path", fi.Path),
				slog.String("error", err.Error()))
			return err
		}
		p.logger.InfoContext(ctx, "file read",
			slog.String("path", fi.Path),
			slog.Int("row_count", df.RowCount()))
		parsed = append(parsed, df)
	}

	// Header check is advisory: a mismatch only logs a warning and the first
	// file's header stays canonical.
	canonical := parsed[0].Header
	for _, df := range parsed[1:] {
		if !slices.Equal(canonical, df.Header) {
			p.logger.WarnContext(ctx, "headers do not match between files, using headers from the first file",
				slog.String("first_file", parsed[0].Path),
				slog.String("mismatched_file", df.Path))
			break
		}
	}

	// Merge
	rows, err := p.merger.Merge(parsed)
	if err != nil {
		return err
	}

	// Stat
	summary, err := dataprocessing.Summarize(rows)
	if err != nil {
		p.logger.ErrorContext(ctx, "error computing salary statistics",
			slog.String("error", err.Error()))
		return err
	}
	p.logger.InfoContext(ctx, "salary statistics computed",
		slog.Int("second_highest", summary.SecondHighest),
		slog.Float64("average", summary.Average))

	// Write
	if err := files.EnsureDirectory(config.OutputDirName); err != nil {
		return apperrors.NewWriteError(config.OutputDirName, err)
	}
	outputPath := filepath.Join(config.OutputDirName, config.OutputFileName)
	outputHeader := append(append([]string{}, canonical...), config.GrossSalaryHeader)
	if err := p.writer.Write(outputPath, outputHeader, rows, summary); err != nil {
		return err
	}

	fmt.Println(exporter.RenderSummaryTable(summary, len(rows)))
	return nil
}
