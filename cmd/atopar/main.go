// Command atopar converts raw atop logs into JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/pyranha-labs/atoparser/compress"
	"github.com/pyranha-labs/atoparser/format"
	"github.com/pyranha-labs/atoparser/rawlog"
	"github.com/pyranha-labs/atoparser/reader"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	app := &cli.App{
		Name:      "atopar",
		Usage:     "convert raw atop logs into JSON",
		ArgsUsage: "<log> [<log>...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "pretty",
				Aliases: []string{"P"},
				Usage:   "indent the JSON output",
			},
			&cli.BoolFlag{
				Name:  "tstats",
				Usage: "include per-task statistics",
			},
			&cli.BoolFlag{
				Name:  "cgroups",
				Usage: "include cgroup statistics (atop 2.11 and newer)",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "fail on truncated sample data instead of stopping early",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write to `FILE` instead of stdout",
			},
			&cli.StringFlag{
				Name:  "compress",
				Value: "none",
				Usage: "compress the output: none, gzip, zstd or lz4",
			},
		},
		Action: func(ctx *cli.Context) error {
			return run(ctx, logger)
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatal("conversion failed", zap.Error(err))
	}
}

func run(ctx *cli.Context, logger *zap.Logger) error {
	if ctx.NArg() == 0 {
		return cli.ShowAppHelp(ctx)
	}

	var opts []rawlog.SessionOption
	if ctx.Bool("strict") {
		opts = append(opts, rawlog.WithStrictTruncation())
	}

	docs := make([]*rawlog.Mapping, 0, ctx.NArg())
	for _, path := range ctx.Args().Slice() {
		doc, err := convert(ctx, path, opts, logger)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		docs = append(docs, doc)
	}

	payload, err := encode(docs, ctx.Bool("pretty"), ctx.String("compress"))
	if err != nil {
		return err
	}

	if output := ctx.String("output"); output != "" {
		return os.WriteFile(output, payload, 0o644)
	}

	_, err = os.Stdout.Write(payload)

	return err
}

func convert(ctx *cli.Context, path string, opts []rawlog.SessionOption, logger *zap.Logger) (*rawlog.Mapping, error) {
	file, err := reader.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	session, err := rawlog.NewSession(file, opts...)
	if err != nil {
		return nil, err
	}

	logger.Info("decoding log",
		zap.String("path", path),
		zap.String("version", session.Version().String()),
		zap.String("host", session.Header().HostName()),
	)

	doc := rawlog.NewMapping()
	doc.Set("file", path)
	doc.Set("header", rawlog.StructToMap(session.Header()))

	samples := make([]any, 0, 64)
	for sample, err := range session.Samples() {
		if err != nil {
			return nil, err
		}

		samples = append(samples, projectSample(ctx, sample))
	}
	doc.Set("samples", samples)

	logger.Info("log decoded", zap.String("path", path), zap.Int("samples", len(samples)))

	return doc, nil
}

func projectSample(ctx *cli.Context, sample *rawlog.Sample) *rawlog.Mapping {
	entry := rawlog.NewMapping()
	entry.Set("record", rawlog.StructToMap(sample.Record))
	entry.Set("sstat", rawlog.StructToMap(sample.SStat))

	if ctx.Bool("tstats") {
		tstats := make([]any, 0, len(sample.TStats))
		for _, tstat := range sample.TStats {
			tstats = append(tstats, rawlog.StructToMap(tstat))
		}
		entry.Set("tstats", tstats)
	}

	if ctx.Bool("cgroups") && sample.CGroups != nil {
		cgroups := make([]any, 0, len(sample.CGroups))
		for _, cgroup := range sample.CGroups {
			chained := rawlog.NewMapping()
			chained.Set("cstat", rawlog.StructToMap(cgroup.CStat))
			chained.Set("pids", cgroup.PIDs)
			cgroups = append(cgroups, chained)
		}
		entry.Set("cgroups", cgroups)
	}

	return entry
}

func encode(docs []*rawlog.Mapping, pretty bool, compression string) ([]byte, error) {
	var (
		payload []byte
		err     error
	)
	if pretty {
		payload, err = json.MarshalIndent(docs, "", "  ")
	} else {
		payload, err = json.Marshal(docs)
	}
	if err != nil {
		return nil, err
	}

	ctype, err := format.ParseCompression(compression)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(ctype)
	if err != nil {
		return nil, err
	}

	return codec.Compress(payload)
}
