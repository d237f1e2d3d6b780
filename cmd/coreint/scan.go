package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/coregx/coreint/fields"
	"github.com/coregx/coreint/scan"
)

type scanOptions struct {
	keys          []string
	separator     string
	maxRecordSize int
}

func newScanCommand(opts *options) *cobra.Command {
	so := &scanOptions{}

	cmd := &cobra.Command{
		Use:   "scan [file...]",
		Short: "Summarize the integers in files or stdin",
		Long: `Scan finds every digit run in the input and prints count, sum, min and max.

With --key, only integers directly following one of the keys are counted,
and a summary is printed per key.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := so.config(opts)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{"-"}
			}

			var extractor *fields.Extractor
			if len(so.keys) > 0 {
				if extractor, err = fields.NewExtractor(so.keys...); err != nil {
					return err
				}
			}

			total := &stats{}
			perKey := make(map[string]*stats, len(so.keys))
			for _, k := range so.keys {
				perKey[k] = &stats{}
			}

			for _, name := range args {
				err := withInput(cmd, name, func(r io.Reader) error {
					if extractor != nil {
						return scanKeys(r, cfg, extractor, perKey)
					}
					return scanAll(r, cfg, total)
				})
				if err != nil {
					return err
				}
			}

			out := newPrinter(cmd.OutOrStdout(), opts.plain)
			if extractor == nil {
				out.table("all", total.rows(out))
				return nil
			}
			for _, k := range so.keys {
				out.table(k, perKey[k].rows(out))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVar(&so.keys, "key", nil, "count only integers following this key (repeatable)")
	flags.StringVar(&so.separator, "separator", "\n", "record separator, a single byte")
	flags.IntVar(&so.maxRecordSize, "max-record-size", scan.DefaultConfig().MaxRecordSize, "largest accepted record in bytes")
	return cmd
}

func (so *scanOptions) config(opts *options) (scan.Config, error) {
	kcfg, err := opts.kernelConfig()
	if err != nil {
		return scan.Config{}, err
	}
	if len(so.separator) != 1 {
		return scan.Config{}, fmt.Errorf("--separator must be a single byte, got %q", so.separator)
	}

	cfg := scan.Config{
		Separator:     so.separator[0],
		MaxRecordSize: so.maxRecordSize,
		Kernel:        kcfg,
	}
	return cfg, cfg.Validate()
}

// withInput opens name ("-" is stdin) and passes it to fn.
func withInput(cmd *cobra.Command, name string, fn func(io.Reader) error) error {
	if name == "-" {
		return fn(cmd.InOrStdin())
	}

	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := fn(f); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func scanAll(r io.Reader, cfg scan.Config, total *stats) error {
	nums, err := scan.NewReader(r, cfg)
	if err != nil {
		return err
	}
	for nums.Next() {
		n := nums.Number()
		if n.Overflow {
			total.fail()
			continue
		}
		total.add(n.Value)
	}
	return nums.Err()
}

func scanKeys(r io.Reader, cfg scan.Config, e *fields.Extractor, perKey map[string]*stats) error {
	records := bufio.NewScanner(r)
	records.Buffer(make([]byte, 0, min(cfg.MaxRecordSize, 64*1024)), cfg.MaxRecordSize)
	records.Split(scan.SplitAt(cfg.Separator))

	var buf []fields.Field
	for records.Scan() {
		rec := records.Bytes()
		if !e.Contains(rec) {
			continue
		}

		buf = e.AppendFields(buf[:0], rec)
		for _, f := range buf {
			if f.Err != nil {
				perKey[f.Key].fail()
				continue
			}
			perKey[f.Key].add(f.Value)
		}
	}
	if err := records.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return fmt.Errorf("%w: limit is %d bytes", scan.ErrRecordTooLong, cfg.MaxRecordSize)
		}
		return err
	}
	return nil
}
